// Package logging provides per-component diagnostic logging. Every
// component of one process run appends to the same session log file under
// ~/.selenium/logs, keeping stdout free for payload output.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger writes structured diagnostic lines for one component. All log
// methods write unconditionally; there is no level filtering.
type Logger struct {
	sessionID string
	component string
	file      *os.File
	logger    *log.Logger
	path      string
	mu        sync.Mutex
	closeOnce sync.Once
}

var (
	// sessionID is shared by every logger of the current process run
	sessionID     string
	sessionIDOnce = new(sync.Once)

	// logDir is resolved and created once per run
	logDir   string
	initOnce = new(sync.Once)
	initErr  error

	// logRoot resolves the directory logs live under, swapped in tests
	logRoot = defaultLogRoot
)

func defaultLogRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".selenium", "logs"), nil
}

// currentSessionID returns or creates the session ID for this run.
func currentSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// initLogDirectory resolves and creates the log directory.
func initLogDirectory() error {
	initOnce.Do(func() {
		dir, err := logRoot()
		if err != nil {
			initErr = err
			return
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			initErr = fmt.Errorf("create log directory: %w", err)
			return
		}
		logDir = dir
	})
	return initErr
}

// New creates a logger for one component, writing to
// ~/.selenium/logs/<session-id>-selenium.log. Components of the same run
// share the file, the session ID ties their lines together.
//
// When the log directory or file cannot be set up, New returns a logger
// that writes to stderr together with the error, so callers keep a usable
// logger either way.
func New(component string) (*Logger, error) {
	if err := initLogDirectory(); err != nil {
		return fallback(component, err), err
	}

	id := currentSessionID()
	path := filepath.Join(logDir, fmt.Sprintf("%s-selenium.log", id))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("open log file: %w", err)
		return fallback(component, err), err
	}

	return &Logger{
		sessionID: id,
		component: component,
		file:      file,
		logger:    log.New(file, "", 0),
		path:      path,
	}, nil
}

// fallback builds a stderr logger for when file logging is unavailable.
func fallback(component string, err error) *Logger {
	logger := log.New(os.Stderr, fmt.Sprintf("[%s] ", component), log.LstdFlags)
	logger.Printf("file logging unavailable: %v", err)

	return &Logger{
		sessionID: currentSessionID(),
		component: component,
		logger:    logger,
	}
}

func (l *Logger) write(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, fmt.Sprintf(format, v...))
}

// Printf logs at info level.
func (l *Logger) Printf(format string, v ...interface{}) { l.write("INFO", format, v...) }

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, v ...interface{}) { l.write("DEBUG", format, v...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, v ...interface{}) { l.write("INFO", format, v...) }

// Warnf logs at warning level.
func (l *Logger) Warnf(format string, v ...interface{}) { l.write("WARN", format, v...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, v ...interface{}) { l.write("ERROR", format, v...) }

// Writer exposes the underlying sink for components that need an
// io.Writer.
func (l *Logger) Writer() io.Writer {
	if l.file != nil {
		return l.file
	}
	return os.Stderr
}

// SessionID returns the session ID shared by this run's loggers.
func (l *Logger) SessionID() string { return l.sessionID }

// Path returns the log file path, empty in stderr fallback mode.
func (l *Logger) Path() string { return l.path }

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
