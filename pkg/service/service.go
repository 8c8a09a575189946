// Package service describes locally-managed WebDriver driver processes.
// A Service tells a session plan where such a process accepts new session
// requests and whether anything is listening there; starting and stopping
// the process itself is left to the caller.
package service

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Defaults applied by New when the corresponding Config field is unset.
const (
	// DefaultHost is where driver binaries listen when not told otherwise
	DefaultHost = "localhost"

	// DefaultProbeTimeout bounds the Running reachability check
	DefaultProbeTimeout = 500 * time.Millisecond
)

// Conventional listen ports of the common driver binaries.
const (
	GeckoDriverPort  = 4444
	ChromeDriverPort = 9515
	EdgeDriverPort   = 9515
	IEDriverPort     = 5555
)

// Config describes one driver process.
type Config struct {
	// Path is the driver executable the caller launches
	Path string `yaml:"path" json:"path"`

	// Host the driver listens on, DefaultHost when empty
	Host string `yaml:"host,omitempty" json:"host,omitempty"`

	// Port the driver listens on
	Port int `yaml:"port" json:"port"`

	// Args are extra command line arguments for the driver process
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`

	// Env holds additional KEY=VALUE pairs for the driver process
	Env []string `yaml:"env,omitempty" json:"env,omitempty"`

	// ProbeTimeout bounds the Running reachability check,
	// DefaultProbeTimeout when zero
	ProbeTimeout time.Duration `yaml:"probe_timeout,omitempty" json:"probe_timeout,omitempty"`
}

// Validate checks the configuration for values New cannot work with.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("driver path is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid driver port: %d", c.Port)
	}
	if c.ProbeTimeout < 0 {
		return fmt.Errorf("probe timeout cannot be negative")
	}
	return nil
}

// GeckoConfig returns the conventional geckodriver configuration.
func GeckoConfig() Config {
	return Config{Path: "geckodriver", Port: GeckoDriverPort}
}

// ChromeConfig returns the conventional chromedriver configuration.
func ChromeConfig() Config {
	return Config{Path: "chromedriver", Port: ChromeDriverPort}
}

// EdgeConfig returns the conventional msedgedriver configuration.
func EdgeConfig() Config {
	return Config{Path: "msedgedriver", Port: EdgeDriverPort}
}

// IEConfig returns the conventional IEDriverServer configuration.
func IEConfig() Config {
	return Config{Path: "IEDriverServer.exe", Port: IEDriverPort}
}

// Service is a driver process descriptor. It implements the builder's
// DriverService contract.
type Service struct {
	cfg Config
	url *url.URL
}

// New builds a Service from cfg, filling unset fields with the package
// defaults.
func New(cfg Config) (*Service, error) {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.ProbeTimeout == 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("driver service config: %w", err)
	}
	return &Service{
		cfg: cfg,
		url: &url.URL{
			Scheme: "http",
			Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		},
	}, nil
}

// Config returns a copy of the configuration the service was built from.
func (s *Service) Config() Config {
	cfg := s.cfg
	cfg.Args = append([]string(nil), s.cfg.Args...)
	cfg.Env = append([]string(nil), s.cfg.Env...)
	return cfg
}

// URL returns a copy of the address the driver accepts new session
// requests on.
func (s *Service) URL() *url.URL {
	u := *s.url
	return &u
}

// Running reports whether something accepts TCP connections on the
// service address. It is a reachability probe, not a health check; the
// driver process lifecycle belongs to the caller.
func (s *Service) Running() bool {
	conn, err := net.DialTimeout("tcp", s.url.Host, s.cfg.ProbeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// String renders the service for log lines.
func (s *Service) String() string {
	return fmt.Sprintf("driver service %s at %s", s.cfg.Path, s.url)
}
