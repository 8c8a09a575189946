// Package firefox builds Firefox option sets for new session requests.
// Firefox-specific settings travel under the moz:firefoxOptions vendor
// capability.
package firefox

import (
	"encoding/base64"

	"github.com/Bkucera/selenium/pkg/capabilities"
)

// BrowserName is the browserName capability value Firefox answers to.
const BrowserName = "firefox"

// OptionsKey is the vendor capability carrying Firefox-specific options.
const OptionsKey = "moz:firefoxOptions"

// LogLevel controls geckodriver's logging verbosity.
type LogLevel string

const (
	LogTrace LogLevel = "trace"
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
	LogFatal LogLevel = "fatal"
)

// Options configures a Firefox session. The zero value is a plain Firefox
// request. Options implements capabilities.OptionSet.
type Options struct {
	// Binary is the path of the Firefox executable to launch
	Binary string

	// Args are extra command line arguments for the browser process
	Args []string

	// Prefs are about:config preferences applied to the session profile
	Prefs map[string]any

	// Profile is a zipped profile directory, base64-encoded on render
	Profile []byte

	// LogLevel selects geckodriver's log verbosity, empty leaves the
	// driver default
	LogLevel LogLevel

	caps capabilities.Map
}

// SetCapability attaches an additional top-level capability to the
// rendered map. Names are validated when the options are added to a
// builder.
func (o *Options) SetCapability(key string, value any) {
	if o.caps == nil {
		o.caps = capabilities.Map{}
	}
	o.caps[key] = value
}

// CapabilityMap renders the options as a W3C capability map.
func (o *Options) CapabilityMap() capabilities.Map {
	mozOpts := map[string]any{}
	if o.Binary != "" {
		mozOpts["binary"] = o.Binary
	}
	if len(o.Args) > 0 {
		mozOpts["args"] = append([]string(nil), o.Args...)
	}
	if len(o.Prefs) > 0 {
		prefs := make(map[string]any, len(o.Prefs))
		for k, v := range o.Prefs {
			prefs[k] = v
		}
		mozOpts["prefs"] = prefs
	}
	if len(o.Profile) > 0 {
		mozOpts["profile"] = base64.StdEncoding.EncodeToString(o.Profile)
	}
	if o.LogLevel != "" {
		mozOpts["log"] = map[string]any{"level": string(o.LogLevel)}
	}

	caps := capabilities.Map{
		capabilities.KeyBrowserName: BrowserName,
		OptionsKey:                  mozOpts,
	}
	for k, v := range o.caps {
		caps[k] = v
	}
	return caps
}
