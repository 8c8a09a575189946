// Package chrome builds Chrome option sets for new session requests.
// Chrome-specific settings travel under the goog:chromeOptions vendor
// capability; everything else on the rendered map is plain W3C.
package chrome

import (
	"encoding/base64"

	"github.com/Bkucera/selenium/pkg/capabilities"
)

// BrowserName is the browserName capability value Chrome answers to.
const BrowserName = "chrome"

// OptionsKey is the vendor capability carrying Chrome-specific options.
const OptionsKey = "goog:chromeOptions"

// Options configures a Chrome session. The zero value is a plain Chrome
// request. Options implements capabilities.OptionSet; hand it to the
// session plan builder with AddOptions.
type Options struct {
	// Binary is the path of the Chrome executable to launch
	Binary string

	// Args are extra command line arguments for the browser process
	Args []string

	// Extensions are packed .crx extensions, base64-encoded on render
	Extensions [][]byte

	// Prefs are user profile preferences, by preference path
	Prefs map[string]any

	// ExcludeSwitches removes default chromedriver switches from the
	// browser command line
	ExcludeSwitches []string

	experimental map[string]any
	caps         capabilities.Map
}

// SetExperimentalOption stores a raw value inside goog:chromeOptions, for
// switches Options has no field for.
func (o *Options) SetExperimentalOption(name string, value any) {
	if o.experimental == nil {
		o.experimental = map[string]any{}
	}
	o.experimental[name] = value
}

// SetCapability attaches an additional top-level capability to the
// rendered map. It can overwrite the defaults, browserName included.
// Names are validated when the options are added to a builder, not here.
func (o *Options) SetCapability(key string, value any) {
	if o.caps == nil {
		o.caps = capabilities.Map{}
	}
	o.caps[key] = value
}

// CapabilityMap renders the options as a W3C capability map.
func (o *Options) CapabilityMap() capabilities.Map {
	chromeOpts := map[string]any{}
	if o.Binary != "" {
		chromeOpts["binary"] = o.Binary
	}
	if len(o.Args) > 0 {
		chromeOpts["args"] = append([]string(nil), o.Args...)
	}
	if len(o.Extensions) > 0 {
		encoded := make([]string, len(o.Extensions))
		for i, ext := range o.Extensions {
			encoded[i] = base64.StdEncoding.EncodeToString(ext)
		}
		chromeOpts["extensions"] = encoded
	}
	if len(o.Prefs) > 0 {
		prefs := make(map[string]any, len(o.Prefs))
		for k, v := range o.Prefs {
			prefs[k] = v
		}
		chromeOpts["prefs"] = prefs
	}
	if len(o.ExcludeSwitches) > 0 {
		chromeOpts["excludeSwitches"] = append([]string(nil), o.ExcludeSwitches...)
	}
	for k, v := range o.experimental {
		chromeOpts[k] = v
	}

	caps := capabilities.Map{
		capabilities.KeyBrowserName: BrowserName,
		OptionsKey:                  chromeOpts,
	}
	for k, v := range o.caps {
		caps[k] = v
	}
	return caps
}
