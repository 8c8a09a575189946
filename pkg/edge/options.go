// Package edge builds Microsoft Edge option sets for new session
// requests. Edge is Chromium based, so its options mirror the Chrome
// ones under the ms:edgeOptions vendor capability.
package edge

import "github.com/Bkucera/selenium/pkg/capabilities"

// BrowserName is the browserName capability value Edge answers to.
const BrowserName = "MicrosoftEdge"

// OptionsKey is the vendor capability carrying Edge-specific options.
const OptionsKey = "ms:edgeOptions"

// Options configures a Microsoft Edge session. The zero value is a plain
// Edge request. Options implements capabilities.OptionSet.
type Options struct {
	// Binary is the path of the Edge executable to launch
	Binary string

	// Args are extra command line arguments for the browser process
	Args []string

	// Prefs are user profile preferences, by preference path
	Prefs map[string]any

	// ExcludeSwitches removes default msedgedriver switches from the
	// browser command line
	ExcludeSwitches []string

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
	edgeOpts := map[string]any{}
	if o.Binary != "" {
		edgeOpts["binary"] = o.Binary
	}
	if len(o.Args) > 0 {
		edgeOpts["args"] = append([]string(nil), o.Args...)
	}
	if len(o.Prefs) > 0 {
		prefs := make(map[string]any, len(o.Prefs))
		for k, v := range o.Prefs {
			prefs[k] = v
		}
		edgeOpts["prefs"] = prefs
	}
	if len(o.ExcludeSwitches) > 0 {
		edgeOpts["excludeSwitches"] = append([]string(nil), o.ExcludeSwitches...)
	}

	caps := capabilities.Map{
		capabilities.KeyBrowserName: BrowserName,
		OptionsKey:                  edgeOpts,
	}
	for k, v := range o.caps {
		caps[k] = v
	}
	return caps
}
