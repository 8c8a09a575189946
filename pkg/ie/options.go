// Package ie builds Internet Explorer option sets for new session
// requests, including IE mode on Edge. Driver-specific settings travel
// under the se:ieOptions vendor capability.
package ie

import (
	"time"

	"github.com/Bkucera/selenium/pkg/capabilities"
)

// BrowserName is the browserName capability value the IE driver answers
// to.
const BrowserName = "internet explorer"

// OptionsKey is the vendor capability carrying IE-specific options.
const OptionsKey = "se:ieOptions"

// Options configures an Internet Explorer session. The zero value is a
// plain IE request. Options implements capabilities.OptionSet.
type Options struct {
	// IgnoreZoomSetting skips the driver's check that the browser zoom
	// level is 100%
	IgnoreZoomSetting bool

	// RequireWindowFocus makes the driver use native events that need a
	// focused window
	RequireWindowFocus bool

	// EnablePersistentHover keeps firing mouse-over events on the
	// element under the cursor
	EnablePersistentHover bool

	// FileUploadDialogTimeout bounds how long the driver waits for a
	// file upload dialog, zero leaves the driver default
	FileUploadDialogTimeout time.Duration

	// AttachToEdge drives Edge in IE mode instead of a standalone IE
	AttachToEdge bool

	// EdgeExecutablePath locates the Edge binary for IE mode
	EdgeExecutablePath string

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
	ieOpts := map[string]any{}
	if o.IgnoreZoomSetting {
		ieOpts["ignoreZoomSetting"] = true
	}
	if o.RequireWindowFocus {
		ieOpts["requireWindowFocus"] = true
	}
	if o.EnablePersistentHover {
		ieOpts["enablePersistentHover"] = true
	}
	if o.FileUploadDialogTimeout > 0 {
		ieOpts["ie.fileUploadDialogTimeout"] = int(o.FileUploadDialogTimeout / time.Millisecond)
	}
	if o.AttachToEdge {
		ieOpts["ie.edgechromium"] = true
	}
	if o.EdgeExecutablePath != "" {
		ieOpts["ie.edgepath"] = o.EdgeExecutablePath
	}

	caps := capabilities.Map{
		capabilities.KeyBrowserName: BrowserName,
		OptionsKey:                  ieOpts,
	}
	for k, v := range o.caps {
		caps[k] = v
	}
	return caps
}
