package capabilities

// Defaults the WebDriver specification assigns when a timeout is not
// negotiated, in milliseconds.
const (
	// DefaultScriptTimeout bounds script execution
	DefaultScriptTimeout = 30000

	// DefaultPageLoadTimeout bounds navigation
	DefaultPageLoadTimeout = 300000

	// DefaultImplicitTimeout is the element location retry window
	DefaultImplicitTimeout = 0
)

// Timeouts is the W3C session timeouts object. All values are in
// milliseconds; zero fields are omitted from the wire form.
type Timeouts struct {
	// Script bounds synchronous and asynchronous script execution
	Script int `yaml:"script,omitempty"`

	// PageLoad bounds navigation
	PageLoad int `yaml:"page_load,omitempty"`

	// Implicit is the element location retry window
	Implicit int `yaml:"implicit,omitempty"`
}

// capabilityValue renders the timeouts in their wire form.
func (t Timeouts) capabilityValue() map[string]any {
	v := map[string]any{}
	if t.Script != 0 {
		v["script"] = t.Script
	}
	if t.PageLoad != 0 {
		v["pageLoad"] = t.PageLoad
	}
	if t.Implicit != 0 {
		v["implicit"] = t.Implicit
	}
	return v
}

// SetTimeouts stores t under the timeouts capability.
func (m Map) SetTimeouts(t Timeouts) {
	m[KeyTimeouts] = t.capabilityValue()
}
