package capabilities

import "sort"

// Map is a WebDriver capability map: capability names to JSON-compatible
// values. Values must stay within the JSON universe (strings, bools,
// numbers, []any style slices, map[string]any style maps) so a Map can be
// serialized into a new session request without conversion.
type Map map[string]any

// OptionSet is the contract between browser-specific option types and the
// session plan builder. Implementations render themselves to a plain
// capability map; the builder validates and stores the rendered map.
type OptionSet interface {
	// CapabilityMap renders the option set as a WebDriver capability map
	CapabilityMap() Map
}

// CapabilityMap returns m itself, letting a raw map act as an OptionSet.
func (m Map) CapabilityMap() Map { return m }

// Validate checks every capability name in m against the WebDriver naming
// rules. The offending key lowest in lexical order is reported, so the
// result is deterministic regardless of map iteration order.
func (m Map) Validate() error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := ValidateKey(k); err != nil {
			return err
		}
	}
	return nil
}

// Merge returns a new map holding other overlaid with m. On conflicting
// names the receiver's value wins. Neither input is modified.
func (m Map) Merge(other Map) Map {
	merged := make(Map, len(m)+len(other))
	for k, v := range other {
		merged[k] = v
	}
	for k, v := range m {
		merged[k] = v
	}
	return merged
}

// Clone returns a deep copy of m. Nested maps and slices are copied too,
// so the clone shares no mutable state with the original.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Map:
		return val.Clone()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, nested := range val {
			out[k] = cloneValue(nested)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, nested := range val {
			out[i] = cloneValue(nested)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// Has reports whether the named capability is present.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// GetString returns the named capability when it holds a string, or "".
func (m Map) GetString(key string) string {
	s, _ := m[key].(string)
	return s
}

// GetBool returns the named capability when it holds a bool, or false.
func (m Map) GetBool(key string) bool {
	b, _ := m[key].(bool)
	return b
}

// BrowserName returns the browserName capability, or "" when unset.
func (m Map) BrowserName() string { return m.GetString(KeyBrowserName) }

// BrowserVersion returns the browserVersion capability, or "" when unset.
func (m Map) BrowserVersion() string { return m.GetString(KeyBrowserVersion) }

// PlatformName returns the platformName capability, or "" when unset.
func (m Map) PlatformName() string { return m.GetString(KeyPlatformName) }

// PageLoadStrategy controls when the remote end considers a navigation
// complete.
type PageLoadStrategy string

const (
	// PageLoadNormal waits for the full document load event (the default)
	PageLoadNormal PageLoadStrategy = "normal"

	// PageLoadEager waits for DOMContentLoaded only
	PageLoadEager PageLoadStrategy = "eager"

	// PageLoadNone returns as soon as the navigation was started
	PageLoadNone PageLoadStrategy = "none"
)

// SetPageLoadStrategy stores s under the pageLoadStrategy capability.
func (m Map) SetPageLoadStrategy(s PageLoadStrategy) {
	m[KeyPageLoadStrategy] = string(s)
}

// UnhandledPromptBehavior tells the remote end what to do with a user
// prompt no command is waiting on.
type UnhandledPromptBehavior string

const (
	PromptDismiss          UnhandledPromptBehavior = "dismiss"
	PromptAccept           UnhandledPromptBehavior = "accept"
	PromptDismissAndNotify UnhandledPromptBehavior = "dismiss and notify"
	PromptAcceptAndNotify  UnhandledPromptBehavior = "accept and notify"
	PromptIgnore           UnhandledPromptBehavior = "ignore"
)

// SetUnhandledPromptBehavior stores b under the unhandledPromptBehavior
// capability.
func (m Map) SetUnhandledPromptBehavior(b UnhandledPromptBehavior) {
	m[KeyUnhandledPromptBehavior] = string(b)
}
