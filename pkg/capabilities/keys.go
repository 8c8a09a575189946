package capabilities

import (
	"fmt"
	"strings"
)

// Standard capability names defined by the W3C WebDriver specification.
// Only these names, plus vendor extension names, may appear in a new
// session request.
const (
	KeyAcceptInsecureCerts       = "acceptInsecureCerts"
	KeyBrowserName               = "browserName"
	KeyBrowserVersion            = "browserVersion"
	KeyPageLoadStrategy          = "pageLoadStrategy"
	KeyPlatformName              = "platformName"
	KeyProxy                     = "proxy"
	KeySetWindowRect             = "setWindowRect"
	KeyStrictFileInteractability = "strictFileInteractability"
	KeyTimeouts                  = "timeouts"
	KeyUnhandledPromptBehavior   = "unhandledPromptBehavior"
	KeyWebSocketURL              = "webSocketUrl"
)

// standardKeys is the exact, case-sensitive membership set for IsStandardKey.
var standardKeys = map[string]struct{}{
	KeyAcceptInsecureCerts:       {},
	KeyBrowserName:               {},
	KeyBrowserVersion:            {},
	KeyPageLoadStrategy:          {},
	KeyPlatformName:              {},
	KeyProxy:                     {},
	KeySetWindowRect:             {},
	KeyStrictFileInteractability: {},
	KeyTimeouts:                  {},
	KeyUnhandledPromptBehavior:   {},
	KeyWebSocketURL:              {},
}

// legacyHints maps JSON Wire Protocol capability names to the W3C names
// that replaced them. Legacy names are rejected, never translated; the
// hint only improves the error message.
var legacyHints = map[string]string{
	"platform":       KeyPlatformName,
	"version":        KeyBrowserVersion,
	"acceptSslCerts": KeyAcceptInsecureCerts,
}

// InvalidKeyError reports a capability name that is neither a standard W3C
// capability nor a vendor extension.
type InvalidKeyError struct {
	// Key is the offending capability name
	Key string

	// Hint is the W3C replacement for a known legacy name, or empty
	Hint string
}

func (e *InvalidKeyError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid capability %q: legacy JSON Wire Protocol name, use %q", e.Key, e.Hint)
	}
	return fmt.Sprintf("invalid capability %q: not a W3C capability or a vendor extension", e.Key)
}

// IsStandardKey reports whether key is one of the fixed W3C capability
// names. Matching is exact and case sensitive.
func IsStandardKey(key string) bool {
	_, ok := standardKeys[key]
	return ok
}

// IsExtensionKey reports whether key is a vendor extension name: a
// non-empty vendor prefix and a non-empty suffix separated by a colon.
func IsExtensionKey(key string) bool {
	prefix, suffix, found := strings.Cut(key, ":")
	return found && prefix != "" && suffix != ""
}

// ValidateKey checks a single capability name against the WebDriver
// naming rules.
func ValidateKey(key string) error {
	if IsStandardKey(key) || IsExtensionKey(key) {
		return nil
	}
	return &InvalidKeyError{Key: key, Hint: legacyHints[key]}
}
