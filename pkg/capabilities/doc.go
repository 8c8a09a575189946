// Package capabilities models the capability maps exchanged with a
// WebDriver remote end and enforces the naming rules the W3C WebDriver
// specification applies to new session requests.
//
// # Capability Names
//
// A capability name is valid when it is either one of the fixed standard
// names (browserName, platformName, proxy, timeouts and the rest of the
// Key constants) or a vendor extension of the form "vendor:option" with a
// non-empty prefix and suffix. Every other name is invalid. Names from
// the retired JSON Wire Protocol, such as "platform" or "version", are
// rejected rather than translated; the resulting InvalidKeyError carries
// the W3C replacement as a hint.
//
// # Merging
//
// Merge overlays two maps and lets the receiver win on conflicting names.
// The session plan's effective capability view is built this way: the
// globally applied capabilities are the receiver, so they shadow values
// carried by individual option sets.
//
// # Option Sets
//
// Browser-specific option types (chrome.Options, firefox.Options and
// friends) implement OptionSet by rendering themselves to a Map. A raw
// Map is itself an OptionSet, so plain capability maps can be handed to
// the builder directly.
package capabilities
