package config

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"

	"github.com/Bkucera/selenium/pkg/capabilities"
)

// Policy restricts which vendor namespaces extension capabilities may
// use. Standard W3C capability names are never policed. Patterns use
// glob syntax and match the full capability name, "goog:*" style.
type Policy struct {
	// AllowedNamespaces are patterns extension names must match.
	// Empty means every namespace is allowed.
	AllowedNamespaces []string `yaml:"allowed_namespaces,omitempty" json:"allowed_namespaces,omitempty"`

	// DeniedNamespaces are patterns that reject matching names even
	// when an allow pattern also matches them
	DeniedNamespaces []string `yaml:"denied_namespaces,omitempty" json:"denied_namespaces,omitempty"`
}

// Violation reports a capability name rejected by a Policy.
type Violation struct {
	// Key is the rejected capability name
	Key string

	// Pattern is the deny pattern that matched, empty when the name
	// simply matched no allow pattern
	Pattern string
}

func (e *Violation) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("capability %q denied by policy pattern %q", e.Key, e.Pattern)
	}
	return fmt.Sprintf("capability %q matches no allowed namespace", e.Key)
}

// compiledPattern keeps the source text next to its compiled form so
// violations can name the pattern that fired.
type compiledPattern struct {
	text string
	glob glob.Glob
}

// Matcher is the compiled form of a Policy.
type Matcher struct {
	allowed []compiledPattern
	denied  []compiledPattern
}

// Compile parses the policy's glob patterns. A nil policy compiles to a
// matcher that allows everything.
func (p *Policy) Compile() (*Matcher, error) {
	m := &Matcher{}
	if p == nil {
		return m, nil
	}
	var err error
	if m.allowed, err = compilePatterns(p.AllowedNamespaces); err != nil {
		return nil, fmt.Errorf("invalid allowed namespace: %w", err)
	}
	if m.denied, err = compilePatterns(p.DeniedNamespaces); err != nil {
		return nil, fmt.Errorf("invalid denied namespace: %w", err)
	}
	return m, nil
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, compiledPattern{text: pattern, glob: g})
	}
	return compiled, nil
}

// Check reports the first extension capability in caps the policy
// rejects, in lexical order, or nil when every name passes.
func (m *Matcher) Check(caps capabilities.Map) error {
	keys := make([]string, 0, len(caps))
	for k := range caps {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !capabilities.IsExtensionKey(k) {
			continue
		}
		if v := m.violation(k); v != nil {
			return v
		}
	}
	return nil
}

// violation applies deny precedence, then the allow list.
func (m *Matcher) violation(key string) *Violation {
	for _, p := range m.denied {
		if p.glob.Match(key) {
			return &Violation{Key: key, Pattern: p.text}
		}
	}
	if len(m.allowed) == 0 {
		return nil
	}
	for _, p := range m.allowed {
		if p.glob.Match(key) {
			return nil
		}
	}
	return &Violation{Key: key}
}
