// Package config loads session definitions: YAML documents describing
// the option sets, globally applied capabilities, metadata, execution
// target, and capability namespace policy of one new session request.
// A definition can be validated on its own and assembled into a
// remote.Builder.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Bkucera/selenium/pkg/capabilities"
	"github.com/Bkucera/selenium/pkg/chrome"
	"github.com/Bkucera/selenium/pkg/edge"
	"github.com/Bkucera/selenium/pkg/firefox"
	"github.com/Bkucera/selenium/pkg/ie"
	"github.com/Bkucera/selenium/pkg/remote"
	"github.com/Bkucera/selenium/pkg/service"
)

// Session is one new session request in file form.
type Session struct {
	// RemoteURL aims the request at an already-running remote end.
	// Mutually exclusive with Service.
	RemoteURL string `yaml:"remote_url,omitempty" json:"remote_url,omitempty"`

	// Service aims the request at a locally-managed driver process
	Service *service.Config `yaml:"driver_service,omitempty" json:"driver_service,omitempty"`

	// Capabilities apply to every browser entry and win over per-entry
	// values on conflicting names
	Capabilities map[string]any `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`

	// Browsers are the candidate option sets, in preference order
	Browsers []Browser `yaml:"browsers" json:"browsers"`

	// Metadata fields ride along at the top level of the payload
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	// Policy restricts the vendor namespaces the definition may use
	Policy *Policy `yaml:"policy,omitempty" json:"policy,omitempty"`
}

// Browser is one candidate option set in a session definition.
type Browser struct {
	// Name selects the option type: chrome, edge, firefox, ie, or raw
	Name string `yaml:"browser" json:"browser"`

	// Binary overrides the browser executable path
	Binary string `yaml:"binary,omitempty" json:"binary,omitempty"`

	// Args are browser command line arguments
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`

	// Prefs are browser profile preferences
	Prefs map[string]any `yaml:"prefs,omitempty" json:"prefs,omitempty"`

	// Capabilities are attached to the rendered option set last, so
	// they can override what the option type produces
	Capabilities map[string]any `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
}

// Load reads a session definition from path.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session definition: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML session definition.
func Parse(data []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session definition: %w", err)
	}
	return &s, nil
}

// Validate checks the definition for everything a builder or the policy
// would reject, without building anything.
func (s *Session) Validate() error {
	if s.RemoteURL != "" && s.Service != nil {
		return fmt.Errorf("session definition: %w", remote.ErrTargetConflict)
	}
	if len(s.Browsers) == 0 {
		return fmt.Errorf("session definition needs at least one browser entry")
	}
	if s.Service != nil {
		if err := s.Service.Validate(); err != nil {
			return fmt.Errorf("driver service: %w", err)
		}
	}

	matcher, err := s.Policy.Compile()
	if err != nil {
		return err
	}

	globals := capabilities.Map(s.Capabilities)
	if err := globals.Validate(); err != nil {
		return fmt.Errorf("global capabilities: %w", err)
	}
	if err := matcher.Check(globals); err != nil {
		return fmt.Errorf("global capabilities: %w", err)
	}

	for i, entry := range s.Browsers {
		opts, err := entry.Options()
		if err != nil {
			return fmt.Errorf("browser %d: %w", i+1, err)
		}
		caps := opts.CapabilityMap()
		if err := caps.Validate(); err != nil {
			return fmt.Errorf("browser %d: %w", i+1, err)
		}
		if err := matcher.Check(caps); err != nil {
			return fmt.Errorf("browser %d: %w", i+1, err)
		}
	}
	return nil
}

// Builder assembles a session plan builder from the definition. The
// builder applies its usual eager validation; Validate additionally
// enforces the definition's namespace policy, which Builder does not.
func (s *Session) Builder() (*remote.Builder, error) {
	b := remote.NewBuilder()
	for i, entry := range s.Browsers {
		opts, err := entry.Options()
		if err != nil {
			return nil, fmt.Errorf("browser %d: %w", i+1, err)
		}
		b.AddOptions(opts)
	}
	for _, key := range sortedKeys(s.Capabilities) {
		b.SetCapability(key, s.Capabilities[key])
	}
	for _, key := range sortedKeys(s.Metadata) {
		b.AddMetadata(key, s.Metadata[key])
	}
	if s.RemoteURL != "" {
		b.URL(s.RemoteURL)
	}
	if s.Service != nil {
		svc, err := service.New(*s.Service)
		if err != nil {
			return nil, err
		}
		b.WithDriverService(svc)
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// Options renders the entry's option set.
func (b Browser) Options() (capabilities.OptionSet, error) {
	extras := func(set interface{ SetCapability(string, any) }) {
		for _, key := range sortedKeys(b.Capabilities) {
			set.SetCapability(key, b.Capabilities[key])
		}
	}

	switch strings.ToLower(b.Name) {
	case "chrome":
		o := &chrome.Options{Binary: b.Binary, Args: b.Args, Prefs: b.Prefs}
		extras(o)
		return o, nil
	case "edge", "microsoftedge":
		o := &edge.Options{Binary: b.Binary, Args: b.Args, Prefs: b.Prefs}
		extras(o)
		return o, nil
	case "firefox":
		o := &firefox.Options{Binary: b.Binary, Args: b.Args, Prefs: b.Prefs}
		extras(o)
		return o, nil
	case "ie", "internet explorer":
		if b.Binary != "" || len(b.Args) > 0 || len(b.Prefs) > 0 {
			return nil, fmt.Errorf("browser %q accepts capabilities only, not binary, args, or prefs", b.Name)
		}
		o := &ie.Options{}
		extras(o)
		return o, nil
	case "raw":
		if b.Binary != "" || len(b.Args) > 0 || len(b.Prefs) > 0 {
			return nil, fmt.Errorf("browser %q accepts capabilities only, not binary, args, or prefs", b.Name)
		}
		if len(b.Capabilities) == 0 {
			return nil, fmt.Errorf("raw browser entry needs capabilities")
		}
		caps := capabilities.Map{}
		for k, v := range b.Capabilities {
			caps[k] = v
		}
		return caps, nil
	case "":
		return nil, fmt.Errorf("browser entry is missing the browser name")
	default:
		return nil, fmt.Errorf("unknown browser %q", b.Name)
	}
}

// KnownBrowsers lists the browser names a session definition accepts.
func KnownBrowsers() []string {
	return []string{"chrome", "edge", "firefox", "ie", "raw"}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
