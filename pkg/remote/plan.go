package remote

import (
	"encoding/json"
	"io"
	"net/url"

	"github.com/Bkucera/selenium/pkg/capabilities"
)

// Grouping keys of the W3C new session payload. Metadata may not use
// them.
const (
	wireCapabilities = "capabilities"
	wireAlwaysMatch  = "alwaysMatch"
	wireFirstMatch   = "firstMatch"
)

// Plan is an immutable, fully-validated description of one new session
// request: the capability payload plus the execution target it should be
// sent to. Plans hold no references to the builder that produced them and
// are safe to share between goroutines.
type Plan struct {
	target      target
	alwaysMatch capabilities.Map
	firstMatch  []capabilities.Map
	metadata    map[string]any
}

// UsingDriverService reports whether the plan is aimed at a driver
// service managed by the caller rather than a remote URL.
func (p *Plan) UsingDriverService() bool {
	_, ok := p.target.(localService)
	return ok
}

// Service returns the driver service the plan is aimed at. It is nil when
// the plan targets a remote URL or carries no explicit target; check
// UsingDriverService first.
func (p *Plan) Service() DriverService {
	if t, ok := p.target.(localService); ok {
		return t.service
	}
	return nil
}

// RemoteURL returns a copy of the remote end the plan is aimed at. It is
// nil when the plan targets a driver service or carries no explicit
// target.
func (p *Plan) RemoteURL() *url.URL {
	if t, ok := p.target.(remoteEndpoint); ok {
		u := *t.url
		return &u
	}
	return nil
}

// AlwaysMatch returns a copy of the capabilities applied to every
// firstMatch entry.
func (p *Plan) AlwaysMatch() capabilities.Map {
	return p.alwaysMatch.Clone()
}

// FirstMatch returns copies of the option sets exactly as they were
// added, without the alwaysMatch overlay and in AddOptions order.
func (p *Plan) FirstMatch() []capabilities.Map {
	out := make([]capabilities.Map, len(p.firstMatch))
	for i, entry := range p.firstMatch {
		out[i] = entry.Clone()
	}
	return out
}

// Capabilities returns the effective capability set of every firstMatch
// entry: the entry overlaid with the alwaysMatch object, alwaysMatch
// winning on conflicting names. This is the view a remote end matches
// against; the stored representation keeps the two parts separate. The
// returned maps are deep copies and share nothing with the plan.
func (p *Plan) Capabilities() []capabilities.Map {
	out := make([]capabilities.Map, len(p.firstMatch))
	for i, entry := range p.firstMatch {
		out[i] = p.alwaysMatch.Merge(entry).Clone()
	}
	return out
}

// Metadata returns a copy of the plan's top-level metadata fields.
func (p *Plan) Metadata() map[string]any {
	return capabilities.Map(p.metadata).Clone()
}

// payload assembles the JSON body of the new session request.
func (p *Plan) payload() map[string]any {
	always := p.alwaysMatch
	if always == nil {
		always = capabilities.Map{}
	}
	first := p.firstMatch
	if len(first) == 0 {
		first = []capabilities.Map{{}}
	}

	body := make(map[string]any, len(p.metadata)+1)
	for k, v := range p.metadata {
		body[k] = v
	}
	body[wireCapabilities] = map[string]any{
		wireAlwaysMatch: always,
		wireFirstMatch:  first,
	}
	return body
}

// WritePayload serializes the plan as a W3C new session request body and
// writes it to w. The encoding is deterministic: object keys are emitted
// in sorted order, so equivalent plans produce identical bytes. Errors
// from w are returned unmodified and nothing is retried.
func (p *Plan) WritePayload(w io.Writer) error {
	data, err := json.Marshal(p.payload())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return nil
}
