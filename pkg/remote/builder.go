package remote

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Bkucera/selenium/pkg/capabilities"
)

// Builder assembles a W3C new session request. Option sets become
// firstMatch entries, globally applied capabilities become the alwaysMatch
// object, and metadata fields ride along at the top level of the payload.
//
// Every configuration method validates its input immediately and returns
// the receiver for chaining. The first failure is latched: the offending
// input is discarded, later calls become no-ops, and the error is
// reported by Err and again by Plan. A Builder must not be shared between
// goroutines without external synchronization.
type Builder struct {
	entries   []capabilities.Map
	overrides capabilities.Map
	metadata  map[string]any
	target    target
	finalized bool
	err       error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		overrides: capabilities.Map{},
		metadata:  map[string]any{},
	}
}

// fail latches the builder's first error and discards nothing that was
// accepted before it.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// AddOptions renders the option set, validates every capability name in
// it, and appends it as a new firstMatch entry. Entry order is the order
// of AddOptions calls. A map with any invalid name is rejected as a
// whole.
func (b *Builder) AddOptions(opts capabilities.OptionSet) *Builder {
	if b.err != nil {
		return b
	}
	if b.finalized {
		return b.fail(fmt.Errorf("add options: %w", ErrBuilderFinalized))
	}
	if opts == nil {
		return b.fail(errors.New("add options: nil option set"))
	}
	caps := opts.CapabilityMap()
	if err := caps.Validate(); err != nil {
		return b.fail(fmt.Errorf("add options: %w", err))
	}
	b.entries = append(b.entries, caps.Clone())
	return b
}

// SetCapability records a capability applied to every option set: those
// already added and those added later. In the plan's effective view a
// capability set here wins over the same name carried by an entry. Calling
// SetCapability again with the same key replaces the earlier value.
func (b *Builder) SetCapability(key string, value any) *Builder {
	if b.err != nil {
		return b
	}
	if b.finalized {
		return b.fail(fmt.Errorf("set capability %q: %w", key, ErrBuilderFinalized))
	}
	if err := capabilities.ValidateKey(key); err != nil {
		return b.fail(fmt.Errorf("set capability: %w", err))
	}
	b.overrides[key] = value
	return b
}

// AddMetadata attaches a top-level field to the new session payload, next
// to the capabilities object. Cloud providers use such fields for
// out-of-band session options. The payload grouping keys capabilities,
// alwaysMatch, and firstMatch are reserved and rejected.
func (b *Builder) AddMetadata(key string, value any) *Builder {
	if b.err != nil {
		return b
	}
	if b.finalized {
		return b.fail(fmt.Errorf("add metadata %q: %w", key, ErrBuilderFinalized))
	}
	if key == wireCapabilities || key == wireAlwaysMatch || key == wireFirstMatch {
		return b.fail(fmt.Errorf("add metadata %q: %w", key, ErrReservedMetadataKey))
	}
	b.metadata[key] = value
	return b
}

// URL aims the plan at an already-running remote end. The raw URL is
// parsed immediately; a malformed or scheme-less URL fails the builder.
// A builder takes one execution target; any second assignment fails with
// ErrTargetConflict.
func (b *Builder) URL(rawurl string) *Builder {
	if b.err != nil {
		return b
	}
	if b.finalized {
		return b.fail(fmt.Errorf("set remote URL: %w", ErrBuilderFinalized))
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		return b.fail(fmt.Errorf("parse remote URL: %w", err))
	}
	if u.Scheme == "" {
		return b.fail(fmt.Errorf("parse remote URL %q: missing scheme", rawurl))
	}
	if b.target != nil {
		return b.fail(fmt.Errorf("set remote URL %q: %w", rawurl, ErrTargetConflict))
	}
	b.target = remoteEndpoint{url: u}
	return b
}

// WithDriverService aims the plan at a driver service managed by the
// caller. The single-assignment rule of URL applies here too.
func (b *Builder) WithDriverService(svc DriverService) *Builder {
	if b.err != nil {
		return b
	}
	if b.finalized {
		return b.fail(fmt.Errorf("set driver service: %w", ErrBuilderFinalized))
	}
	if svc == nil {
		return b.fail(errors.New("set driver service: nil service"))
	}
	if b.target != nil {
		return b.fail(fmt.Errorf("set driver service: %w", ErrTargetConflict))
	}
	b.target = localService{service: svc}
	return b
}

// Err returns the first error recorded by any configuration call, or nil.
// Once an error is recorded the builder ignores further configuration.
func (b *Builder) Err() error { return b.err }

// Plan finalizes the builder and returns an immutable session plan. At
// least one option set must have been added; a builder that never saw
// AddOptions fails with ErrSessionNotCreated and stays configurable.
//
// After the first successful call the builder is frozen: configuration
// methods fail with ErrBuilderFinalized, while calling Plan again returns
// a new equivalent plan derived from the same accumulated state.
func (b *Builder) Plan() (*Plan, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.entries) == 0 {
		return nil, ErrSessionNotCreated
	}
	b.finalized = true

	first := make([]capabilities.Map, len(b.entries))
	for i, entry := range b.entries {
		first[i] = entry.Clone()
	}
	return &Plan{
		target:      b.target,
		alwaysMatch: b.overrides.Clone(),
		firstMatch:  first,
		metadata:    capabilities.Map(b.metadata).Clone(),
	}, nil
}
