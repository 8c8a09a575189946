// Package remote builds W3C WebDriver new session requests.
//
// A Builder collects browser option sets, globally applied capabilities,
// top-level metadata, and the execution target, validating each input the
// moment it arrives. Plan freezes the collected state into an immutable
// Plan that can render the request payload and answer where it should be
// sent. Sending the request, and starting or stopping a local driver
// process, belong to the caller.
//
// # Payload Shape
//
// The serialized payload follows the W3C new session wire format:
//
//	{
//	  "capabilities": {
//	    "alwaysMatch": { ... },
//	    "firstMatch": [ { ... }, { ... } ]
//	  },
//	  "cloud:options": { ... }
//	}
//
// Each AddOptions call contributes one firstMatch entry in call order.
// SetCapability values form the alwaysMatch object and, on conflicting
// names, win over entry values in the plan's effective view. AddMetadata
// fields are written next to the capabilities object.
//
// # Execution Target
//
// A builder accepts at most one execution target: URL for an
// already-running remote end, or WithDriverService for a locally-managed
// driver process. Any second target assignment fails with
// ErrTargetConflict. A builder with no target produces a plan whose
// target accessors report nothing; resolving a default is left to the
// caller.
//
// # Errors
//
// Configuration methods never panic and never raise asynchronously. The
// first invalid input is latched, the builder ignores everything after
// it, and both Err and Plan report that error.
//
// # Example Usage
//
//	builder := remote.NewBuilder().
//	    AddOptions(&chrome.Options{Args: []string{"--headless=new"}}).
//	    SetCapability("se:downloadsEnabled", true).
//	    AddMetadata("cloud:options", map[string]any{"build": "1742"}).
//	    URL("http://localhost:4444/wd/hub")
//
//	plan, err := builder.Plan()
//	if err != nil {
//	    return err
//	}
//	var body bytes.Buffer
//	if err := plan.WritePayload(&body); err != nil {
//	    return err
//	}
package remote
