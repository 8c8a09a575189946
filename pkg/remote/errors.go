package remote

import "errors"

var (
	// ErrSessionNotCreated is returned by Plan when no option sets were
	// added to the builder. A new session request needs at least one
	// candidate capability set.
	ErrSessionNotCreated = errors.New("session not created: no options were added to the builder")

	// ErrTargetConflict is returned when an execution target is assigned
	// to a builder that already has one, whether of the same kind or not.
	ErrTargetConflict = errors.New("execution target already chosen")

	// ErrReservedMetadataKey is returned when a metadata name collides
	// with one of the payload's capability grouping keys.
	ErrReservedMetadataKey = errors.New("metadata key is reserved by the new session payload")

	// ErrBuilderFinalized is returned when a builder is reconfigured
	// after a plan was created from it.
	ErrBuilderFinalized = errors.New("builder has already been finalized")
)
