package domain

import "errors"

var (
	// ErrNotFound is returned when an id, slug or index does not match
	// anything. For share lookups it is a normal outcome, not a failure;
	// for collection edits it replaces the silent no-op of the original
	// editor so callers can tell a miss from a write.
	ErrNotFound = errors.New("not found")

	// ErrLastResponsibility guards the invariant that an experience
	// entry always keeps at least one responsibility line.
	ErrLastResponsibility = errors.New("cannot remove the last responsibility")

	// ErrUnknownCollection is returned for a collection name outside the
	// fixed set of profile collections.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnknownField is returned when an update names a field the
	// entity kind does not have.
	ErrUnknownField = errors.New("unknown field")
)
