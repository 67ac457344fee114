package series

import "errors"

// Sentinel errors for series operations. Callers branch with errors.Is.
var (
	// ErrOutOfRange indicates a Line access outside the written/cursor
	// range: a positive offset, a read before the first slot, a read past
	// the available history, or a write to any offset other than 0.
	ErrOutOfRange = errors.New("series: index out of range")

	// ErrNoLines indicates a Group was declared with zero lines.
	ErrNoLines = errors.New("series: group needs at least one line")

	// ErrDupLine indicates a Group declared the same line name twice.
	ErrDupLine = errors.New("series: duplicate line name")

	// ErrUnknownLine indicates a lookup of a line name or index that the
	// Group does not declare.
	ErrUnknownLine = errors.New("series: unknown line")

	// ErrBindRange indicates a binding referenced a line index outside the
	// declared arity of either group, or mismatched index lists.
	ErrBindRange = errors.New("series: binding index out of range")
)
