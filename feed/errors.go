package feed

import "errors"

// Sentinel errors for feed adapters. Callers branch with errors.Is.
var (
	// ErrShortRecord indicates a record with fewer fields than the format
	// declares. The bar is not written.
	ErrShortRecord = errors.New("feed: record has too few fields")

	// ErrBadRecord indicates a record whose fields do not parse, or a bar
	// violating low ≤ min(open, close) ≤ max(open, close) ≤ high.
	// The bar is not written.
	ErrBadRecord = errors.New("feed: malformed record")
)
