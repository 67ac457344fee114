package engine

import (
	"errors"

	"github.com/katalvlaran/lineflow/series"
)

// Sentinel errors for graph construction and scheduling. Callers branch
// with errors.Is; the engine performs no silent recovery — a construction
// or computation error aborts the run.
var (
	// ErrNoClock indicates a node has no stream input and no owner to
	// borrow a clock from. Fatal: the graph cannot be constructed.
	ErrNoClock = errors.New("engine: node has no data and no owner to provide a clock")

	// ErrBindRange indicates a binding referenced a line index outside the
	// declared arity of either side, or the binding endpoint has no lines.
	// It aliases series.ErrBindRange, so a single errors.Is branch covers
	// range failures raised at either layer.
	ErrBindRange = series.ErrBindRange

	// ErrMinPeriodViolation indicates a steady-state callback was about to
	// run before the clock reached the node's minimum period. This is an
	// internal invariant failure of the scheduler, not a user-recoverable
	// condition.
	ErrMinPeriodViolation = errors.New("engine: steady-state dispatch before minimum period")

	// ErrNilDelegate indicates Construct was given no lifecycle delegate.
	ErrNilDelegate = errors.New("engine: lifecycle delegate is required")

	// ErrNilContext indicates Construct was called without a Context.
	ErrNilContext = errors.New("engine: construction context is required")

	// ErrBadPeriod indicates a minimum-period adjustment of less than one
	// sample, which cannot describe a warm-up requirement.
	ErrBadPeriod = errors.New("engine: minimum period must be at least 1")

	// ErrConstructed indicates Construct was called twice on the same node.
	ErrConstructed = errors.New("engine: node already constructed")
)
