package engine

import "github.com/katalvlaran/lineflow/series"

// Kind is the closed set of node capabilities, selected at registration
// time. There is deliberately no runtime type inspection: a node's kind
// decides whether it contributes to the owner's warm-up requirement and
// when it is scheduled, nothing else does.
type Kind int

const (
	// KindStream marks a plain series producer: it registers with no
	// owner list and paces others as a clock (data feeds, root nodes).
	KindStream Kind = iota

	// KindIndicator marks a computational dependent: it registers into
	// the owner's children, contributes its minimum period, and runs
	// before the owner's own callbacks.
	KindIndicator

	// KindObserver marks a passive consumer: it registers into the
	// owner's observers, never contributes to the minimum period, and
	// runs after the owner's own callbacks.
	KindObserver
)

// Stream is anything that produces cursor-synchronized lines: bar feeds
// and computation nodes alike. The clock of a node is always a Stream.
type Stream interface {
	// Lines returns the stream's line group, or nil for line-less nodes.
	Lines() *series.Group

	// Len reports how many bars the stream has produced so far.
	Len() int

	// BufLen reports the allocated bar capacity (≥ Len once pre-sized).
	BufLen() int

	// Forward grows the stream by n bars, advancing its cursor.
	Forward(n int)

	// Home resets the stream's cursor to the start for a batch re-scan.
	Home()

	// MinPeriod reports the number of clock bars the stream needs before
	// its values are valid. Plain data feeds report 1.
	MinPeriod() int
}

// Lifecycle is the set of computation callbacks a node implements.
// The embedded Node supplies defaults: PreNext, PreOnce and Once are
// no-ops; NextStart delegates to Next; Next is a no-op. Concrete nodes
// override the subset they need.
//
// Step-mode callbacks read and write through line cursors; batch-mode
// callbacks (PreOnce, Once) fill lines by absolute index over
// [start, end) and must produce buffers identical to repeated step
// dispatch — that equivalence is the engine's primary correctness
// property.
type Lifecycle interface {
	// PreNext runs on every bar while clock length < minimum period.
	PreNext() error

	// NextStart runs exactly once, on the bar where clock length reaches
	// the minimum period.
	NextStart() error

	// Next runs on every bar past the minimum period.
	Next() error

	// PreOnce covers the warm-up index range [start, end) in batch mode.
	PreOnce(start, end int) error

	// Once covers the steady-state index range [start, end) in batch mode.
	Once(start, end int) error
}

// Notifier is an optional extension of Lifecycle: a node implementing it
// has pending cross-cutting events delivered once per step, after its
// children have advanced and before its own dispatch.
type Notifier interface {
	Notify() error
}

// Config describes one node to Construct.
//
// Inputs holds only stream-shaped arguments; plain parameters (periods,
// factors) stay on the concrete node and never enter the engine. An
// empty Inputs falls back to the owner's stream so the node always has
// a clock.
type Config struct {
	// Kind selects the registration capability set.
	Kind Kind

	// Lines declares the node's output line names, in order. Empty means
	// the node produces no lines of its own (e.g. a root driver node);
	// its advancement is then tracked by an internal bar counter.
	Lines []string

	// Inputs are the stream arguments ("datas"). Inputs[0] becomes the
	// node's clock.
	Inputs []Stream

	// Delegate receives the lifecycle callbacks. Usually the concrete
	// node embedding the Node being constructed.
	Delegate Lifecycle

	// Init is the node's own setup hook, run with the node on top of the
	// construction stack so sub-nodes built inside it find their owner.
	// Optional.
	Init func() error
}
