package engine

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/lineflow/series"
)

// Node is the computation unit of the graph: it reads zero or more input
// streams ("datas"), optionally owns an output line group, and advances
// in lockstep with its clock (datas[0]). Concrete nodes embed Node and
// pass themselves as the lifecycle delegate to Construct.
//
// A Node is never shared across goroutines: execution is single-threaded
// and depth-first by design, which is what makes the one-writer-per-line
// rule hold without locks.
type Node struct {
	ctx   *Context
	id    NodeID
	owner NodeID
	kind  Kind

	datas []Stream
	clock Stream
	lines *series.Group

	minPeriod int

	// children keeps registration order and drops duplicates; childList
	// is the derived iteration list with a self-referential clock
	// spliced out.
	children     *linkedhashset.Set
	childList    []*Node
	observers    []*Node
	clockNode    *Node
	clockIsChild bool

	delegate Lifecycle
	notifier Notifier

	// bar counters for line-less nodes (root drivers): length mirrors the
	// cursor position, alloc mirrors the buffer allocation.
	barLen   int
	barAlloc int
}

// Construct runs the three-phase construction protocol on n.
//
// Pre-init resolves the owner from the context stack, adopts cfg.Inputs
// as datas (falling back to the owner's stream, or failing with
// ErrNoClock), sets the clock and seeds the minimum period. Init runs
// cfg.Init with n pushed on the construction stack. Post-init registers
// n with its owner according to cfg.Kind and finalizes the child
// iteration list.
//
// Registration happens only after Init completes, so children are fully
// formed before the owner records their minimum-period contribution.
func Construct(ctx *Context, n *Node, cfg Config) error {
	if ctx == nil {
		return ErrNilContext
	}
	if n.ctx != nil {
		return ErrConstructed
	}
	if cfg.Delegate == nil {
		return ErrNilDelegate
	}

	// Phase 1: pre-init.
	ownerID := ctx.owner()
	datas := make([]Stream, len(cfg.Inputs))
	copy(datas, cfg.Inputs)
	if len(datas) == 0 {
		own := ctx.Node(ownerID)
		if own == nil {
			return ErrNoClock
		}
		datas = []Stream{own}
	}

	var lines *series.Group
	if len(cfg.Lines) > 0 {
		var err error
		if lines, err = series.NewGroup(cfg.Lines...); err != nil {
			return fmt.Errorf("engine: declare lines: %w", err)
		}
	}

	n.ctx = ctx
	n.owner = ownerID
	n.kind = cfg.Kind
	n.datas = datas
	n.clock = datas[0]
	n.lines = lines
	n.delegate = cfg.Delegate
	n.children = linkedhashset.New()

	n.minPeriod = 1
	for _, d := range datas {
		if mp := d.MinPeriod(); mp > n.minPeriod {
			n.minPeriod = mp
		}
	}

	if nf, ok := cfg.Delegate.(Notifier); ok {
		n.notifier = nf
	}

	n.id = ctx.register(n)

	// Phase 2: init. Sub-nodes built inside cfg.Init resolve n as owner.
	ctx.push(n.id)
	if cfg.Init != nil {
		if err := cfg.Init(); err != nil {
			ctx.pop()

			return fmt.Errorf("engine: init node: %w", err)
		}
	}
	ctx.pop()

	// Phase 3: post-init.
	if own := ctx.Node(ownerID); own != nil {
		switch cfg.Kind {
		case KindObserver:
			own.AddObserver(n)
		case KindIndicator:
			own.AddChild(n)
		case KindStream:
			// Plain stream producers pace others; they register nowhere.
		}
	}
	n.rebuildChildren()

	return nil
}

// ID returns the node's arena index within its context.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the capability set the node registered with.
func (n *Node) Kind() Kind { return n.kind }

// Owner resolves the owning node, or nil for a root.
func (n *Node) Owner() *Node { return n.ctx.Node(n.owner) }

// Datas returns the node's input streams. The slice is shared storage;
// callers must not mutate it.
func (n *Node) Datas() []Stream { return n.datas }

// Clock returns the stream whose growth paces this node.
func (n *Node) Clock() Stream { return n.clock }

// Lines returns the node's output group, or nil for line-less nodes.
func (n *Node) Lines() *series.Group { return n.lines }

// MinPeriod reports the clock bars required before steady state.
func (n *Node) MinPeriod() int { return n.minPeriod }

// Len reports the bars this node has produced so far.
func (n *Node) Len() int {
	if n.lines != nil {
		return n.lines.Len()
	}

	return n.barLen
}

// BufLen reports the allocated bar capacity.
func (n *Node) BufLen() int {
	if n.lines != nil {
		return n.lines.BufLen()
	}

	return n.barAlloc
}

// Forward grows the node's own storage by k bars.
func (n *Node) Forward(k int) {
	if n.lines != nil {
		n.lines.Forward(k)

		return
	}
	n.barLen += k
	if n.barLen > n.barAlloc {
		n.barAlloc = n.barLen
	}
}

// Extend pre-sizes the node's own storage by k bars without moving
// cursors (batch mode).
func (n *Node) Extend(k int) {
	if n.lines != nil {
		n.lines.Extend(k)

		return
	}
	n.barAlloc += k
}

// Home resets the node's cursors to the start, keeping storage.
func (n *Node) Home() {
	if n.lines != nil {
		n.lines.Home()

		return
	}
	n.barLen = 0
}

// AddChild registers a computational dependent, raising this node's
// minimum period to cover the child's. Children are deduplicated
// preserving first-registration order: re-registering the same node is
// a no-op apart from the (idempotent) minimum-period raise.
func (n *Node) AddChild(child *Node) {
	n.children.Add(child)
	if child.minPeriod > n.minPeriod {
		n.minPeriod = child.minPeriod
	}
	n.rebuildChildren()
}

// AddObserver registers a passive consumer. Observers never contribute
// to the minimum period and are notified after the node's own
// computation, in registration order.
func (n *Node) AddObserver(obs *Node) {
	n.observers = append(n.observers, obs)
}

// RaiseMinPeriod records that the node needs extra consecutive samples
// of its own history beyond the single-bar default. The increment is
// extra-1 because one bar of warm-up is already implied.
//
// Call this during the node's Init: the owner copies a child's minimum
// period once, at post-init registration, so a raise after construction
// does not propagate owner-ward.
func (n *Node) RaiseMinPeriod(extra int) error {
	if extra < 1 {
		return ErrBadPeriod
	}
	n.minPeriod += extra - 1

	return nil
}

// BindOutputs declares that this node's selected output lines write
// through into the owner's lines, by position: ownIdx[k] feeds
// ownerIdx[k]. A nil ownerIdx defaults to [0]; a nil ownIdx defaults to
// 0..len(ownerIdx)-1. Indices outside either declared arity fail with a
// binding-range error at bind time.
func (n *Node) BindOutputs(ownerIdx, ownIdx []int) error {
	own := n.ctx.Node(n.owner)
	if own == nil || own.lines == nil || n.lines == nil {
		return ErrBindRange
	}
	if ownerIdx == nil {
		ownerIdx = []int{0}
	}
	if ownIdx == nil {
		ownIdx = make([]int, len(ownerIdx))
		for i := range ownIdx {
			ownIdx[i] = i
		}
	}
	if err := n.lines.BindTo(own.lines, ownIdx, ownerIdx); err != nil {
		return fmt.Errorf("engine: bind outputs: %w", err)
	}

	return nil
}

// BindInputs is the mirror declaration: the target stream's lines read
// from this node's lines, srcIdx[k] feeding dstIdx[k].
func (n *Node) BindInputs(target Stream, srcIdx, dstIdx []int) error {
	if target == nil || target.Lines() == nil || n.lines == nil {
		return ErrBindRange
	}
	if err := n.lines.BindTo(target.Lines(), srcIdx, dstIdx); err != nil {
		return fmt.Errorf("engine: bind inputs: %w", err)
	}

	return nil
}

// nodeCarrier identifies streams that are (or embed) an engine Node.
// Concrete nodes satisfy it through the embedded Node, so clock identity
// survives the interface boxing of Config.Inputs.
type nodeCarrier interface {
	base() *Node
}

func (n *Node) base() *Node { return n }

// isClock reports whether child is the node's pacing stream.
func (n *Node) isClock(child *Node) bool {
	if c, ok := n.clock.(nodeCarrier); ok {
		return c.base() == child
	}

	return false
}

// rebuildChildren derives the iteration list from the registration set,
// splicing out a self-referential clock. The clock is still advanced —
// explicitly, before anything else in a step — just not iterated as an
// ordinary child.
func (n *Node) rebuildChildren() {
	n.childList = n.childList[:0]
	n.clockIsChild = false
	n.clockNode = nil
	for _, v := range n.children.Values() {
		child := v.(*Node)
		if !n.clockIsChild && n.isClock(child) {
			n.clockIsChild = true
			n.clockNode = child

			continue
		}
		n.childList = append(n.childList, child)
	}
}

// Default lifecycle: concrete nodes override the subset they need.

// PreNext runs during warm-up; default no-op.
func (n *Node) PreNext() error { return nil }

// NextStart runs once when the clock reaches the minimum period;
// default delegates to the node's Next.
func (n *Node) NextStart() error { return n.delegate.Next() }

// Next runs in steady state; default no-op.
func (n *Node) Next() error { return nil }

// PreOnce covers the warm-up range in batch mode; default no-op.
func (n *Node) PreOnce(_, _ int) error { return nil }

// Once covers the steady-state range in batch mode; default no-op.
func (n *Node) Once(_, _ int) error { return nil }
