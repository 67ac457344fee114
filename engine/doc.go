// Package engine implements the graph-construction and dual-mode
// execution core of lineflow: computation nodes that consume one or more
// time-ordered streams, lazily produce derived streams, and advance in
// lockstep with a designated clock stream.
//
// 🚀 How a graph is built
//
//	Nodes are constructed inside an explicit Context. While a node's Init
//	hook runs, the node sits on top of the context's construction stack,
//	so any sub-node built inside Init discovers it as the owner — no
//	ambient globals, no reflection. Ownership is recorded as an index
//	into the context's node arena, never as a strong reference.
//
// Construction runs in three ordered phases:
//  1. pre-init: resolve the owner, adopt stream inputs as datas (falling
//     back to the owner so the node always has a clock), set the clock to
//     datas[0], seed the minimum period from the inputs;
//  2. init: run the node's own setup, including recursive construction
//     of sub-nodes against this node;
//  3. post-init: register with the owner as child or observer, dedupe
//     children preserving first-registration order, and splice a
//     self-referential clock out of the ordinary iteration list.
//
// ✨ Execution
//
//	Two interchangeable evaluation strategies are provided and must agree
//	bar for bar:
//	  • StepOne — incremental: advance the clock, grow own storage,
//	    recurse into children, dispatch PreNext/NextStart/Next against
//	    the warm-up requirement, then notify observers;
//	  • RunOnce — vectorized: pre-size all storage, compute children,
//	    reset cursors, run PreOnce/Once over absolute index ranges, then
//	    resolve output bindings.
//
// Execution is single-threaded, depth-first and synchronous. Children
// always run before the parent that depends on them; observers always
// run after; a self-referential clock advances exactly once per step.
//
// Errors are package-level sentinels (ErrNoClock, ErrBindRange,
// ErrMinPeriodViolation); branch with errors.Is.
package engine
