// Package series provides the storage primitives of lineflow: the
// append-only Line buffer and the fixed-arity, named Group of lines that
// together represent one logical time-series stream (an OHLCV bar feed,
// or the N output lines of an indicator).
//
// 🚀 What is a Line?
//
//	A Line is an ordered, append-only sequence of float64 values plus a
//	movable cursor. Indexing is cursor-relative: offset 0 addresses the
//	current bar, negative offsets read history. The cursor only moves
//	forward (or is reset to the start for a batch re-scan); history is
//	never rewritten.
//
// ✨ Key features:
//   - cursor-relative reads/writes with explicit out-of-range errors
//   - step-mode growth via Forward, batch-mode pre-sizing via Extend
//   - Home resets the cursor for a vectorized re-scan without truncating
//   - absolute-index access (At/SetAt) for batch callbacks
//   - line-to-line bindings: a bound target mirrors its source, either
//     write-through per Set (step mode) or in one SyncBindings copy
//     (batch mode)
//
// ⚙️ Usage:
//
//	g, err := series.NewGroup("close")
//	// ...
//	g.Forward(1)
//	ln, _ := g.Line(0)
//	_ = ln.Set(0, 42.0) // write the current bar
//	v, _ := ln.Get(-1)  // read one bar back
//
// All errors are package-level sentinels; branch with errors.Is.
package series
