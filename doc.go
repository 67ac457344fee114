// Package lineflow is an in-memory engine for bar-by-bar time-series
// computation — append-only line buffers, declarative computation graphs,
// and two interchangeable evaluation modes.
//
// 🚀 What is lineflow?
//
//	A small, deterministic library that brings together:
//		• Line buffers: append-only float64 series with a moving cursor
//		• Line groups: named, lock-step bundles (open/high/low/close/…)
//		• Graph nodes: indicators, observers and strategies wired by inputs
//		• Warm-up dispatch: PreNext → NextStart → Next, driven by minimum periods
//		• Dual evaluation: per-bar streaming (StepOne) and vectorized batch (RunOnce)
//		• Bindings: alias a computed line into another node's line group
//
// ✨ Why choose lineflow?
//
//   - Deterministic – step and batch modes produce bit-identical buffers
//   - Explicit – construction order is a visible context stack, not reflection
//   - Composable – indicators stack on indicators; feedback clocks are supported
//   - Honest errors – sentinel errors for every contract violation, no panics
//
// Everything is organized under five subpackages:
//
//	series/    — Line and Group: the buffer and cursor primitives
//	engine/    — Node, Context, construction protocol and both schedulers
//	indicator/ — SMA, EMA, StdDev, MinMax, Passthrough
//	observer/  — per-bar recorders that never affect warm-up
//	feed/      — bar streams: CSV adapter, replay, synthetic generator
//
// Quick sketch:
//
//	bars ──► BarSeries ──► SMA(3) ──► value
//	                 └───► observer (records every bar)
//
// A 3-period mean over closes [10, 11, 12, 13, 14] resolves to
// [_, _, 11, 12, 13]: the first two bars are warm-up.
//
//	go get github.com/katalvlaran/lineflow
package lineflow
