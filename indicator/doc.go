// Package indicator provides concrete derived-stream nodes for the
// lineflow engine: rolling mean (SMA), exponential mean (EMA), rolling
// standard deviation (StdDev), rolling extrema (MinMax) and a
// Passthrough used to bind values into an owner's lines.
//
// Every indicator implements both evaluation strategies — an
// incremental Next over line cursors and a vectorized Once over
// absolute index ranges — and the two must produce identical buffers;
// the package tests assert this and cross-check values against go-talib.
//
// Source selection: by default an indicator reads the input stream's
// "close" line when one is declared, else line 0. Override with
// WithSourceLine / WithSourceName.
//
// ⚙️ Usage:
//
//	ctx := engine.NewContext()
//	sma, err := indicator.NewSMA(ctx, bars, 20)
//	// drive via engine.Runner, then:
//	v, err := sma.Value(0) // current rolling mean
package indicator
