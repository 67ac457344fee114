// Package feed provides bar streams for the lineflow engine: the
// BarSeries stream shape (datetime/open/high/low/close/volume/
// openinterest lines), a VChart CSV adapter, and a deterministic
// synthetic OHLC generator for tests and benchmarks.
//
// A feed is the usual clock of a graph: each successful load writes
// exactly one new value into every declared line before the stream's
// length is considered advanced. Malformed records are rejected whole —
// a bar is never partially written.
//
// ⚙️ Usage:
//
//	f := feed.NewVChartCSV(r)
//	root, _ := myStrategy(ctx, f.Bars())
//	runner := engine.Runner{}
//	err := runner.Run(&root.Node, f.Load)
//
// Synthetic data:
//
//	bars := feed.SyntheticBars(250, 42) // 250 deterministic GBM days
//	bs := feed.NewBarSeries()
//	load := feed.Replay(bs, bars)
package feed
