package feed

import (
	"time"

	"github.com/katalvlaran/lineflow/series"
)

// Positional line indices of a BarSeries, fixed by declaration order.
const (
	LineDateTime = iota
	LineOpen
	LineHigh
	LineLow
	LineClose
	LineVolume
	LineOpenInterest
)

// barLineNames is the declared shape of every bar stream.
var barLineNames = []string{
	"datetime", "open", "high", "low", "close", "volume", "openinterest",
}

// Bar is one fully-formed OHLCV record at the adapter surface.
// Timestamps are stored in the datetime line as float64 Unix seconds;
// time.Time appears only here, at the boundary.
type Bar struct {
	Time         time.Time
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       float64
	OpenInterest float64
}

// valid reports whether the bar satisfies
// low ≤ min(open, close) ≤ max(open, close) ≤ high.
func (b Bar) valid() bool {
	lo, hi := b.Open, b.Open
	if b.Close < lo {
		lo = b.Close
	}
	if b.Close > hi {
		hi = b.Close
	}

	return b.Low <= lo && hi <= b.High
}

// BarSeries is the LineSeries-shaped stream a data feed exposes to the
// engine: named lines for {datetime, open, high, low, close, volume,
// openinterest}, append-only growth, and a minimum period of one bar.
// It satisfies engine.Stream.
type BarSeries struct {
	group *series.Group
}

// NewBarSeries returns an empty bar stream with the canonical line set.
func NewBarSeries() *BarSeries {
	g, err := series.NewGroup(barLineNames...)
	if err != nil {
		// The canonical name set is a package constant; it cannot fail.
		panic(err)
	}

	return &BarSeries{group: g}
}

// Lines exposes the underlying line group.
func (b *BarSeries) Lines() *series.Group { return b.group }

// Len reports bars written so far.
func (b *BarSeries) Len() int { return b.group.Len() }

// BufLen reports the allocated bar capacity.
func (b *BarSeries) BufLen() int { return b.group.BufLen() }

// Forward grows every line by n bars.
func (b *BarSeries) Forward(n int) { b.group.Forward(n) }

// Home resets every line cursor for a batch re-scan.
func (b *BarSeries) Home() { b.group.Home() }

// MinPeriod of a plain data feed is one bar.
func (b *BarSeries) MinPeriod() int { return 1 }

// Append writes one fully-formed bar: every declared line receives
// exactly one new value before the stream's length advances. An invalid
// bar is rejected whole with ErrBadRecord, leaving the stream untouched.
func (b *BarSeries) Append(bar Bar) error {
	if !bar.valid() {
		return ErrBadRecord
	}

	b.group.Forward(1)
	values := [...]float64{
		float64(bar.Time.Unix()),
		bar.Open, bar.High, bar.Low, bar.Close,
		bar.Volume, bar.OpenInterest,
	}
	for i, v := range values {
		ln, err := b.group.Line(i)
		if err != nil {
			return err
		}
		if err = ln.Set(0, v); err != nil {
			return err
		}
	}

	return nil
}

// Replay returns a load function over a pre-built bar slice, in the
// shape engine.Runner.Run expects: one bar per call, (false, nil) when
// exhausted.
func Replay(bs *BarSeries, bars []Bar) func() (bool, error) {
	i := 0

	return func() (bool, error) {
		if i >= len(bars) {
			return false, nil
		}
		if err := bs.Append(bars[i]); err != nil {
			return false, err
		}
		i++

		return true, nil
	}
}
