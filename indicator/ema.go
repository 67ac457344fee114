package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// EMA is the exponential moving average with smoothing
// α = 2/(period+1), seeded at the warm-up boundary with the simple mean
// of the first window (the talib convention). The recursion reads the
// indicator's own previous output, which is why NextStart is overridden
// rather than left to delegate into Next.
type EMA struct {
	engine.Node

	period int
	alpha  float64
	src    *series.Line
	out    *series.Line
	buf    []float64
}

// NewEMA constructs an EMA over src with the given period.
func NewEMA(ctx *engine.Context, src engine.Stream, period int, opts ...Option) (*EMA, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	e := &EMA{
		period: period,
		alpha:  2.0 / float64(period+1),
		buf:    make([]float64, period),
	}

	err := engine.Construct(ctx, &e.Node, engine.Config{
		Kind:     engine.KindIndicator,
		Lines:    []string{"ema"},
		Inputs:   []engine.Stream{src},
		Delegate: e,
		Init: func() error {
			var ierr error
			if e.src, ierr = resolveSource(src, opts); ierr != nil {
				return ierr
			}
			if e.out, ierr = e.Lines().Line(0); ierr != nil {
				return ierr
			}

			return e.RaiseMinPeriod(period)
		},
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Period returns the look-back length.
func (e *EMA) Period() int { return e.period }

// Value reads the output line at a cursor-relative offset (≤ 0).
func (e *EMA) Value(offset int) (float64, error) { return e.out.Get(offset) }

// NextStart seeds the recursion with the mean of the first full window.
func (e *EMA) NextStart() error {
	if err := gather(e.src, e.period, e.buf); err != nil {
		return err
	}

	return e.out.Set(0, stat.Mean(e.buf, nil))
}

// Next advances the recursion by one bar.
func (e *EMA) Next() error {
	prev, err := e.out.Get(-1)
	if err != nil {
		return err
	}
	cur, err := e.src.Get(0)
	if err != nil {
		return err
	}

	return e.out.Set(0, prev+e.alpha*(cur-prev))
}

// Once replays the seed + recursion over [start, end) by absolute index.
func (e *EMA) Once(start, end int) error {
	if start >= end {
		return nil
	}

	if err := window(e.src, start, e.period, e.buf); err != nil {
		return err
	}
	prev := stat.Mean(e.buf, nil)
	if err := e.out.SetAt(start, prev); err != nil {
		return err
	}

	for i := start + 1; i < end; i++ {
		cur, err := e.src.At(i)
		if err != nil {
			return err
		}
		prev += e.alpha * (cur - prev)
		if err = e.out.SetAt(i, prev); err != nil {
			return err
		}
	}

	return nil
}
