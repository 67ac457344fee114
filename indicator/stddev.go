package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// StdDev is the rolling population standard deviation over a fixed
// look-back period (the talib convention: population, not sample).
type StdDev struct {
	engine.Node

	period int
	src    *series.Line
	out    *series.Line
	buf    []float64
}

// NewStdDev constructs a StdDev over src with the given period.
func NewStdDev(ctx *engine.Context, src engine.Stream, period int, opts ...Option) (*StdDev, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	sd := &StdDev{period: period, buf: make([]float64, period)}

	err := engine.Construct(ctx, &sd.Node, engine.Config{
		Kind:     engine.KindIndicator,
		Lines:    []string{"stddev"},
		Inputs:   []engine.Stream{src},
		Delegate: sd,
		Init: func() error {
			var ierr error
			if sd.src, ierr = resolveSource(src, opts); ierr != nil {
				return ierr
			}
			if sd.out, ierr = sd.Lines().Line(0); ierr != nil {
				return ierr
			}

			return sd.RaiseMinPeriod(period)
		},
	})
	if err != nil {
		return nil, err
	}

	return sd, nil
}

// Period returns the look-back length.
func (sd *StdDev) Period() int { return sd.period }

// Value reads the output line at a cursor-relative offset (≤ 0).
func (sd *StdDev) Value(offset int) (float64, error) { return sd.out.Get(offset) }

// Next computes the current bar incrementally.
func (sd *StdDev) Next() error {
	if err := gather(sd.src, sd.period, sd.buf); err != nil {
		return err
	}

	return sd.out.Set(0, stat.PopStdDev(sd.buf, nil))
}

// Once fills [start, end) by absolute index.
func (sd *StdDev) Once(start, end int) error {
	for i := start; i < end; i++ {
		if err := window(sd.src, i, sd.period, sd.buf); err != nil {
			return err
		}
		if err := sd.out.SetAt(i, stat.PopStdDev(sd.buf, nil)); err != nil {
			return err
		}
	}

	return nil
}
