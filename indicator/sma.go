package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// SMA is the simple moving average over a fixed look-back period.
// One output line ("sma"); minimum period equals the look-back.
type SMA struct {
	engine.Node

	period int
	src    *series.Line
	out    *series.Line
	buf    []float64 // window scratch, reused every bar
}

// NewSMA constructs an SMA over src with the given period, registered
// against the node currently under construction in ctx (if any).
func NewSMA(ctx *engine.Context, src engine.Stream, period int, opts ...Option) (*SMA, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	s := &SMA{period: period, buf: make([]float64, period)}

	err := engine.Construct(ctx, &s.Node, engine.Config{
		Kind:     engine.KindIndicator,
		Lines:    []string{"sma"},
		Inputs:   []engine.Stream{src},
		Delegate: s,
		Init: func() error {
			var ierr error
			if s.src, ierr = resolveSource(src, opts); ierr != nil {
				return ierr
			}
			if s.out, ierr = s.Lines().Line(0); ierr != nil {
				return ierr
			}

			return s.RaiseMinPeriod(period)
		},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Period returns the look-back length.
func (s *SMA) Period() int { return s.period }

// Value reads the output line at a cursor-relative offset (≤ 0).
func (s *SMA) Value(offset int) (float64, error) { return s.out.Get(offset) }

// Next computes the current bar incrementally.
func (s *SMA) Next() error {
	if err := gather(s.src, s.period, s.buf); err != nil {
		return err
	}

	return s.out.Set(0, stat.Mean(s.buf, nil))
}

// Once fills [start, end) by absolute index in one vectorized pass.
func (s *SMA) Once(start, end int) error {
	for i := start; i < end; i++ {
		if err := window(s.src, i, s.period, s.buf); err != nil {
			return err
		}
		if err := s.out.SetAt(i, stat.Mean(s.buf, nil)); err != nil {
			return err
		}
	}

	return nil
}
