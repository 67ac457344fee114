package indicator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// MinMax tracks the rolling minimum and maximum over a fixed look-back
// period. Two output lines: "min" (index 0) and "max" (index 1) —
// exercises multi-line output groups.
type MinMax struct {
	engine.Node

	period int
	src    *series.Line
	outMin *series.Line
	outMax *series.Line
	buf    []float64
}

// NewMinMax constructs a MinMax over src with the given period.
func NewMinMax(ctx *engine.Context, src engine.Stream, period int, opts ...Option) (*MinMax, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	m := &MinMax{period: period, buf: make([]float64, period)}

	err := engine.Construct(ctx, &m.Node, engine.Config{
		Kind:     engine.KindIndicator,
		Lines:    []string{"min", "max"},
		Inputs:   []engine.Stream{src},
		Delegate: m,
		Init: func() error {
			var ierr error
			if m.src, ierr = resolveSource(src, opts); ierr != nil {
				return ierr
			}
			if m.outMin, ierr = m.Lines().Line(0); ierr != nil {
				return ierr
			}
			if m.outMax, ierr = m.Lines().Line(1); ierr != nil {
				return ierr
			}

			return m.RaiseMinPeriod(period)
		},
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Period returns the look-back length.
func (m *MinMax) Period() int { return m.period }

// Min reads the rolling minimum at a cursor-relative offset (≤ 0).
func (m *MinMax) Min(offset int) (float64, error) { return m.outMin.Get(offset) }

// Max reads the rolling maximum at a cursor-relative offset (≤ 0).
func (m *MinMax) Max(offset int) (float64, error) { return m.outMax.Get(offset) }

// Next computes the current bar incrementally.
func (m *MinMax) Next() error {
	if err := gather(m.src, m.period, m.buf); err != nil {
		return err
	}
	if err := m.outMin.Set(0, floats.Min(m.buf)); err != nil {
		return err
	}

	return m.outMax.Set(0, floats.Max(m.buf))
}

// Once fills [start, end) by absolute index.
func (m *MinMax) Once(start, end int) error {
	for i := start; i < end; i++ {
		if err := window(m.src, i, m.period, m.buf); err != nil {
			return err
		}
		if err := m.outMin.SetAt(i, floats.Min(m.buf)); err != nil {
			return err
		}
		if err := m.outMax.SetAt(i, floats.Max(m.buf)); err != nil {
			return err
		}
	}

	return nil
}
