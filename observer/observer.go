package observer

import (
	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// LengthObserver records the observed stream's length on every bar into
// its "length" line. Mostly a scheduling probe: its buffer doubles as a
// record of when it ran relative to the observed node.
type LengthObserver struct {
	engine.Node

	out *series.Line
}

// NewLengthObserver constructs a LengthObserver over src.
func NewLengthObserver(ctx *engine.Context, src engine.Stream) (*LengthObserver, error) {
	o := &LengthObserver{}

	err := engine.Construct(ctx, &o.Node, engine.Config{
		Kind:     engine.KindObserver,
		Lines:    []string{"length"},
		Inputs:   []engine.Stream{src},
		Delegate: o,
		Init: func() error {
			var ierr error
			o.out, ierr = o.Lines().Line(0)

			return ierr
		},
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

// Value reads the recorded length at a cursor-relative offset (≤ 0).
func (o *LengthObserver) Value(offset int) (float64, error) { return o.out.Get(offset) }

// PreNext records during warm-up too: observers see every bar.
func (o *LengthObserver) PreNext() error { return o.Next() }

// Next records the observed stream's current length.
func (o *LengthObserver) Next() error {
	return o.out.Set(0, float64(o.Clock().Len()))
}

// ValueRecorder snapshots one line of the observed stream after each
// bar's computation into its own "value" line, preserving what the
// observed node produced bar by bar (including warm-up NaNs).
type ValueRecorder struct {
	engine.Node

	src *series.Line
	out *series.Line
}

// NewValueRecorder constructs a recorder over line idx of src.
func NewValueRecorder(ctx *engine.Context, src engine.Stream, idx int) (*ValueRecorder, error) {
	r := &ValueRecorder{}

	err := engine.Construct(ctx, &r.Node, engine.Config{
		Kind:     engine.KindObserver,
		Lines:    []string{"value"},
		Inputs:   []engine.Stream{src},
		Delegate: r,
		Init: func() error {
			g := src.Lines()
			if g == nil {
				return series.ErrUnknownLine
			}
			var ierr error
			if r.src, ierr = g.Line(idx); ierr != nil {
				return ierr
			}
			r.out, ierr = r.Lines().Line(0)

			return ierr
		},
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Value reads the snapshot at a cursor-relative offset (≤ 0).
func (r *ValueRecorder) Value(offset int) (float64, error) { return r.out.Get(offset) }

// PreNext snapshots during warm-up too.
func (r *ValueRecorder) PreNext() error { return r.Next() }

// Next snapshots the observed line's current value. The observed value
// may legitimately be NaN during the observed node's warm-up, so the
// read is by position, not validity.
func (r *ValueRecorder) Next() error {
	v, err := r.src.Get(0)
	if err != nil {
		return err
	}

	return r.out.Set(0, v)
}
