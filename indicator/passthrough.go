package indicator

import (
	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// Passthrough copies its source line into one output line ("value").
// On its own it is an identity node; combined with Node.BindOutputs it
// is the canonical way to alias a computed line into an owner's line
// group, which is how composite nodes publish an inner node's result
// under their own name.
type Passthrough struct {
	engine.Node

	src *series.Line
	out *series.Line
}

// NewPassthrough constructs an identity node over src.
func NewPassthrough(ctx *engine.Context, src engine.Stream, opts ...Option) (*Passthrough, error) {
	p := &Passthrough{}

	err := engine.Construct(ctx, &p.Node, engine.Config{
		Kind:     engine.KindIndicator,
		Lines:    []string{"value"},
		Inputs:   []engine.Stream{src},
		Delegate: p,
		Init: func() error {
			var ierr error
			if p.src, ierr = resolveSource(src, opts); ierr != nil {
				return ierr
			}
			p.out, ierr = p.Lines().Line(0)

			return ierr
		},
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Value reads the output line at a cursor-relative offset (≤ 0).
func (p *Passthrough) Value(offset int) (float64, error) { return p.out.Get(offset) }

// Next copies the current source value.
func (p *Passthrough) Next() error {
	v, err := p.src.Get(0)
	if err != nil {
		return err
	}

	return p.out.Set(0, v)
}

// Once copies [start, end) by absolute index.
func (p *Passthrough) Once(start, end int) error {
	for i := start; i < end; i++ {
		v, err := p.src.At(i)
		if err != nil {
			return err
		}
		if err = p.out.SetAt(i, v); err != nil {
			return err
		}
	}

	return nil
}
