package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/feed"
)

// probe is a minimal node that counts and logs every lifecycle callback,
// used to assert dispatch and ordering guarantees.
type probe struct {
	engine.Node

	name string
	log  *[]string

	pre, start, next int
	preonce, once    int
	notifies         int

	preRange, onceRange [2]int
}

func newProbe(t *testing.T, ctx *engine.Context, name string, log *[]string, kind engine.Kind, inputs ...engine.Stream) *probe {
	t.Helper()
	p := &probe{name: name, log: log}
	require.NoError(t, engine.Construct(ctx, &p.Node, engine.Config{
		Kind:     kind,
		Lines:    []string{"v"},
		Inputs:   inputs,
		Delegate: p,
	}))

	return p
}

// newPeriodProbe builds a probe whose warm-up is raised during Init,
// the way real indicators declare their look-back: the owner copies the
// child's minimum period at registration, which happens after Init.
func newPeriodProbe(t *testing.T, ctx *engine.Context, name string, kind engine.Kind, period int, inputs ...engine.Stream) *probe {
	t.Helper()
	p := &probe{name: name}
	require.NoError(t, engine.Construct(ctx, &p.Node, engine.Config{
		Kind:     kind,
		Lines:    []string{"v"},
		Inputs:   inputs,
		Delegate: p,
		Init:     func() error { return p.RaiseMinPeriod(period) },
	}))

	return p
}

func (p *probe) record(ev string) {
	if p.log != nil {
		*p.log = append(*p.log, p.name+"."+ev)
	}
}

func (p *probe) PreNext() error {
	p.pre++
	p.record("prenext")

	return nil
}

func (p *probe) NextStart() error {
	p.start++
	p.record("nextstart")

	return nil
}

func (p *probe) Next() error {
	p.next++
	p.record("next")

	return nil
}

func (p *probe) PreOnce(start, end int) error {
	p.preonce++
	p.preRange = [2]int{start, end}
	p.record("preonce")

	return nil
}

func (p *probe) Once(start, end int) error {
	p.once++
	p.onceRange = [2]int{start, end}
	p.record("once")

	return nil
}

// notifyingProbe extends probe with the optional Notifier hook.
type notifyingProbe struct {
	probe
}

func (p *notifyingProbe) Notify() error {
	p.notifies++
	p.record("notify")

	return nil
}

// fiveBars returns a tiny deterministic feed: closing prices 10..14.
func fiveBars() ([]feed.Bar, *feed.BarSeries) {
	bars := feed.SyntheticBars(5, 1)
	for i := range bars {
		c := float64(10 + i)
		bars[i].Open, bars[i].High, bars[i].Low, bars[i].Close = c, c, c, c
	}

	return bars, feed.NewBarSeries()
}

// loadAll appends every bar up front (batch-mode preparation).
func loadAll(t *testing.T, bs *feed.BarSeries, bars []feed.Bar) {
	t.Helper()
	for _, b := range bars {
		require.NoError(t, bs.Append(b))
	}
}
