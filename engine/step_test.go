package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/feed"
)

// TestStepOne_WarmupDispatch verifies warm-up dispatch: for
// clock length L and minimum period M, PreNext fires for all L < M,
// NextStart exactly once at L == M, Next for all L > M.
func TestStepOne_WarmupDispatch(t *testing.T) {
	ctx := engine.NewContext()
	bars, bs := fiveBars()

	p := newProbe(t, ctx, "p", nil, engine.KindIndicator, bs)
	require.NoError(t, p.RaiseMinPeriod(3))

	for _, bar := range bars {
		require.NoError(t, bs.Append(bar))
		require.NoError(t, p.StepOne())
	}

	assert.Equal(t, 2, p.pre, "PreNext for every bar with L < M")
	assert.Equal(t, 1, p.start, "NextStart exactly once at L == M")
	assert.Equal(t, 2, p.next, "Next for every bar with L > M")
	assert.Equal(t, 5, p.Len(), "own storage stays 1:1 with the clock")
}

// TestStepOne_Ordering verifies per-step ordering: children in
// registration order, then notifications, then the node's own dispatch,
// then observers — no interleaving.
func TestStepOne_Ordering(t *testing.T) {
	ctx := engine.NewContext()
	bars, bs := fiveBars()

	var seq []string
	var c1, c2, obs *probe
	root := &notifyingProbe{probe{name: "root", log: &seq}}
	require.NoError(t, engine.Construct(ctx, &root.Node, engine.Config{
		Kind:     engine.KindStream,
		Lines:    []string{"v"},
		Inputs:   []engine.Stream{bs},
		Delegate: root,
		Init: func() error {
			c1 = newProbe(t, ctx, "c1", &seq, engine.KindIndicator, bs)
			c2 = newProbe(t, ctx, "c2", &seq, engine.KindIndicator, bs)
			obs = newProbe(t, ctx, "obs", &seq, engine.KindObserver, bs)

			return nil
		},
	}))

	require.NoError(t, bs.Append(bars[0]))
	require.NoError(t, root.StepOne())

	assert.Equal(t,
		[]string{"c1.nextstart", "c2.nextstart", "root.notify", "root.nextstart", "obs.nextstart"},
		seq, "children, notifications, own dispatch, observers — in that order")
	assert.Equal(t, 1, root.notifies)
	_ = c1
	_ = c2
	_ = obs
}

// TestStepOne_ClockAsChild verifies the feedback case: a node whose
// clock is also a registered child advances the clock exactly once per
// step, explicitly, and never again through the ordinary child list.
func TestStepOne_ClockAsChild(t *testing.T) {
	ctx := engine.NewContext()
	bars, bs := fiveBars()

	inner := newProbe(t, ctx, "inner", nil, engine.KindIndicator, bs)
	outer := newProbe(t, ctx, "outer", nil, engine.KindIndicator, inner)

	// Declare the clock as a computational dependent of outer.
	outer.AddChild(&inner.Node)

	for _, bar := range bars {
		require.NoError(t, bs.Append(bar))
		require.NoError(t, outer.StepOne())
	}

	assert.Equal(t, 5, inner.start+inner.next+inner.pre,
		"clock-child dispatches exactly once per step")
	assert.Equal(t, 5, inner.Len(), "clock-child advanced once per bar")
	assert.Equal(t, 5, outer.Len(), "outer follows the clock-child's growth")
}

// TestStepOne_MinPeriodInvariant forces the internal invariant to fail:
// a child that rewinds the shared clock mid-step must surface
// ErrMinPeriodViolation instead of silently dispatching steady state.
func TestStepOne_MinPeriodInvariant(t *testing.T) {
	ctx := engine.NewContext()
	bars, bs := fiveBars()

	var saboteur *rewinder
	root := &probe{name: "root"}
	require.NoError(t, engine.Construct(ctx, &root.Node, engine.Config{
		Kind:     engine.KindStream,
		Lines:    []string{"v"},
		Inputs:   []engine.Stream{bs},
		Delegate: root,
		Init: func() error {
			saboteur = &rewinder{target: bs}

			return engine.Construct(ctx, &saboteur.Node, engine.Config{
				Kind:     engine.KindIndicator,
				Lines:    []string{"v"},
				Inputs:   []engine.Stream{bs},
				Delegate: saboteur,
			})
		},
	}))

	require.NoError(t, bs.Append(bars[0]))
	err := root.StepOne()
	assert.ErrorIs(t, err, engine.ErrMinPeriodViolation,
		"steady-state dispatch after a clock rewind is an invariant failure")
}

// rewinder is a deliberately broken child: it homes the shared clock
// during its own computation.
type rewinder struct {
	engine.Node

	target *feed.BarSeries
}

func (r *rewinder) Next() error {
	r.target.Home()

	return nil
}

func (r *rewinder) NextStart() error { return r.Next() }
