package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/feed"
	"github.com/katalvlaran/lineflow/series"
)

// TestConstruct_Validation covers the constructor's own error paths.
func TestConstruct_Validation(t *testing.T) {
	ctx := engine.NewContext()
	bs := feed.NewBarSeries()

	p := &probe{}
	err := engine.Construct(nil, &p.Node, engine.Config{Delegate: p, Inputs: []engine.Stream{bs}})
	assert.ErrorIs(t, err, engine.ErrNilContext, "nil context must fail")

	err = engine.Construct(ctx, &p.Node, engine.Config{Inputs: []engine.Stream{bs}})
	assert.ErrorIs(t, err, engine.ErrNilDelegate, "missing delegate must fail")

	require.NoError(t, engine.Construct(ctx, &p.Node, engine.Config{Delegate: p, Inputs: []engine.Stream{bs}}))
	err = engine.Construct(ctx, &p.Node, engine.Config{Delegate: p, Inputs: []engine.Stream{bs}})
	assert.ErrorIs(t, err, engine.ErrConstructed, "double construction must fail")
}

// TestConstruct_NoClock verifies that a node with neither stream inputs
// nor an enclosing owner cannot be built.
func TestConstruct_NoClock(t *testing.T) {
	ctx := engine.NewContext()

	p := &probe{}
	err := engine.Construct(ctx, &p.Node, engine.Config{Delegate: p})
	assert.ErrorIs(t, err, engine.ErrNoClock, "no data and no owner means no clock")
}

// TestConstruct_OwnerDiscovery verifies that sub-nodes built inside Init
// resolve the enclosing node as owner, inherit it as clock fallback, and
// register into the right list by kind.
func TestConstruct_OwnerDiscovery(t *testing.T) {
	ctx := engine.NewContext()
	bs := feed.NewBarSeries()

	var child, obs *probe
	root := &probe{name: "root"}
	require.NoError(t, engine.Construct(ctx, &root.Node, engine.Config{
		Kind:     engine.KindStream,
		Lines:    []string{"v"},
		Inputs:   []engine.Stream{bs},
		Delegate: root,
		Init: func() error {
			// No explicit inputs: must fall back to the owner's stream.
			child = newProbe(t, ctx, "child", nil, engine.KindIndicator)
			obs = newProbe(t, ctx, "obs", nil, engine.KindObserver)

			return nil
		},
	}))

	require.NotNil(t, child.Owner())
	assert.Same(t, &root.Node, child.Owner(), "child resolved root as owner")
	assert.Equal(t, root.ID(), child.Owner().ID(), "owner is recorded as arena index")
	assert.Equal(t, engine.Stream(&root.Node), child.Clock(), "empty inputs borrow the owner as clock")
	assert.Nil(t, root.Owner(), "a root has no owner")

	assert.Equal(t, engine.KindIndicator, child.Kind())
	assert.Equal(t, engine.KindObserver, obs.Kind())
	assert.Equal(t, 3, ctx.NumNodes(), "arena holds every constructed node")
}

// TestConstruct_MinPeriodFromInputs verifies the pre-init seeding rule:
// a node's minimum period starts at the maximum over its datas.
func TestConstruct_MinPeriodFromInputs(t *testing.T) {
	ctx := engine.NewContext()
	bs := feed.NewBarSeries()

	slow := newProbe(t, ctx, "slow", nil, engine.KindIndicator, bs)
	require.NoError(t, slow.RaiseMinPeriod(5))
	assert.Equal(t, 5, slow.MinPeriod())

	fast := newProbe(t, ctx, "fast", nil, engine.KindIndicator, bs)
	require.NoError(t, fast.RaiseMinPeriod(2))

	combo := newProbe(t, ctx, "combo", nil, engine.KindIndicator, slow, fast)
	assert.Equal(t, 5, combo.MinPeriod(), "minperiod seeds from the slowest data")

	assert.ErrorIs(t, combo.RaiseMinPeriod(0), engine.ErrBadPeriod)
	require.NoError(t, combo.RaiseMinPeriod(3))
	assert.Equal(t, 7, combo.MinPeriod(), "extra samples add extra-1 warm-up bars")
}

// TestAddChild_MinPeriodMonotonic verifies warm-up monotonicity:
// an owner's minimum period always covers its children and datas.
func TestAddChild_MinPeriodMonotonic(t *testing.T) {
	ctx := engine.NewContext()
	bs := feed.NewBarSeries()

	var c1, c2 *probe
	root := &probe{name: "root"}
	require.NoError(t, engine.Construct(ctx, &root.Node, engine.Config{
		Kind:     engine.KindStream,
		Inputs:   []engine.Stream{bs},
		Delegate: root,
		Init: func() error {
			// Warm-ups are declared during Init so registration sees them.
			c1 = newPeriodProbe(t, ctx, "c1", engine.KindIndicator, 4, bs)
			c2 = newPeriodProbe(t, ctx, "c2", engine.KindIndicator, 9, bs)

			return nil
		},
	}))

	assert.Equal(t, 4, c1.MinPeriod())
	assert.Equal(t, 9, c2.MinPeriod())
	assert.GreaterOrEqual(t, root.MinPeriod(), c1.MinPeriod())
	assert.GreaterOrEqual(t, root.MinPeriod(), c2.MinPeriod())
	assert.Equal(t, 9, root.MinPeriod(), "owner covers its slowest child")

	// Observers never contribute, however slow.
	obs := newPeriodProbe(t, ctx, "obs", engine.KindObserver, 50, bs)
	root.AddObserver(&obs.Node)
	assert.Equal(t, 50, obs.MinPeriod())
	assert.Equal(t, 9, root.MinPeriod(), "observers do not raise the owner's minperiod")
}

// TestAddChild_DedupKeepsFirst verifies that re-registering a child is a
// no-op preserving first-registration order: the child still computes
// exactly once per bar.
func TestAddChild_DedupKeepsFirst(t *testing.T) {
	ctx := engine.NewContext()
	bars, bs := fiveBars()

	var c1, c2 *probe
	var seq []string
	root := &probe{name: "root", log: &seq}
	require.NoError(t, engine.Construct(ctx, &root.Node, engine.Config{
		Kind:     engine.KindStream,
		Lines:    []string{"v"},
		Inputs:   []engine.Stream{bs},
		Delegate: root,
		Init: func() error {
			c1 = newProbe(t, ctx, "c1", &seq, engine.KindIndicator, bs)
			c2 = newProbe(t, ctx, "c2", &seq, engine.KindIndicator, bs)

			return nil
		},
	}))

	// Duplicate registrations must be no-ops.
	root.AddChild(&c1.Node)
	root.AddChild(&c1.Node)

	require.NoError(t, bs.Append(bars[0]))
	require.NoError(t, root.StepOne())

	assert.Equal(t, 1, c1.start+c1.next, "duplicate never computes twice per bar")
	assert.Equal(t, 1, c2.start+c2.next, "siblings are unaffected by the duplicate")
	assert.Equal(t, []string{"c1.nextstart", "c2.nextstart", "root.nextstart"}, seq,
		"first-registration order is preserved")
}

// TestBindOutputs_RangeChecks verifies BindingRange failures at bind time.
func TestBindOutputs_RangeChecks(t *testing.T) {
	ctx := engine.NewContext()
	bs := feed.NewBarSeries()

	orphan := newProbe(t, ctx, "orphan", nil, engine.KindIndicator, bs)
	assert.ErrorIs(t, orphan.BindOutputs(nil, nil), engine.ErrBindRange, "no owner to bind into")

	var inner *probe
	root := &probe{name: "root"}
	require.NoError(t, engine.Construct(ctx, &root.Node, engine.Config{
		Kind:     engine.KindStream,
		Lines:    []string{"x", "y"},
		Inputs:   []engine.Stream{bs},
		Delegate: root,
		Init: func() error {
			inner = newProbe(t, ctx, "inner", nil, engine.KindIndicator, bs)

			return nil
		},
	}))

	err := inner.BindOutputs([]int{5}, nil)
	assert.ErrorIs(t, err, engine.ErrBindRange, "owner index outside arity fails at bind time")
	assert.ErrorIs(t, err, series.ErrBindRange, "one sentinel serves both layers")

	err = inner.BindOutputs([]int{0}, []int{3})
	assert.ErrorIs(t, err, engine.ErrBindRange, "own index outside arity fails at bind time")

	require.NoError(t, inner.BindOutputs([]int{1}, nil), "defaults pair own line 0")
}
