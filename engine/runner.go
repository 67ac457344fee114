package engine

import (
	"fmt"
	"log/slog"
)

// Runner drives a root node over a feed: the minimal embodiment of the
// external strategy driver. It owns no scheduling logic of its own —
// it only pumps bars and delegates to StepOne/RunOnce.
//
// Log, when non-nil, receives one debug record per bar (step mode) or
// per sweep (batch mode). A nil Log keeps the engine silent.
type Runner struct {
	Log *slog.Logger
}

// Run executes a live/step simulation: load is called once per bar and
// reports (false, nil) when the feed is exhausted; every successfully
// loaded bar is followed by one StepOne on the root. Errors from either
// side abort the run.
func (r *Runner) Run(root *Node, load func() (bool, error)) error {
	for bar := 1; ; bar++ {
		ok, err := load()
		if err != nil {
			return fmt.Errorf("engine: load bar %d: %w", bar, err)
		}
		if !ok {
			return nil
		}
		if err := root.StepOne(); err != nil {
			return fmt.Errorf("engine: step bar %d: %w", bar, err)
		}
		if r.Log != nil {
			r.Log.Debug("bar stepped", "bar", bar, "len", root.Len(), "minperiod", root.MinPeriod())
		}
	}
}

// RunBatch executes a full-history precomputation: a single RunOnce over
// an already-loaded feed.
func (r *Runner) RunBatch(root *Node) error {
	if err := root.RunOnce(); err != nil {
		return fmt.Errorf("engine: batch run: %w", err)
	}
	if r.Log != nil {
		r.Log.Debug("batch swept", "buflen", root.BufLen(), "minperiod", root.MinPeriod())
	}

	return nil
}
