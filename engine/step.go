package engine

// StepOne advances the node by one bar: incremental (step-mode)
// evaluation, called once per new clock bar, root-down.
//
// Order is total and deterministic:
//  1. a self-referential clock is advanced explicitly first, so its data
//     exists before this node consults it;
//  2. own storage grows by one bar if the clock grew, keeping outputs
//     aligned 1:1 with the clock bar count;
//  3. children advance in registration order — dependencies always
//     compute before dependents;
//  4. pending notifications are delivered;
//  5. exactly one lifecycle callback fires, chosen by clock length vs
//     minimum period (PreNext < NextStart == Next >);
//  6. observers advance, seeing post-computation state.
//
// Any error propagates to the caller unchanged; there is no partial-node
// recovery.
func (n *Node) StepOne() error {
	if n.clockIsChild {
		if err := n.clockNode.StepOne(); err != nil {
			return err
		}
	}

	clockLen := n.clock.Len()
	if clockLen != n.Len() {
		n.Forward(1)
	}

	for _, child := range n.childList {
		if err := child.StepOne(); err != nil {
			return err
		}
	}

	if n.notifier != nil {
		if err := n.notifier.Notify(); err != nil {
			return err
		}
	}

	if err := n.dispatch(clockLen); err != nil {
		return err
	}

	for _, obs := range n.observers {
		if err := obs.StepOne(); err != nil {
			return err
		}
	}

	return nil
}

// dispatch selects the lifecycle callback for the given clock length.
// Steady-state dispatch re-checks the clock against the minimum period:
// a violation here means the scheduler itself is broken and surfaces as
// ErrMinPeriodViolation rather than a silently early Next.
func (n *Node) dispatch(clockLen int) error {
	if clockLen >= n.minPeriod {
		if n.clock.Len() < n.minPeriod {
			return ErrMinPeriodViolation
		}
		if clockLen == n.minPeriod {
			return n.delegate.NextStart()
		}

		return n.delegate.Next()
	}

	return n.delegate.PreNext()
}
