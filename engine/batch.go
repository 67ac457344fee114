package engine

// RunOnce computes the node's entire run in one vectorized sweep instead
// of per-bar StepOne calls. For identical inputs, the final buffer
// contents must be identical to step mode bar for bar — that equivalence
// is the engine's primary correctness property.
//
// Order:
//  1. a self-referential clock computes first, so the clock's full
//     eventual length is known;
//  2. own storage is pre-sized to that length;
//  3. remaining children compute, in order;
//  4. observers are pre-sized (aligned, not computed);
//  5. cursors reset on datas, clock-if-child, children, observers, self
//     — batch computation operates over an index range, not a moving
//     cursor;
//  6. PreOnce covers the warm-up range, Once the steady-state range;
//  7. declared output bindings are resolved.
func (n *Node) RunOnce() error {
	// A self-referential clock must compute before this node can know its
	// full eventual length.
	if n.clockIsChild {
		if err := n.clockNode.RunOnce(); err != nil {
			return err
		}
	}

	if delta := n.clock.BufLen() - n.BufLen(); delta > 0 {
		n.Extend(delta)
	}

	for _, child := range n.childList {
		if err := child.RunOnce(); err != nil {
			return err
		}
	}

	for _, obs := range n.observers {
		if delta := n.BufLen() - obs.BufLen(); delta > 0 {
			obs.Forward(delta)
		}
	}

	for _, d := range n.datas {
		d.Home()
	}
	if n.clockIsChild {
		n.clockNode.Home()
	}
	for _, child := range n.childList {
		child.Home()
	}
	for _, obs := range n.observers {
		obs.Home()
	}
	n.Home()

	if err := n.delegate.PreOnce(0, n.minPeriod-1); err != nil {
		return err
	}
	if err := n.delegate.Once(n.minPeriod-1, n.BufLen()); err != nil {
		return err
	}

	if n.lines != nil {
		return n.lines.SyncBindings()
	}

	return nil
}
