// Package observer provides passive consumer nodes: they register into
// an owner's observer list, never contribute to warm-up requirements,
// and advance only after the node they observe has computed its bar.
//
// In batch mode observers are aligned (pre-sized) but not computed —
// they exist for step-mode inspection: recording lengths, snapshotting
// values, tracing a run.
package observer
