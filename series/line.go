package series

import "math"

// Line is an append-only buffer of float64 values with a movable cursor.
//
// The cursor starts one position before the first slot; Forward allocates
// and advances it, Home resets it for a batch re-scan. Slots are filled
// with NaN until written. A Line has exactly one writer (the node that
// owns it as an output) and arbitrarily many readers.
//
// Invariants:
//   - the cursor only moves forward, or is reset to the start by Home
//   - storage only grows (Forward) or is pre-sized once (Extend)
//   - history is never rewritten through the cursor API
type Line struct {
	data     []float64
	idx      int // cursor; -1 before the first Forward/Advance
	bindings []*Line
}

// NewLine returns an empty Line with the cursor before the first slot.
func NewLine() *Line {
	return &Line{idx: -1}
}

// Get returns the value at the given cursor-relative offset.
// Offset must be ≤ 0: offset 0 is the current bar, -1 the previous one.
// Complexity: O(1).
func (l *Line) Get(offset int) (float64, error) {
	if offset > 0 {
		return 0, ErrOutOfRange
	}
	i := l.idx + offset
	if i < 0 || i >= len(l.data) {
		return 0, ErrOutOfRange
	}

	return l.data[i], nil
}

// Set writes v at the current cursor position. Only offset 0 is writable;
// history is immutable. The write is propagated to every bound target
// line at the target's own cursor (step-mode write-through).
// Complexity: O(1) plus one write per binding.
func (l *Line) Set(offset int, v float64) error {
	if offset != 0 {
		return ErrOutOfRange
	}
	if l.idx < 0 || l.idx >= len(l.data) {
		return ErrOutOfRange
	}
	l.data[l.idx] = v

	for _, b := range l.bindings {
		if err := b.Set(0, v); err != nil {
			return err
		}
	}

	return nil
}

// At returns the value at absolute index i, independent of the cursor.
// Used by batch callbacks that operate over an index range.
func (l *Line) At(i int) (float64, error) {
	if i < 0 || i >= len(l.data) {
		return 0, ErrOutOfRange
	}

	return l.data[i], nil
}

// SetAt writes v at absolute index i, independent of the cursor.
// Used by batch callbacks filling a pre-sized buffer.
func (l *Line) SetAt(i int, v float64) error {
	if i < 0 || i >= len(l.data) {
		return ErrOutOfRange
	}
	l.data[i] = v

	return nil
}

// Forward extends storage by n uninitialized (NaN) slots and advances the
// cursor by n. Step-mode growth: one call per new clock bar.
func (l *Line) Forward(n int) {
	for i := 0; i < n; i++ {
		l.data = append(l.data, math.NaN())
	}
	l.idx += n
}

// Extend pre-allocates n NaN slots without moving the cursor. Batch-mode
// pre-sizing: called once before a vectorized pass.
func (l *Line) Extend(n int) {
	for i := 0; i < n; i++ {
		l.data = append(l.data, math.NaN())
	}
}

// Advance moves the cursor forward by n over already-allocated slots.
func (l *Line) Advance(n int) error {
	if n < 0 || l.idx+n >= len(l.data) {
		return ErrOutOfRange
	}
	l.idx += n

	return nil
}

// Home resets the cursor to before the first slot without truncating
// storage, so the buffer can be re-scanned or batch-filled by index.
func (l *Line) Home() {
	l.idx = -1
}

// Len reports the number of slots written so far (cursor position + 1).
func (l *Line) Len() int {
	return l.idx + 1
}

// BufLen reports the total allocated slots, which exceeds Len after an
// Extend until the cursor catches up.
func (l *Line) BufLen() int {
	return len(l.data)
}

// Bind declares that target mirrors this line: every Set is written
// through in step mode, and SyncBindings copies the buffer wholesale in
// batch mode. Binding cycles are the caller's responsibility.
func (l *Line) Bind(target *Line) error {
	if target == nil {
		return ErrBindRange
	}
	l.bindings = append(l.bindings, target)

	return nil
}

// SyncBindings copies this line's allocated buffer into every bound
// target. Batch-mode resolution: called once after Once/PreOnce filled
// the buffer by absolute index. Targets must be sized at least as large.
func (l *Line) SyncBindings() error {
	for _, b := range l.bindings {
		if len(b.data) < len(l.data) {
			return ErrBindRange
		}
		copy(b.data, l.data)
	}

	return nil
}
