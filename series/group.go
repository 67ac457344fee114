package series

// Group is a fixed-arity, ordered set of named Lines that together
// represent one logical stream. Arity and names are fixed at
// construction; specializations declare supersets of names, never
// subsets. Bulk operations (Forward, Extend, Home, Advance) apply
// uniformly to every member line; Len and BufLen read the first
// (reference) line.
type Group struct {
	names  []string
	lines  []*Line
	byName map[string]int
}

// NewGroup declares a Group with the given ordered line names.
// Returns ErrNoLines for an empty declaration and ErrDupLine for a
// repeated name.
func NewGroup(names ...string) (*Group, error) {
	if len(names) == 0 {
		return nil, ErrNoLines
	}
	g := &Group{
		names:  make([]string, len(names)),
		lines:  make([]*Line, len(names)),
		byName: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, dup := g.byName[name]; dup {
			return nil, ErrDupLine
		}
		g.names[i] = name
		g.byName[name] = i
		g.lines[i] = NewLine()
	}

	return g, nil
}

// NumLines reports the declared arity of the group.
func (g *Group) NumLines() int { return len(g.lines) }

// Names returns the declared line names in order.
func (g *Group) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Line returns the line at positional index i.
func (g *Group) Line(i int) (*Line, error) {
	if i < 0 || i >= len(g.lines) {
		return nil, ErrUnknownLine
	}

	return g.lines[i], nil
}

// LineByName returns the line declared under the given name.
func (g *Group) LineByName(name string) (*Line, error) {
	i, ok := g.byName[name]
	if !ok {
		return nil, ErrUnknownLine
	}

	return g.lines[i], nil
}

// Forward extends every member line by n slots and advances its cursor.
func (g *Group) Forward(n int) {
	for _, l := range g.lines {
		l.Forward(n)
	}
}

// Extend pre-allocates n slots on every member line without moving
// cursors.
func (g *Group) Extend(n int) {
	for _, l := range g.lines {
		l.Extend(n)
	}
}

// Advance moves every member cursor forward by n over allocated slots.
func (g *Group) Advance(n int) error {
	for _, l := range g.lines {
		if err := l.Advance(n); err != nil {
			return err
		}
	}

	return nil
}

// Home resets every member cursor to the start.
func (g *Group) Home() {
	for _, l := range g.lines {
		l.Home()
	}
}

// Len reports the group's aggregate length: the length of its reference
// (first) line. All member lines grow in lockstep.
func (g *Group) Len() int { return g.lines[0].Len() }

// BufLen reports the allocated length of the reference line.
func (g *Group) BufLen() int { return g.lines[0].BufLen() }

// BindTo declares positional bindings from this group's lines into the
// target group: srcIdx[k] writes through to target dstIdx[k]. Index
// lists must pair up and stay inside both declared arities; violations
// fail with ErrBindRange before any binding is installed.
func (g *Group) BindTo(target *Group, srcIdx, dstIdx []int) error {
	if target == nil || len(srcIdx) != len(dstIdx) || len(srcIdx) == 0 {
		return ErrBindRange
	}
	for k := range srcIdx {
		if srcIdx[k] < 0 || srcIdx[k] >= len(g.lines) {
			return ErrBindRange
		}
		if dstIdx[k] < 0 || dstIdx[k] >= len(target.lines) {
			return ErrBindRange
		}
	}
	for k := range srcIdx {
		if err := g.lines[srcIdx[k]].Bind(target.lines[dstIdx[k]]); err != nil {
			return err
		}
	}

	return nil
}

// SyncBindings resolves every declared binding on every member line by
// copying the full buffers (batch-mode resolution).
func (g *Group) SyncBindings() error {
	for _, l := range g.lines {
		if err := l.SyncBindings(); err != nil {
			return err
		}
	}

	return nil
}
