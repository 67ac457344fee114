package engine

// NodeID is a non-owning index into a Context's node arena. Owner
// back-references are stored as NodeIDs, never as pointers, so the
// node/owner graph has no reference cycles to tear down.
type NodeID int

// InvalidNode is the NodeID of "no node": the owner of a root.
const InvalidNode NodeID = -1

// Context carries the state needed while constructing a graph: the node
// arena and the construction stack. The node currently being initialized
// sits on top of the stack; "find my owner" is a peek. A Context is
// bound to one graph for one run and is not safe for concurrent use —
// the engine is single-threaded by design.
type Context struct {
	arena []*Node
	stack []NodeID
}

// NewContext returns an empty construction context.
func NewContext() *Context {
	return &Context{}
}

// NumNodes reports how many nodes have been constructed in this context.
func (c *Context) NumNodes() int { return len(c.arena) }

// Node resolves an arena index to its node, or nil for InvalidNode and
// out-of-range IDs.
func (c *Context) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(c.arena) {
		return nil
	}

	return c.arena[int(id)]
}

// register appends n to the arena and returns its ID.
func (c *Context) register(n *Node) NodeID {
	c.arena = append(c.arena, n)

	return NodeID(len(c.arena) - 1)
}

// owner peeks the construction stack: the node whose Init is currently
// running, or InvalidNode when constructing a root.
func (c *Context) owner() NodeID {
	if len(c.stack) == 0 {
		return InvalidNode
	}

	return c.stack[len(c.stack)-1]
}

// push/pop bracket a node's Init so sub-nodes resolve it as owner.
func (c *Context) push(id NodeID) { c.stack = append(c.stack, id) }

func (c *Context) pop() { c.stack = c.stack[:len(c.stack)-1] }
