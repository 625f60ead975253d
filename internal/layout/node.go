package layout

import (
	"fmt"
	"slices"
	"sort"
)

// Node is a single participant in the layout tree. It owns its children;
// the parent pointer is a back-reference only. Style is mutated directly
// by callers, which must then mark the node dirty through the owning tree.
type Node struct {
	id       string
	parent   *Node
	children []*Node

	// Style is the layout input for this node.
	Style Style

	// Content sizing. At most one of the two is set.
	intrinsic *Size
	measure   func() Size

	// Computed geometry from the last successful calculation.
	// nil until computed, and nil for display:none nodes.
	computed *Layout
}

// NewNode creates a detached node with the given id and style.
func NewNode(id string, style Style) *Node {
	return &Node{id: id, Style: style}
}

// ID returns the node's stable identity.
func (n *Node) ID() string {
	return n.id
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// SetIntrinsicSize gives the node a static content size. It is an error
// if a measure func is already set. Negative dimensions are clamped to 0.
func (n *Node) SetIntrinsicSize(s Size) error {
	if n.measure != nil {
		return ErrBothSizingSources
	}
	s.Width = max(s.Width, 0)
	s.Height = max(s.Height, 0)
	n.intrinsic = &s
	return nil
}

// SetMeasureFunc gives the node a dynamic content-measurement callback,
// invoked once per measure pass. It is an error if an intrinsic size is
// already set. Pass nil to clear.
func (n *Node) SetMeasureFunc(fn func() Size) error {
	if fn != nil && n.intrinsic != nil {
		return ErrBothSizingSources
	}
	n.measure = fn
	return nil
}

// ClearIntrinsicSize removes a previously set static content size.
func (n *Node) ClearIntrinsicSize() {
	n.intrinsic = nil
}

// Computed returns the geometry from the last calculation, or nil if the
// node has never been laid out or is display:none.
func (n *Node) Computed() *Layout {
	return n.computed
}

// AddChild inserts child at the given index (appends when at is omitted
// or out of range). A child attached elsewhere is detached from its prior
// parent first, so reparenting never leaves a node under two parents.
// Returns ErrCycle if child is the node itself or one of its ancestors.
func (n *Node) AddChild(child *Node, at ...int) error {
	if child == nil {
		return ErrNilNode
	}
	if child == n || child.isAncestorOf(n) {
		return fmt.Errorf("%w: %q under %q", ErrCycle, child.id, n.id)
	}
	child.Detach()
	idx := len(n.children)
	if len(at) > 0 && at[0] >= 0 && at[0] < len(n.children) {
		idx = at[0]
	}
	n.children = slices.Insert(n.children, idx, child)
	child.parent = n
	return nil
}

// RemoveChild detaches child from this node. Returns true if the child
// was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = slices.Delete(n.children, i, i+1)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Walk visits the node and every descendant in document order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// PaintOrderedChildren returns the children sorted for painting:
// ascending ZIndex, document order for ties.
func (n *Node) PaintOrderedChildren() []*Node {
	out := slices.Clone(n.children)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Style.ZIndex < out[j].Style.ZIndex
	})
	return out
}

// isAncestorOf returns true if n is an ancestor of other.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// inFlow returns true if the node takes part in its parent's flex layout.
func (n *Node) inFlow() bool {
	return n.Style.Display != DisplayNone && n.Style.Position != PositionAbsolute
}
