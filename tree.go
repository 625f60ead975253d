package flexbox

import (
	"errors"
	"fmt"

	"github.com/cbarraud/go-flexbox/internal/debug"
	"github.com/cbarraud/go-flexbox/internal/layout"
)

var (
	// ErrDuplicateID is returned when creating a node with an id that is
	// already registered in the tree.
	ErrDuplicateID = errors.New("flexbox: duplicate node id")

	// ErrNotRegistered is returned when an operation references a node
	// the tree does not own.
	ErrNotRegistered = errors.New("flexbox: node not registered in tree")

	// ErrNoRoot is returned when computing a tree that has no root.
	ErrNoRoot = errors.New("flexbox: tree has no root")

	// ErrHasParent is returned when setting an attached node as root.
	ErrHasParent = errors.New("flexbox: node is still attached to a parent")

	// ErrCycle is returned when an insertion would create a cycle.
	ErrCycle = layout.ErrCycle
)

// DirtyReason describes why a node was marked dirty. Reasons combine as
// a bitmask when a node is marked more than once before a flush.
type DirtyReason uint8

const (
	// DirtyStyle means a style property changed.
	DirtyStyle DirtyReason = 1 << iota
	// DirtySize means the node's size input changed (viewport, intrinsic
	// content, measure invalidation).
	DirtySize
	// DirtyChildren means children were added, removed, or reordered.
	DirtyChildren
)

func (r DirtyReason) String() string {
	switch {
	case r&DirtyStyle != 0 && r&(DirtySize|DirtyChildren) == 0:
		return "style"
	case r&DirtySize != 0 && r&(DirtyStyle|DirtyChildren) == 0:
		return "size"
	case r&DirtyChildren != 0 && r&(DirtyStyle|DirtySize) == 0:
		return "children"
	case r == 0:
		return "none"
	default:
		return "mixed"
	}
}

// Tree owns a node tree and batches layout recomputation: any number of
// mutations between flushes trigger exactly one calculation per dirty
// root. The tree is not safe for concurrent use; callers serialize
// access, consistent with a single UI thread.
type Tree struct {
	width  float64
	height float64

	root  *Node
	nodes map[string]*Node

	// Pending dirty roots with accumulated reasons.
	dirty     map[*Node]DirtyReason
	scheduled bool

	// schedule defers a flush to the owning loop (nil = caller flushes).
	schedule func(flush func())
	onLayout func(*Tree)

	bindings map[*Node]Participant
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithScheduler installs a deferred-execution hook: whenever the tree
// becomes dirty it calls schedule exactly once with a flush callback,
// and not again until that callback runs. An event loop can use this to
// coalesce all mutations of one tick into a single recomputation.
func WithScheduler(schedule func(flush func())) TreeOption {
	return func(t *Tree) {
		t.schedule = schedule
	}
}

// WithOnLayout installs a callback invoked after every completed flush,
// once all computed layouts have been pushed to bound participants.
func WithOnLayout(fn func(*Tree)) TreeOption {
	return func(t *Tree) {
		t.onLayout = fn
	}
}

// NewTree creates an empty tree with the given viewport size in pixels.
func NewTree(width, height float64, opts ...TreeOption) *Tree {
	t := &Tree{
		width:    max(width, 0),
		height:   max(height, 0),
		nodes:    make(map[string]*Node),
		dirty:    make(map[*Node]DirtyReason),
		bindings: make(map[*Node]Participant),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateNode creates and registers a detached node. The id must be
// unique within the tree and non-empty.
func (t *Tree) CreateNode(id string, opts ...Option) (*Node, error) {
	if id == "" {
		return nil, fmt.Errorf("flexbox: empty node id")
	}
	if _, ok := t.nodes[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	n := layout.NewNode(id, DefaultStyle())
	for _, opt := range opts {
		opt(n)
	}
	t.nodes[id] = n
	return n, nil
}

// Node returns the registered node with the given id, or nil.
func (t *Tree) Node(id string) *Node {
	return t.nodes[id]
}

// Root returns the tree's root node, or nil.
func (t *Tree) Root() *Node {
	return t.root
}

// SetRoot makes a registered, detached node the root of the tree.
func (t *Tree) SetRoot(n *Node) error {
	if err := t.owned(n); err != nil {
		return err
	}
	if n.Parent() != nil {
		return fmt.Errorf("%w: %q", ErrHasParent, n.ID())
	}
	t.root = n
	t.MarkDirty(n, DirtyChildren)
	return nil
}

// SetViewport changes the available space offered to the root.
func (t *Tree) SetViewport(width, height float64) {
	t.width = max(width, 0)
	t.height = max(height, 0)
	if t.root != nil {
		t.MarkDirty(t.root, DirtySize)
	}
}

// Viewport returns the current available space.
func (t *Tree) Viewport() (width, height float64) {
	return t.width, t.height
}

// AddChild inserts child under parent at the given index (append when
// omitted). A child attached elsewhere is reparented: it is detached
// from its prior parent first, and both old and new parent become
// dirty. Insertions that would create a cycle are rejected.
func (t *Tree) AddChild(parent, child *Node, at ...int) error {
	if err := t.owned(parent); err != nil {
		return err
	}
	if err := t.owned(child); err != nil {
		return err
	}
	if child == t.root {
		return fmt.Errorf("%w: cannot attach the root under %q", ErrCycle, parent.ID())
	}
	prior := child.Parent()
	if err := parent.AddChild(child, at...); err != nil {
		return err
	}
	if prior != nil && prior != parent {
		t.MarkDirty(prior, DirtyChildren)
	}
	t.MarkDirty(parent, DirtyChildren)
	return nil
}

// RemoveChild detaches child from parent and unregisters the child and
// its entire subtree from the tree, including any pending dirty state,
// so no dangling references to detached nodes remain.
func (t *Tree) RemoveChild(parent, child *Node) error {
	if err := t.owned(parent); err != nil {
		return err
	}
	if err := t.owned(child); err != nil {
		return err
	}
	if !parent.RemoveChild(child) {
		return fmt.Errorf("flexbox: %q is not a child of %q", child.ID(), parent.ID())
	}
	t.unregister(child)
	t.MarkDirty(parent, DirtyChildren)
	return nil
}

// RemoveNode unregisters a node and its subtree. An attached node is
// detached from its parent first; removing the root empties the tree.
func (t *Tree) RemoveNode(n *Node) error {
	if err := t.owned(n); err != nil {
		return err
	}
	if parent := n.Parent(); parent != nil {
		n.Detach()
		t.MarkDirty(parent, DirtyChildren)
	}
	if n == t.root {
		t.root = nil
	}
	t.unregister(n)
	return nil
}

func (t *Tree) unregister(n *Node) {
	n.Walk(func(d *Node) {
		delete(t.nodes, d.ID())
		delete(t.dirty, d)
		delete(t.bindings, d)
	})
}

func (t *Tree) owned(n *Node) error {
	if n == nil {
		return layout.ErrNilNode
	}
	if t.nodes[n.ID()] != n {
		return fmt.Errorf("%w: %q", ErrNotRegistered, n.ID())
	}
	return nil
}

// MarkDirty records that node needs layout recomputation. A style or
// size change on a flex item feeds its parent's line distribution
// (grow, shrink, basis, order), so the walk starts at the containing
// parent; from there the dirty root keeps bubbling past every ancestor
// whose own size depends on this subtree's measurement: a parent that
// is auto-sized on either axis, or that wraps, must itself be
// recomputed, so the walk continues.
func (t *Tree) MarkDirty(node *Node, reason DirtyReason) {
	if t.owned(node) != nil {
		return
	}
	dirtyRoot := node
	if reason&(DirtyStyle|DirtySize) != 0 && node.Parent() != nil {
		dirtyRoot = node.Parent()
	}
	for p := dirtyRoot.Parent(); p != nil; p = dirtyRoot.Parent() {
		if !p.Style.Width.IsAuto() && !p.Style.Height.IsAuto() && p.Style.FlexWrap == NoWrap {
			break
		}
		dirtyRoot = p
	}
	debug.Log("tree: mark dirty %q reason=%s root=%q", node.ID(), reason, dirtyRoot.ID())
	t.dirty[dirtyRoot] |= reason

	if t.schedule != nil && !t.scheduled {
		t.scheduled = true
		t.schedule(func() {
			if err := t.Flush(); err != nil {
				debug.Log("tree: scheduled flush failed: %v", err)
			}
		})
	}
}

// Dirty returns true if a flush is pending.
func (t *Tree) Dirty() bool {
	return len(t.dirty) > 0
}

// Flush recomputes layout for every pending dirty root, coalescing
// nested roots into their highest dirty ancestor, then pushes computed
// layouts to bound participants. Multiple mutations between flushes
// cost exactly one computation per surviving dirty root.
func (t *Tree) Flush() error {
	t.scheduled = false
	if len(t.dirty) == 0 {
		return nil
	}
	roots := t.takeDirtyRoots()

	for _, dr := range roots {
		var err error
		if dr == t.root || dr.Computed() == nil {
			// Never laid out before, or the root itself: recompute the
			// whole tree against the viewport.
			if t.root == nil {
				return ErrNoRoot
			}
			debug.Log("tree: full compute %gx%g", t.width, t.height)
			err = layout.Calculate(t.root, t.width, t.height)
		} else {
			debug.Log("tree: subtree compute %q", dr.ID())
			availW, availH := t.width, t.height
			if p := dr.Parent(); p != nil && p.Computed() != nil {
				content := p.Computed().ContentRect
				availW, availH = content.Width, content.Height
			}
			prev := dr.Computed().Rect
			err = layout.CalculateSubtree(dr, layout.Point{X: prev.X, Y: prev.Y}, availW, availH)
		}
		if err != nil {
			return err
		}
		if dr == t.root {
			break // a full compute covers every other dirty root
		}
	}

	t.notifyLayout()
	return nil
}

// takeDirtyRoots empties the dirty set and returns the surviving roots:
// a dirty root with a dirty ancestor is dropped, and a dirty tree root
// subsumes everything.
func (t *Tree) takeDirtyRoots() []*Node {
	if _, ok := t.dirty[t.root]; ok && t.root != nil {
		clear(t.dirty)
		return []*Node{t.root}
	}
	roots := make([]*Node, 0, len(t.dirty))
	for n := range t.dirty {
		covered := false
		for p := n.Parent(); p != nil; p = p.Parent() {
			if _, ok := t.dirty[p]; ok {
				covered = true
				break
			}
		}
		if !covered {
			roots = append(roots, n)
		}
	}
	clear(t.dirty)
	return roots
}

// ComputeNow forces an immediate synchronous computation: pending dirty
// roots are flushed, and a clean tree is recomputed from the root. Use
// it when geometry is needed right after a mutation, or in tests.
func (t *Tree) ComputeNow() error {
	if len(t.dirty) > 0 {
		return t.Flush()
	}
	if t.root == nil {
		return ErrNoRoot
	}
	if err := layout.Calculate(t.root, t.width, t.height); err != nil {
		return err
	}
	t.notifyLayout()
	return nil
}

func (t *Tree) notifyLayout() {
	for n, p := range t.bindings {
		if l := n.Computed(); l != nil {
			p.ApplyLayout(*l)
		}
	}
	if t.onLayout != nil {
		t.onLayout(t)
	}
}
