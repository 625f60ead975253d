package layout

// The engine runs three passes per calculation:
//
//  1. prepare (top-down): resolve style sizes against available space.
//  2. measure (bottom-up): content sizes and wrap-line breakdown.
//  3. position (top-down): grow/shrink, alignment, final geometry.
//
// All per-pass state lives in a computation and is committed to the nodes
// only after every pass succeeds, so callers never observe a partially
// computed tree. Re-running with the same inputs produces identical
// output: nothing feeds back from one run into the next.

// epsilon bounds the iterative grow/shrink solver. Residual free space
// below this threshold is not worth another distribution round.
const epsilon = 0.001

// dim is a pixel dimension that may not be resolvable yet. Percent and
// fill sizes stay indefinite until their parent dimension is known.
type dim struct {
	px       float64
	definite bool
}

func definite(px float64) dim {
	return dim{px: px, definite: true}
}

var indefinite = dim{}

// resolveValue resolves a style Value against available space.
func resolveValue(v Value, available dim) dim {
	avail := -1.0
	if available.definite {
		avail = available.px
	}
	px, ok := v.Resolve(avail)
	if !ok {
		return indefinite
	}
	return definite(px)
}

// resolvedState is the prepare-pass output for one node.
type resolvedState struct {
	width  dim // own border-box size, when resolvable top-down
	height dim
	basis  dim // main-axis flex basis

	availW dim // space offered to children
	availH dim
}

// measuredState is the measure-pass output for one node.
type measuredState struct {
	width  float64 // border-box size: resolved when definite, else content-driven
	height float64
	lines  []*flexLine // wrap breakdown used for auto-sizing
}

// computation holds all engine state for a single Calculate call.
type computation struct {
	resolved map[*Node]*resolvedState
	measured map[*Node]*measuredState
	computed map[*Node]*Layout
}

func newComputation() *computation {
	return &computation{
		resolved: make(map[*Node]*resolvedState),
		measured: make(map[*Node]*measuredState),
		computed: make(map[*Node]*Layout),
	}
}

// Calculate computes geometry for root and every descendant, given the
// available space in pixels. Results are exposed through Node.Computed;
// display:none subtrees come out with nil computed layouts and do not
// affect their siblings.
func Calculate(root *Node, availableWidth, availableHeight float64) error {
	if root == nil {
		return ErrNilNode
	}
	availableWidth = max(availableWidth, 0)
	availableHeight = max(availableHeight, 0)

	c := newComputation()
	if root.Style.Display != DisplayNone {
		c.prepare(root, definite(availableWidth), definite(availableHeight))
		c.measure(root)
		m := c.measured[root]
		c.position(root, root.Style.Margin.Left, root.Style.Margin.Top, m.width, m.height)
	}

	// Commit. Nodes the passes never reached (display:none subtrees)
	// get their stale geometry cleared.
	root.Walk(func(n *Node) {
		n.computed = c.computed[n]
	})
	return nil
}

// CalculateSubtree recomputes n and its descendants in place, without
// touching the rest of the tree. The node is re-resolved and remeasured
// against the given available space (its parent's content dimensions)
// and positioned at origin, the border-box position its parent last
// assigned. Used by the tree manager when a dirty root sits below a
// fixed-size, non-wrapping parent and the outer tree can keep its
// geometry.
func CalculateSubtree(n *Node, origin Point, availableWidth, availableHeight float64) error {
	if n == nil {
		return ErrNilNode
	}

	c := newComputation()
	if n.Style.Display != DisplayNone {
		c.prepare(n, definite(max(0, availableWidth)), definite(max(0, availableHeight)))
		c.measure(n)
		m := c.measured[n]
		c.position(n, origin.X, origin.Y, m.width, m.height)
	}

	n.Walk(func(d *Node) {
		d.computed = c.computed[d]
	})
	return nil
}
