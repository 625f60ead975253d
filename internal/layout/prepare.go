package layout

// prepare resolves style sizes for n and its in-flow descendants against
// the available space, top-down. Absolutely positioned children are
// skipped here; the position pass prepares them against their parent's
// final content box. display:none subtrees are skipped entirely and so
// never influence sibling layout.
func (c *computation) prepare(n *Node, availW, availH dim) {
	if n.Style.Display == DisplayNone {
		return
	}
	st := &n.Style

	res := &resolvedState{
		width:  resolveValue(st.Width, availW),
		height: resolveValue(st.Height, availH),
	}
	if st.Direction.IsRow() {
		res.basis = resolveValue(st.FlexBasis, availW)
	} else {
		res.basis = resolveValue(st.FlexBasis, availH)
	}

	// Space offered to children: the node's own resolved size when known,
	// otherwise the space the parent offered, less padding and margin.
	res.availW = childAvailable(res.width, availW, st.Padding.Horizontal(), st.Margin.Horizontal())
	res.availH = childAvailable(res.height, availH, st.Padding.Vertical(), st.Margin.Vertical())
	c.resolved[n] = res

	for _, child := range n.children {
		if child.inFlow() {
			c.prepare(child, res.availW, res.availH)
		}
	}
}

func childAvailable(own, parent dim, padding, margin float64) dim {
	base := parent
	if own.definite {
		base = own
	}
	if !base.definite {
		return indefinite
	}
	return definite(max(0, base.px-padding-margin))
}
