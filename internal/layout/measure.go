package layout

import "github.com/cbarraud/go-flexbox/internal/debug"

// measure computes content-driven sizes bottom-up. Leaves take their
// size from the measure callback or intrinsic size; containers measure
// children first, then derive their own auto size from the wrap-line
// breakdown of their flex items.
func (c *computation) measure(n *Node) {
	st := &n.Style
	res := c.resolved[n]

	inflow := 0
	for _, child := range n.children {
		if child.inFlow() {
			c.measure(child)
			inflow++
		}
	}

	m := &measuredState{}
	if inflow == 0 {
		content := c.contentSize(n)
		if res.width.definite {
			m.width = st.clampWidth(res.width.px)
		} else {
			m.width = st.clampWidth(content.Width + st.Padding.Horizontal())
		}
		if res.height.definite {
			m.height = st.clampHeight(res.height.px)
		} else {
			m.height = st.clampHeight(content.Height + st.Padding.Vertical())
		}
		c.measured[n] = m
		return
	}

	isRow := st.Direction.IsRow()
	items := c.buildItems(n)

	// Wrap limit: the container's resolved main content size, when it
	// has one. An auto-sized main axis never wraps.
	limit := indefinite
	mainRes := res.width
	if !isRow {
		mainRes = res.height
	}
	if mainRes.definite {
		if isRow {
			limit = definite(max(0, mainRes.px-st.Padding.Horizontal()))
		} else {
			limit = definite(max(0, mainRes.px-st.Padding.Vertical()))
		}
	}
	m.lines = buildLines(items, st.FlexWrap, limit, st.mainGap())

	// Auto sizes: widest line on the main axis, stacked lines plus
	// cross gaps on the cross axis.
	var autoMain, autoCross float64
	for i, line := range m.lines {
		if line.mainSize > autoMain {
			autoMain = line.mainSize
		}
		if i > 0 {
			autoCross += st.crossGap()
		}
		autoCross += line.crossSize
	}

	var mainPad, crossPad float64
	if isRow {
		mainPad, crossPad = st.Padding.Horizontal(), st.Padding.Vertical()
	} else {
		mainPad, crossPad = st.Padding.Vertical(), st.Padding.Horizontal()
	}

	mainSize := autoMain + mainPad
	if mainRes.definite {
		mainSize = mainRes.px
	}
	crossRes := res.height
	if !isRow {
		crossRes = res.width
	}
	crossSize := autoCross + crossPad
	if crossRes.definite {
		crossSize = crossRes.px
	}

	if isRow {
		m.width = st.clampWidth(mainSize)
		m.height = st.clampHeight(crossSize)
	} else {
		m.height = st.clampHeight(mainSize)
		m.width = st.clampWidth(crossSize)
	}
	c.measured[n] = m
}

// contentSize invokes the node's sizing source, treating negative
// results as zero.
func (c *computation) contentSize(n *Node) Size {
	var s Size
	switch {
	case n.measure != nil:
		s = n.measure()
	case n.intrinsic != nil:
		s = *n.intrinsic
	default:
		return Size{}
	}
	if s.Width < 0 || s.Height < 0 {
		debug.Log("measure: node %q returned negative content size %.2fx%.2f, clamping to 0", n.id, s.Width, s.Height)
		s.Width = max(s.Width, 0)
		s.Height = max(s.Height, 0)
	}
	return s
}
