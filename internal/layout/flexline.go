package layout

import "sort"

// FlexItem wraps one in-flow child during a layout run. Sizes are outer
// sizes on the container's axes: the child's border box plus its margin.
type FlexItem struct {
	node *Node

	// Hypothetical sizes before grow/shrink distribution.
	mainBase  float64
	crossBase float64

	// Final sizes after distribution and cross alignment.
	mainFinal  float64
	crossFinal float64

	// frozen marks an item that hit a min/max clamp and no longer
	// absorbs free space in the iterative solver.
	frozen bool
}

// flexLine is an ordered run of items that share one wrap line.
type flexLine struct {
	items     []*FlexItem
	mainSize  float64 // sum of item main bases plus internal gaps
	crossSize float64 // max item cross base

	// Set by align-content distribution.
	crossOffset float64
	crossFinal  float64
}

// buildItems creates one FlexItem per in-flow child of n, ordered by the
// Order style property (stable for ties, document order otherwise).
// Wrapping and distribution both operate on this order.
func (c *computation) buildItems(n *Node) []*FlexItem {
	isRow := n.Style.Direction.IsRow()
	items := make([]*FlexItem, 0, len(n.children))
	for _, child := range n.children {
		if !child.inFlow() {
			continue
		}
		res := c.resolved[child]
		m := c.measured[child]
		st := &child.Style

		var mainMargin, crossMargin float64
		if isRow {
			mainMargin, crossMargin = st.Margin.Horizontal(), st.Margin.Vertical()
		} else {
			mainMargin, crossMargin = st.Margin.Vertical(), st.Margin.Horizontal()
		}

		// Main base: flex basis when definite, else the resolved fixed
		// size, else the measured content-driven size. The content part
		// is clamped to the item's min/max before the margin is added.
		var mainContent float64
		switch {
		case res.basis.definite:
			mainContent = res.basis.px
		case isRow && res.width.definite:
			mainContent = res.width.px
		case !isRow && res.height.definite:
			mainContent = res.height.px
		case isRow:
			mainContent = m.width
		default:
			mainContent = m.height
		}
		mainContent = st.clampMain(isRow, mainContent)

		var crossContent float64
		if isRow {
			crossContent = m.height
		} else {
			crossContent = m.width
		}

		item := &FlexItem{
			node:      child,
			mainBase:  mainContent + mainMargin,
			crossBase: crossContent + crossMargin,
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].node.Style.Order < items[j].node.Style.Order
	})
	return items
}

// buildLines packs items into wrap lines. A new line starts the moment
// the running main size plus a gap plus the next item would exceed the
// limit. An indefinite limit never wraps; neither does NoWrap.
func buildLines(items []*FlexItem, wrap Wrap, limit dim, gap float64) []*flexLine {
	if len(items) == 0 {
		return nil
	}

	var lines []*flexLine
	if wrap == NoWrap || !limit.definite {
		lines = []*flexLine{{items: items}}
	} else {
		line := &flexLine{}
		running := 0.0
		for _, item := range items {
			need := item.mainBase
			if len(line.items) > 0 {
				need += gap
			}
			if len(line.items) > 0 && running+need > limit.px {
				lines = append(lines, line)
				line = &flexLine{}
				need = item.mainBase
			}
			line.items = append(line.items, item)
			running += need
		}
		lines = append(lines, line)

		if wrap == WrapReverse {
			for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
				lines[i], lines[j] = lines[j], lines[i]
			}
		}
	}

	for _, line := range lines {
		line.mainSize = 0
		line.crossSize = 0
		for i, item := range line.items {
			if i > 0 {
				line.mainSize += gap
			}
			line.mainSize += item.mainBase
			if item.crossBase > line.crossSize {
				line.crossSize = item.crossBase
			}
		}
	}
	return lines
}
