package layout

// position assigns final geometry to n and recurses into its children.
// (x, y) is the border-box origin relative to the parent's content box;
// w and h are the final border-box dimensions, already clamped.
func (c *computation) position(n *Node, x, y, w, h float64) {
	st := &n.Style
	rect := NewRect(x, y, w, h)
	c.computed[n] = &Layout{
		Rect:        rect,
		ContentRect: rect.Inset(st.Padding),
	}

	content := c.computed[n].ContentRect
	if c.hasInFlowChildren(n) {
		c.positionChildren(n, content.Width, content.Height)
	}
	c.positionAbsolute(n, content.Width, content.Height)
}

func (c *computation) hasInFlowChildren(n *Node) bool {
	for _, child := range n.children {
		if child.inFlow() {
			return true
		}
	}
	return false
}

// positionChildren lays out the in-flow children of a container whose
// content box is contentW x contentH. Lines are rebuilt here because the
// final main size can differ from the prepare-pass resolution when the
// container was itself flexed or stretched by its parent.
func (c *computation) positionChildren(n *Node, contentW, contentH float64) {
	st := &n.Style
	isRow := st.Direction.IsRow()

	contentMain, contentCross := contentW, contentH
	if !isRow {
		contentMain, contentCross = contentH, contentW
	}

	items := c.buildItems(n)
	lines := buildLines(items, st.FlexWrap, definite(contentMain), st.mainGap())
	if len(lines) == 0 {
		return
	}

	distributeLines(st, lines, contentCross)
	for _, line := range lines {
		c.flexLineMain(st, line, contentMain)
		alignLineItems(st, line, isRow)
		c.placeLine(n, line, contentMain, isRow)
	}
}

// distributeLines resolves each line's cross offset and final cross size
// (align-content). A single line always occupies the full cross space.
func distributeLines(st *Style, lines []*flexLine, contentCross float64) {
	gap := st.crossGap()
	if len(lines) == 1 {
		lines[0].crossOffset = 0
		lines[0].crossFinal = max(0, contentCross)
		return
	}

	total := 0.0
	for i, line := range lines {
		if i > 0 {
			total += gap
		}
		line.crossFinal = line.crossSize
		total += line.crossSize
	}
	leftover := contentCross - total

	var offset, extra, grow float64
	switch st.AlignContent {
	case AlignLinesStretch:
		if leftover > 0 {
			grow = leftover / float64(len(lines))
		}
	case AlignLinesEnd:
		offset = leftover
	case AlignLinesCenter:
		offset = leftover / 2
	case AlignLinesSpaceBetween:
		if leftover > 0 && len(lines) > 1 {
			extra = leftover / float64(len(lines)-1)
		}
	case AlignLinesSpaceAround:
		if leftover > 0 {
			extra = leftover / float64(len(lines))
			offset = extra / 2
		}
	}
	if offset < 0 {
		offset = 0
	}

	pos := offset
	for i, line := range lines {
		if i > 0 {
			pos += gap + extra
		}
		line.crossFinal = line.crossSize + grow
		line.crossOffset = pos
		pos += line.crossFinal
	}
}

// flexLineMain runs the iterative grow/shrink solver for one line.
// Free space is split proportionally among unfrozen items; an item that
// hits its min/max clamp freezes at the clamp and the remainder is
// redistributed. The loop terminates when the residual drops below
// epsilon or no unfrozen flexible items remain, so a fully frozen line
// with residual space cannot spin.
func (c *computation) flexLineMain(st *Style, line *flexLine, contentMain float64) {
	isRow := st.Direction.IsRow()
	gaps := st.mainGap() * float64(len(line.items)-1)

	used := gaps
	for _, item := range line.items {
		item.mainFinal = item.mainBase
		item.frozen = false
		used += item.mainBase
	}
	free := contentMain - used

	switch {
	case free > epsilon:
		c.growLine(line, free, isRow)
	case free < -epsilon:
		c.shrinkLine(line, -free, isRow)
	}
}

// mainBounds returns the outer min/max bounds for an item on the main
// axis (style constraints plus the item's main margin).
func mainBounds(item *FlexItem, isRow bool) (lo, hi float64) {
	st := &item.node.Style
	var margin float64
	if isRow {
		margin = st.Margin.Horizontal()
		return st.MinWidth + margin, st.MaxWidth + margin
	}
	margin = st.Margin.Vertical()
	return st.MinHeight + margin, st.MaxHeight + margin
}

func (c *computation) growLine(line *flexLine, free float64, isRow bool) {
	remaining := free
	for iter := 0; iter < len(line.items)+1; iter++ {
		totalWeight := 0.0
		for _, item := range line.items {
			if !item.frozen && item.node.Style.FlexGrow > 0 {
				totalWeight += item.node.Style.FlexGrow
			}
		}
		if totalWeight <= 0 || remaining <= epsilon {
			return
		}
		unit := remaining / totalWeight
		clamped := false
		for _, item := range line.items {
			grow := item.node.Style.FlexGrow
			if item.frozen || grow <= 0 {
				continue
			}
			_, hi := mainBounds(item, isRow)
			target := item.mainFinal + unit*grow
			if target >= hi {
				remaining -= hi - item.mainFinal
				item.mainFinal = hi
				item.frozen = true
				clamped = true
			} else {
				remaining -= target - item.mainFinal
				item.mainFinal = target
			}
		}
		if !clamped {
			return
		}
	}
}

func (c *computation) shrinkLine(line *flexLine, deficit float64, isRow bool) {
	remaining := deficit
	for iter := 0; iter < len(line.items)+1; iter++ {
		// Scaled shrink factors: base size times the shrink weight, so
		// larger items give up proportionally more space.
		totalWeight := 0.0
		for _, item := range line.items {
			if !item.frozen && item.node.Style.FlexShrink > 0 {
				totalWeight += item.mainBase * item.node.Style.FlexShrink
			}
		}
		if totalWeight <= 0 || remaining <= epsilon {
			return
		}
		unit := remaining / totalWeight
		clamped := false
		for _, item := range line.items {
			shrink := item.node.Style.FlexShrink
			if item.frozen || shrink <= 0 {
				continue
			}
			lo, _ := mainBounds(item, isRow)
			if lo < 0 {
				lo = 0
			}
			take := unit * item.mainBase * shrink
			target := item.mainFinal - take
			if target <= lo {
				remaining -= item.mainFinal - lo
				item.mainFinal = lo
				item.frozen = true
				clamped = true
			} else {
				remaining -= take
				item.mainFinal = target
			}
		}
		if !clamped {
			return
		}
	}
}

// alignLineItems resolves each item's final cross size within its line.
// Stretch is the only mode that changes an item's size; the other modes
// only offset it during placement. A stretched item still honors its
// own cross-axis min/max constraints.
func alignLineItems(st *Style, line *flexLine, isRow bool) {
	for _, item := range line.items {
		item.crossFinal = item.crossBase
		if itemAlign(st, item) == AlignStretch {
			cst := &item.node.Style
			margin := cst.Margin.Vertical()
			if !isRow {
				margin = cst.Margin.Horizontal()
			}
			item.crossFinal = cst.clampCross(isRow, line.crossFinal-margin) + margin
		}
	}
}

func itemAlign(st *Style, item *FlexItem) Align {
	if self := item.node.Style.AlignSelf; self != nil {
		return *self
	}
	return st.AlignItems
}

// placeLine computes justify-content spacing, orders items for
// placement, assigns each child its final rect, and recurses.
func (c *computation) placeLine(n *Node, line *flexLine, contentMain float64, isRow bool) {
	st := &n.Style
	count := len(line.items)
	gap := st.mainGap()

	used := gap * float64(count-1)
	for _, item := range line.items {
		used += item.mainFinal
	}
	free := contentMain - used

	var offset, extra float64
	switch st.JustifyContent {
	case JustifyEnd:
		offset = free
	case JustifyCenter:
		offset = free / 2
	case JustifySpaceBetween:
		if count > 1 && free > 0 {
			extra = free / float64(count-1)
		}
	case JustifySpaceAround:
		if free > 0 {
			extra = free / float64(count)
			offset = extra / 2
		}
	case JustifySpaceEvenly:
		if free > 0 {
			extra = free / float64(count+1)
			offset = extra
		}
	}

	ordered := line.items
	if st.Direction.IsReverse() {
		ordered = make([]*FlexItem, count)
		for i, item := range line.items {
			ordered[count-1-i] = item
		}
	}

	pos := offset
	for i, item := range ordered {
		if i > 0 {
			pos += gap + extra
		}
		c.placeItem(n, line, item, pos, isRow)
		pos += item.mainFinal
	}
}

// placeItem converts an item's main position and final sizes into a
// border-box rect for the child and recurses into it.
func (c *computation) placeItem(n *Node, line *flexLine, item *FlexItem, mainPos float64, isRow bool) {
	child := item.node
	st := &child.Style

	var crossOffset float64
	switch itemAlign(&n.Style, item) {
	case AlignEnd:
		crossOffset = line.crossFinal - item.crossFinal
	case AlignCenter:
		crossOffset = (line.crossFinal - item.crossFinal) / 2
	}
	crossPos := line.crossOffset + crossOffset

	var x, y, w, h float64
	if isRow {
		w = max(0, item.mainFinal-st.Margin.Horizontal())
		h = max(0, item.crossFinal-st.Margin.Vertical())
		x = mainPos + st.Margin.Left
		y = crossPos + st.Margin.Top
	} else {
		h = max(0, item.mainFinal-st.Margin.Vertical())
		w = max(0, item.crossFinal-st.Margin.Horizontal())
		y = mainPos + st.Margin.Top
		x = crossPos + st.Margin.Left
	}
	c.position(child, x, y, w, h)
}

// positionAbsolute places the absolutely positioned children of n
// against its content box. Each child runs its own prepare and measure
// against the content dimensions, then resolves position and size from
// whichever inset offsets are set. Absolute children never affect their
// siblings or the parent's own size.
func (c *computation) positionAbsolute(n *Node, contentW, contentH float64) {
	for _, child := range n.children {
		st := &child.Style
		if st.Position != PositionAbsolute || st.Display == DisplayNone {
			continue
		}

		c.prepare(child, definite(contentW), definite(contentH))
		c.measure(child)
		m := c.measured[child]

		w, h := m.width, m.height
		if st.Left != nil && st.Right != nil && st.Width.IsAuto() {
			w = st.clampWidth(contentW - *st.Left - *st.Right - st.Margin.Horizontal())
		}
		if st.Top != nil && st.Bottom != nil && st.Height.IsAuto() {
			h = st.clampHeight(contentH - *st.Top - *st.Bottom - st.Margin.Vertical())
		}

		var x, y float64
		switch {
		case st.Left != nil:
			x = *st.Left + st.Margin.Left
		case st.Right != nil:
			x = contentW - *st.Right - w - st.Margin.Right
		default:
			x = st.Margin.Left
		}
		switch {
		case st.Top != nil:
			y = *st.Top + st.Margin.Top
		case st.Bottom != nil:
			y = contentH - *st.Bottom - h - st.Margin.Bottom
		default:
			y = st.Margin.Top
		}

		c.position(child, x, y, w, h)
	}
}
