package flexbox

// Option configures a Node at creation time.
type Option func(*Node)

// --- Dimension Options ---

// WithWidth sets a fixed width in pixels.
func WithWidth(px float64) Option {
	return func(n *Node) {
		n.Style.Width = Fixed(px)
	}
}

// WithWidthPercent sets width as a percentage of parent's available width.
func WithWidthPercent(percent float64) Option {
	return func(n *Node) {
		n.Style.Width = Percent(percent)
	}
}

// WithWidthFill makes the node take the parent's full available width.
func WithWidthFill() Option {
	return func(n *Node) {
		n.Style.Width = Fill()
	}
}

// WithHeight sets a fixed height in pixels.
func WithHeight(px float64) Option {
	return func(n *Node) {
		n.Style.Height = Fixed(px)
	}
}

// WithHeightPercent sets height as a percentage of parent's available height.
func WithHeightPercent(percent float64) Option {
	return func(n *Node) {
		n.Style.Height = Percent(percent)
	}
}

// WithHeightFill makes the node take the parent's full available height.
func WithHeightFill() Option {
	return func(n *Node) {
		n.Style.Height = Fill()
	}
}

// WithSize sets both width and height in pixels.
func WithSize(width, height float64) Option {
	return func(n *Node) {
		n.Style.Width = Fixed(width)
		n.Style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in pixels.
func WithMinWidth(px float64) Option {
	return func(n *Node) {
		n.Style.MinWidth = px
	}
}

// WithMinHeight sets the minimum height in pixels.
func WithMinHeight(px float64) Option {
	return func(n *Node) {
		n.Style.MinHeight = px
	}
}

// WithMaxWidth sets the maximum width in pixels.
func WithMaxWidth(px float64) Option {
	return func(n *Node) {
		n.Style.MaxWidth = px
	}
}

// WithMaxHeight sets the maximum height in pixels.
func WithMaxHeight(px float64) Option {
	return func(n *Node) {
		n.Style.MaxHeight = px
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(n *Node) {
		n.Style.Direction = d
	}
}

// WithWrap sets how children break onto multiple lines.
func WithWrap(w Wrap) Option {
	return func(n *Node) {
		n.Style.FlexWrap = w
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(n *Node) {
		n.Style.JustifyContent = j
	}
}

// WithAlignItems sets how children are aligned along the cross axis.
func WithAlignItems(a Align) Option {
	return func(n *Node) {
		n.Style.AlignItems = a
	}
}

// WithAlignContent sets how wrapped lines are distributed on the cross axis.
func WithAlignContent(a AlignLines) Option {
	return func(n *Node) {
		n.Style.AlignContent = a
	}
}

// WithGap sets the space between children on both axes.
func WithGap(px float64) Option {
	return func(n *Node) {
		n.Style.Gap = px
	}
}

// WithRowGap overrides the gap between rows.
func WithRowGap(px float64) Option {
	return func(n *Node) {
		n.Style.RowGap = &px
	}
}

// WithColumnGap overrides the gap between columns.
func WithColumnGap(px float64) Option {
	return func(n *Node) {
		n.Style.ColumnGap = &px
	}
}

// --- Flex Item Options ---

// WithFlexGrow sets how much the node grows relative to siblings.
func WithFlexGrow(grow float64) Option {
	return func(n *Node) {
		n.Style.FlexGrow = grow
	}
}

// WithFlexShrink sets how much the node shrinks relative to siblings.
func WithFlexShrink(shrink float64) Option {
	return func(n *Node) {
		n.Style.FlexShrink = shrink
	}
}

// WithFlexBasis sets the hypothetical main size before flexing.
func WithFlexBasis(px float64) Option {
	return func(n *Node) {
		n.Style.FlexBasis = Fixed(px)
	}
}

// WithAlignSelf overrides the parent's AlignItems for this node.
func WithAlignSelf(a Align) Option {
	return func(n *Node) {
		n.Style.AlignSelf = &a
	}
}

// WithOrder overrides the node's placement order among siblings.
func WithOrder(order int) Option {
	return func(n *Node) {
		n.Style.Order = order
	}
}

// --- Positioning Options ---

// WithDisplay sets whether the node participates in layout.
func WithDisplay(d Display) Option {
	return func(n *Node) {
		n.Style.Display = d
	}
}

// WithPosition sets how the node is placed relative to its parent.
func WithPosition(p Position) Option {
	return func(n *Node) {
		n.Style.Position = p
	}
}

// WithLeft sets the left inset for an absolutely positioned node.
func WithLeft(px float64) Option {
	return func(n *Node) {
		n.Style.Left = &px
	}
}

// WithRight sets the right inset for an absolutely positioned node.
func WithRight(px float64) Option {
	return func(n *Node) {
		n.Style.Right = &px
	}
}

// WithTop sets the top inset for an absolutely positioned node.
func WithTop(px float64) Option {
	return func(n *Node) {
		n.Style.Top = &px
	}
}

// WithBottom sets the bottom inset for an absolutely positioned node.
func WithBottom(px float64) Option {
	return func(n *Node) {
		n.Style.Bottom = &px
	}
}

// WithZIndex sets the paint-order hint. It does not affect geometry.
func WithZIndex(z int) Option {
	return func(n *Node) {
		n.Style.ZIndex = z
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all four sides.
func WithPadding(px float64) Option {
	return func(n *Node) {
		n.Style.Padding = EdgeAll(px)
	}
}

// WithPaddingEdges sets per-edge padding.
func WithPaddingEdges(e Edges) Option {
	return func(n *Node) {
		n.Style.Padding = e
	}
}

// WithMargin sets uniform margin on all four sides.
func WithMargin(px float64) Option {
	return func(n *Node) {
		n.Style.Margin = EdgeAll(px)
	}
}

// WithMarginEdges sets per-edge margin.
func WithMarginEdges(e Edges) Option {
	return func(n *Node) {
		n.Style.Margin = e
	}
}

// --- Content Sizing Options ---

// WithIntrinsicSize gives the node a static content size. Mutually
// exclusive with WithMeasureFunc: combining the two panics, since a node
// with two sizing sources is a programming error.
func WithIntrinsicSize(width, height float64) Option {
	return func(n *Node) {
		if err := n.SetIntrinsicSize(Size{Width: width, Height: height}); err != nil {
			panic(err)
		}
	}
}

// WithMeasureFunc gives the node a dynamic content-measurement callback.
// Mutually exclusive with WithIntrinsicSize: combining the two panics.
func WithMeasureFunc(fn func() Size) Option {
	return func(n *Node) {
		if err := n.SetMeasureFunc(fn); err != nil {
			panic(err)
		}
	}
}

// WithStyle replaces the node's entire style.
func WithStyle(s Style) Option {
	return func(n *Node) {
		n.Style = s
	}
}
