// flexbox.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexbox

import "github.com/cbarraud/go-flexbox/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Wrap controls whether children may break onto multiple lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapLines   = layout.WrapLines
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignLines specifies how wrapped lines are distributed on the cross axis.
type AlignLines = layout.AlignLines

const (
	AlignLinesStretch      = layout.AlignLinesStretch
	AlignLinesStart        = layout.AlignLinesStart
	AlignLinesEnd          = layout.AlignLinesEnd
	AlignLinesCenter       = layout.AlignLinesCenter
	AlignLinesSpaceBetween = layout.AlignLinesSpaceBetween
	AlignLinesSpaceAround  = layout.AlignLinesSpaceAround
)

// Display controls whether a node participates in layout at all.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Position controls how a node is placed relative to its parent.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Value represents a dimension value (fixed, percent, fill, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitFill    = layout.UnitFill
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Node is a single participant in the layout tree.
type Node = layout.Node

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Layout holds the computed geometry for a node.
type Layout = layout.Layout

// Fixed creates a Value with an absolute pixel size.
func Fixed(px float64) Value {
	return layout.Fixed(px)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Fill creates a Value that takes the parent's entire available space.
func Fill() Value {
	return layout.Fill()
}

// ParseValue parses a size expression: number, "auto", "fill", or "NN%".
func ParseValue(s string) (Value, error) {
	return layout.Parse(s)
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate performs flexbox layout on the given tree without a Tree
// manager. Most callers should use Tree instead.
func Calculate(root *Node, availableWidth, availableHeight float64) error {
	return layout.Calculate(root, availableWidth, availableHeight)
}
