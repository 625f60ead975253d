package layout

import "math"

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

// IsRow returns true for the horizontal main-axis directions.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse returns true for the reversed placement directions.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// Wrap controls whether children may break onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line, items may overflow or shrink
	WrapLines               // Break onto new lines when out of main space
	WrapReverse             // Like WrapLines with the line order reversed
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// AlignLines specifies how wrapped lines are distributed on the cross axis.
type AlignLines uint8

const (
	AlignLinesStretch      AlignLines = iota // Lines grow to fill leftover space
	AlignLinesStart                          // Pack lines at start
	AlignLinesEnd                            // Pack lines at end
	AlignLinesCenter                         // Center the block of lines
	AlignLinesSpaceBetween                   // Even space between lines
	AlignLinesSpaceAround                    // Even space around each line
)

// Display controls whether a node participates in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota // Normal flex layout
	DisplayNone                // Excluded from layout, subtree and all
)

// Position controls how a node is placed relative to its parent.
type Position uint8

const (
	PositionRelative Position = iota // In-flow flex item
	PositionAbsolute                 // Placed against the parent content box
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64 // +Inf means no maximum
	MaxHeight float64 // +Inf means no maximum

	// Flex container properties
	Direction      Direction
	FlexWrap       Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignLines
	Gap            float64  // Space between children on both axes
	RowGap         *float64 // Overrides Gap between rows (nil = use Gap)
	ColumnGap      *float64 // Overrides Gap between columns (nil = use Gap)

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value   // Hypothetical main size before flexing (Auto = use size/content)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)
	Order      int     // Placement order override, ascending, stable for ties

	// Positioning
	Display  Display
	Position Position
	Top      *float64 // Offsets for absolutely positioned nodes (nil = unset)
	Right    *float64
	Bottom   *float64
	Left     *float64
	ZIndex   int // Paint order hint, not used for geometry

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MaxWidth:   math.Inf(1),
		MaxHeight:  math.Inf(1),
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexBasis:  Auto(),
		FlexShrink: 1.0,
	}
}

// mainGap returns the gap between adjacent items on the main axis.
// Row-like directions space items by the column gap, column-like by the row gap.
func (s *Style) mainGap() float64 {
	if s.Direction.IsRow() {
		if s.ColumnGap != nil {
			return *s.ColumnGap
		}
	} else {
		if s.RowGap != nil {
			return *s.RowGap
		}
	}
	return s.Gap
}

// crossGap returns the gap between adjacent lines on the cross axis.
func (s *Style) crossGap() float64 {
	if s.Direction.IsRow() {
		if s.RowGap != nil {
			return *s.RowGap
		}
	} else {
		if s.ColumnGap != nil {
			return *s.ColumnGap
		}
	}
	return s.Gap
}

// clampWidth applies the min/max width constraints to w.
func (s *Style) clampWidth(w float64) float64 {
	if w > s.MaxWidth {
		w = s.MaxWidth
	}
	if w < s.MinWidth {
		w = s.MinWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}

// clampHeight applies the min/max height constraints to h.
func (s *Style) clampHeight(h float64) float64 {
	if h > s.MaxHeight {
		h = s.MaxHeight
	}
	if h < s.MinHeight {
		h = s.MinHeight
	}
	if h < 0 {
		h = 0
	}
	return h
}

// clampMain applies the main-axis min/max constraints.
func (s *Style) clampMain(isRow bool, v float64) float64 {
	if isRow {
		return s.clampWidth(v)
	}
	return s.clampHeight(v)
}

// clampCross applies the cross-axis min/max constraints.
func (s *Style) clampCross(isRow bool, v float64) float64 {
	if isRow {
		return s.clampHeight(v)
	}
	return s.clampWidth(v)
}
