package layout

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the total horizontal spacing (left + right).
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all four edges are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
