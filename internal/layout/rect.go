package layout

// Rect represents a rectangle with position and dimensions, in pixels.
// Position is relative to the parent's content box origin.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns the area of the rectangle, or 0 if it is empty.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given edges. The result never has
// negative dimensions.
func (r Rect) Inset(e Edges) Rect {
	out := Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Horizontal(),
		Height: r.Height - e.Vertical(),
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Outset returns a new Rect expanded by the given edges.
func (r Rect) Outset(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Translate returns a new Rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlapping region of two rectangles, or the zero
// Rect if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects returns true if the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle containing both. Empty rectangles
// are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Clamp returns the point (x, y) clamped to lie within the rectangle.
// For an empty rectangle it returns (0, 0).
func (r Rect) Clamp(x, y float64) (float64, float64) {
	if r.IsEmpty() {
		return 0, 0
	}
	x = min(max(x, r.X), r.Right())
	y = min(max(y, r.Y), r.Bottom())
	return x, y
}
