package layout

import "testing"

func TestRect_EdgesAndArea(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
	if r.Area() != 1200 {
		t.Errorf("Area() = %v, want 1200", r.Area())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a 30x40 rect")
	}
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("IsEmpty() = false for a zero-width rect")
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y float64
		want bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"inside":                {x: 15, y: 15, want: true},
		"top-left corner":       {x: 10, y: 10, want: true},
		"right edge exclusive":  {x: 30, y: 15, want: false},
		"bottom edge exclusive": {x: 15, y: 30, want: false},
		"outside left":          {x: 5, y: 15, want: false},
		"fractional inside":     {x: 29.9, y: 29.9, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	r := NewRect(0, 0, 100, 80)

	in := r.Inset(EdgeTRBL(5, 10, 15, 20))
	want := NewRect(20, 5, 70, 60)
	if in != want {
		t.Errorf("Inset = %+v, want %+v", in, want)
	}

	// Inset larger than the rect clamps to zero size.
	tiny := NewRect(0, 0, 10, 10).Inset(EdgeAll(20))
	if tiny.Width != 0 || tiny.Height != 0 {
		t.Errorf("over-inset = %+v, want zero dimensions", tiny)
	}

	out := r.Outset(EdgeAll(5))
	if out != NewRect(-5, -5, 110, 90) {
		t.Errorf("Outset = %+v", out)
	}
}

func TestRect_IntersectUnion(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	b := NewRect(25, 25, 50, 50)

	got := a.Intersect(b)
	if got != NewRect(25, 25, 25, 25) {
		t.Errorf("Intersect = %+v", got)
	}
	if !a.Intersects(b) {
		t.Error("Intersects = false for overlapping rects")
	}

	c := NewRect(100, 100, 10, 10)
	if !a.Intersect(c).IsEmpty() {
		t.Errorf("Intersect of disjoint rects = %+v, want empty", a.Intersect(c))
	}

	u := a.Union(b)
	if u != NewRect(0, 0, 75, 75) {
		t.Errorf("Union = %+v", u)
	}
	if a.Union(Rect{}) != a {
		t.Error("Union with empty rect should return the original")
	}
}

func TestRect_Clamp(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	x, y := r.Clamp(0, 50)
	if x != 10 || y != 30 {
		t.Errorf("Clamp(0, 50) = (%v, %v), want (10, 30)", x, y)
	}
	x, y = r.Clamp(15, 15)
	if x != 15 || y != 15 {
		t.Errorf("Clamp(15, 15) = (%v, %v), want unchanged", x, y)
	}
	x, y = Rect{}.Clamp(5, 5)
	if x != 0 || y != 0 {
		t.Errorf("Clamp on empty rect = (%v, %v), want (0, 0)", x, y)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
	if !(Edges{}).IsZero() {
		t.Error("zero Edges should report IsZero")
	}
	if EdgeAll(1).IsZero() {
		t.Error("EdgeAll(1) should not report IsZero")
	}
	if EdgeSymmetric(2, 3) != (Edges{Top: 2, Right: 3, Bottom: 2, Left: 3}) {
		t.Errorf("EdgeSymmetric(2, 3) = %+v", EdgeSymmetric(2, 3))
	}
}
