package layout

import (
	"errors"
	"testing"
)

func TestCalculate_SingleNode_Sizing(t *testing.T) {
	type tc struct {
		style      Style
		availableW float64
		availableH float64
		wantW      float64
		wantH      float64
	}

	tests := map[string]tc{
		"fixed width and height": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fixed(50)
				s.Height = Fixed(30)
				return s
			}(),
			availableW: 100, availableH: 100,
			wantW: 50, wantH: 30,
		},
		"auto sizes to content, zero without any": {
			style:      DefaultStyle(),
			availableW: 100, availableH: 80,
			wantW: 0, wantH: 0,
		},
		"fill takes available space": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fill()
				s.Height = Fill()
				return s
			}(),
			availableW: 100, availableH: 80,
			wantW: 100, wantH: 80,
		},
		"percent of available": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Percent(50)
				s.Height = Percent(25)
				return s
			}(),
			availableW: 200, availableH: 100,
			wantW: 100, wantH: 25,
		},
		"fixed larger than available is kept": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fixed(500)
				s.Height = Fixed(30)
				return s
			}(),
			availableW: 100, availableH: 100,
			wantW: 500, wantH: 30,
		},
		"min and max clamp the resolved size": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fill()
				s.Height = Fill()
				s.MaxWidth = 60
				s.MinHeight = 90
				return s
			}(),
			availableW: 100, availableH: 80,
			wantW: 60, wantH: 90,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := NewNode("root", tt.style)
			if err := Calculate(node, tt.availableW, tt.availableH); err != nil {
				t.Fatalf("Calculate: %v", err)
			}

			got := node.Computed()
			if got == nil {
				t.Fatal("Computed() = nil after Calculate")
			}
			if got.Rect.Width != tt.wantW || got.Rect.Height != tt.wantH {
				t.Errorf("Rect = %vx%v, want %vx%v",
					got.Rect.Width, got.Rect.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCalculate_NilRoot(t *testing.T) {
	if err := Calculate(nil, 100, 100); !errors.Is(err, ErrNilNode) {
		t.Errorf("Calculate(nil) = %v, want ErrNilNode", err)
	}
}

func TestCalculate_ContentRectInsetByPadding(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(100)
	style.Height = Fixed(80)
	style.Padding = EdgeAll(10)

	node := NewNode("root", style)
	if err := Calculate(node, 200, 200); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	l := node.Computed()
	if l.Rect.Width != 100 || l.Rect.Height != 80 {
		t.Errorf("Rect = %vx%v, want 100x80", l.Rect.Width, l.Rect.Height)
	}
	if l.ContentRect.X != 10 || l.ContentRect.Y != 10 {
		t.Errorf("ContentRect origin = (%v, %v), want (10, 10)",
			l.ContentRect.X, l.ContentRect.Y)
	}
	if l.ContentRect.Width != 80 || l.ContentRect.Height != 60 {
		t.Errorf("ContentRect = %vx%v, want 80x60",
			l.ContentRect.Width, l.ContentRect.Height)
	}
}

func TestCalculate_RootMarginOffsetsOrigin(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(50)
	style.Height = Fixed(50)
	style.Margin = EdgeTRBL(5, 0, 0, 8)

	node := NewNode("root", style)
	if err := Calculate(node, 100, 100); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	r := node.Computed().Rect
	if r.X != 8 || r.Y != 5 {
		t.Errorf("root origin = (%v, %v), want (8, 5)", r.X, r.Y)
	}
}

func TestCalculate_RowPlacesChildrenInSequence(t *testing.T) {
	parent := NewNode("parent", DefaultStyle())
	parent.Style.Width = Fixed(100)
	parent.Style.Height = Fixed(50)

	a := NewNode("a", DefaultStyle())
	a.Style.Width = Fixed(30)
	b := NewNode("b", DefaultStyle())
	b.Style.Width = Fixed(40)
	parent.AddChild(a)
	parent.AddChild(b)

	if err := Calculate(parent, 200, 200); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	ra, rb := a.Computed().Rect, b.Computed().Rect
	if ra.X != 0 || rb.X != 30 {
		t.Errorf("child X = %v, %v, want 0, 30", ra.X, rb.X)
	}
	// Default stretch fills the cross axis.
	if ra.Height != 50 || rb.Height != 50 {
		t.Errorf("child heights = %v, %v, want 50, 50", ra.Height, rb.Height)
	}
}

func TestCalculate_ColumnPlacesChildrenInSequence(t *testing.T) {
	parent := NewNode("parent", DefaultStyle())
	parent.Style.Width = Fixed(80)
	parent.Style.Height = Fixed(100)
	parent.Style.Direction = Column
	parent.Style.Gap = 10

	a := NewNode("a", DefaultStyle())
	a.Style.Height = Fixed(20)
	b := NewNode("b", DefaultStyle())
	b.Style.Height = Fixed(30)
	parent.AddChild(a)
	parent.AddChild(b)

	if err := Calculate(parent, 200, 200); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	ra, rb := a.Computed().Rect, b.Computed().Rect
	if ra.Y != 0 || rb.Y != 30 {
		t.Errorf("child Y = %v, %v, want 0, 30", ra.Y, rb.Y)
	}
	if ra.Width != 80 || rb.Width != 80 {
		t.Errorf("child widths = %v, %v, want 80, 80", ra.Width, rb.Width)
	}
}

func TestCalculate_AutoContainerSizesToChildren(t *testing.T) {
	parent := NewNode("parent", DefaultStyle())
	parent.Style.Gap = 10

	a := NewNode("a", DefaultStyle())
	a.Style.Width = Fixed(50)
	a.Style.Height = Fixed(30)
	b := NewNode("b", DefaultStyle())
	b.Style.Width = Fixed(40)
	b.Style.Height = Fixed(20)
	parent.AddChild(a)
	parent.AddChild(b)

	if err := Calculate(parent, 500, 500); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	r := parent.Computed().Rect
	if r.Width != 100 || r.Height != 30 {
		t.Errorf("auto container = %vx%v, want 100x30", r.Width, r.Height)
	}
}

func TestCalculate_PercentResolvesAgainstParentContentBox(t *testing.T) {
	parent := NewNode("parent", DefaultStyle())
	parent.Style.Width = Fixed(200)
	parent.Style.Height = Fixed(100)
	parent.Style.Padding = EdgeAll(10)

	child := NewNode("child", DefaultStyle())
	child.Style.Width = Percent(50)
	child.Style.Height = Fill()
	parent.AddChild(child)

	if err := Calculate(parent, 500, 500); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	r := child.Computed().Rect
	// Content box is 180x80, so 50% width = 90 and fill height = 80.
	if r.Width != 90 || r.Height != 80 {
		t.Errorf("child = %vx%v, want 90x80", r.Width, r.Height)
	}
	if r.X != 0 || r.Y != 0 {
		t.Errorf("child origin = (%v, %v), want (0, 0) within content box", r.X, r.Y)
	}
}

func TestCalculate_DisplayNone(t *testing.T) {
	t.Run("none child is excluded and siblings close the gap", func(t *testing.T) {
		build := func(hideMiddle bool) (root, first, last *Node) {
			root = NewNode("root", DefaultStyle())
			root.Style.Width = Fixed(300)
			root.Style.Height = Fixed(50)
			root.Style.Gap = 10

			first = NewNode("first", DefaultStyle())
			first.Style.Width = Fixed(50)
			middle := NewNode("middle", DefaultStyle())
			middle.Style.Width = Fixed(80)
			if hideMiddle {
				middle.Style.Display = DisplayNone
			}
			last = NewNode("last", DefaultStyle())
			last.Style.Width = Fixed(50)

			root.AddChild(first)
			root.AddChild(middle)
			root.AddChild(last)
			return root, first, last
		}

		withRoot, _, withLast := build(false)
		if err := Calculate(withRoot, 500, 500); err != nil {
			t.Fatalf("Calculate: %v", err)
		}
		if withLast.Computed().Rect.X != 150 {
			t.Fatalf("visible middle: last.X = %v, want 150", withLast.Computed().Rect.X)
		}

		hiddenRoot, _, hiddenLast := build(true)
		if err := Calculate(hiddenRoot, 500, 500); err != nil {
			t.Fatalf("Calculate: %v", err)
		}
		// Identical to a tree where the middle child does not exist.
		if hiddenLast.Computed().Rect.X != 60 {
			t.Errorf("hidden middle: last.X = %v, want 60", hiddenLast.Computed().Rect.X)
		}
	})

	t.Run("none subtree has nil computed layouts", func(t *testing.T) {
		root := NewNode("root", DefaultStyle())
		root.Style.Width = Fixed(100)
		root.Style.Height = Fixed(100)
		hidden := NewNode("hidden", DefaultStyle())
		hidden.Style.Display = DisplayNone
		grandchild := NewNode("grandchild", DefaultStyle())
		root.AddChild(hidden)
		hidden.AddChild(grandchild)

		if err := Calculate(root, 200, 200); err != nil {
			t.Fatalf("Calculate: %v", err)
		}
		if hidden.Computed() != nil || grandchild.Computed() != nil {
			t.Error("display:none subtree should have nil computed layouts")
		}
	})

	t.Run("stale geometry cleared when node becomes none", func(t *testing.T) {
		root := NewNode("root", DefaultStyle())
		root.Style.Width = Fixed(100)
		root.Style.Height = Fixed(100)
		child := NewNode("child", DefaultStyle())
		child.Style.Width = Fixed(50)
		root.AddChild(child)

		Calculate(root, 200, 200)
		if child.Computed() == nil {
			t.Fatal("child should be computed while visible")
		}

		child.Style.Display = DisplayNone
		Calculate(root, 200, 200)
		if child.Computed() != nil {
			t.Error("child keeps stale geometry after becoming display:none")
		}
	})
}

func TestCalculate_Idempotent(t *testing.T) {
	root := NewNode("root", DefaultStyle())
	root.Style.Width = Fixed(300)
	root.Style.Height = Fixed(200)
	root.Style.FlexWrap = WrapLines
	root.Style.Gap = 10

	for i := 0; i < 5; i++ {
		child := NewNode(string(rune('a'+i)), DefaultStyle())
		child.Style.Width = Fixed(100)
		child.Style.Height = Fixed(40)
		child.Style.FlexGrow = float64(i % 2)
		root.AddChild(child)
	}

	if err := Calculate(root, 400, 400); err != nil {
		t.Fatalf("first Calculate: %v", err)
	}
	first := make(map[string]Layout)
	root.Walk(func(n *Node) { first[n.ID()] = *n.Computed() })

	if err := Calculate(root, 400, 400); err != nil {
		t.Fatalf("second Calculate: %v", err)
	}
	root.Walk(func(n *Node) {
		if *n.Computed() != first[n.ID()] {
			t.Errorf("node %q changed between identical runs: %+v vs %+v",
				n.ID(), *n.Computed(), first[n.ID()])
		}
	})
}

func TestCalculateSubtree(t *testing.T) {
	root := NewNode("root", DefaultStyle())
	root.Style.Width = Fixed(200)
	root.Style.Height = Fixed(100)

	panel := NewNode("panel", DefaultStyle())
	panel.Style.Width = Fixed(120)
	panel.Style.Height = Fixed(100)
	root.AddChild(panel)

	inner := NewNode("inner", DefaultStyle())
	inner.Style.Width = Percent(50)
	inner.Style.Height = Fixed(20)
	panel.AddChild(inner)

	if err := Calculate(root, 300, 300); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	box := panel.Computed().Rect

	t.Run("fixed-size subtree keeps its box", func(t *testing.T) {
		inner.Style.Width = Percent(25)
		origin := Point{X: box.X, Y: box.Y}
		if err := CalculateSubtree(panel, origin, 200, 100); err != nil {
			t.Fatalf("CalculateSubtree: %v", err)
		}

		if panel.Computed().Rect != box {
			t.Errorf("panel box changed: %+v, want %+v", panel.Computed().Rect, box)
		}
		if inner.Computed().Rect.Width != 30 {
			t.Errorf("inner width = %v, want 30 (25%% of 120)", inner.Computed().Rect.Width)
		}
	})

	t.Run("auto-sized subtree is remeasured", func(t *testing.T) {
		panel.Style.Width = Auto()
		inner.Style.Width = Fixed(70)
		if err := CalculateSubtree(panel, Point{}, 200, 100); err != nil {
			t.Fatalf("CalculateSubtree: %v", err)
		}
		if w := panel.Computed().Rect.Width; w != 70 {
			t.Errorf("panel width = %v, want remeasured 70", w)
		}
	})

	t.Run("outer tree keeps stale geometry", func(t *testing.T) {
		if root.Computed().Rect.Width != 200 {
			t.Errorf("root geometry changed by subtree recompute")
		}
	})
}
