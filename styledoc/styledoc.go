// Package styledoc loads flexbox trees from TOML documents.
//
// A document declares the viewport and a nested node table:
//
//	width = 800
//	height = 600
//
//	[root]
//	id = "app"
//	direction = "row"
//	gap = 10
//
//	[[root.children]]
//	id = "sidebar"
//	width = "200"
//
//	[[root.children]]
//	id = "content"
//	grow = 1
//
// Sizes use the engine's value grammar: a bare number of pixels,
// "auto", "fill", or a percentage like "25%".
package styledoc

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	flexbox "github.com/cbarraud/go-flexbox"
)

type document struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Root   *node   `toml:"root"`
}

// node mirrors one TOML node table. Pointer fields distinguish "not
// set" from zero so unset properties keep their style defaults.
type node struct {
	ID string `toml:"id"`

	Width  string `toml:"width"`
	Height string `toml:"height"`
	Basis  string `toml:"basis"`

	MinWidth  *float64 `toml:"min_width"`
	MinHeight *float64 `toml:"min_height"`
	MaxWidth  *float64 `toml:"max_width"`
	MaxHeight *float64 `toml:"max_height"`

	Direction    string `toml:"direction"`
	Wrap         string `toml:"wrap"`
	Justify      string `toml:"justify"`
	AlignItems   string `toml:"align_items"`
	AlignContent string `toml:"align_content"`
	AlignSelf    string `toml:"align_self"`
	Display      string `toml:"display"`
	Position     string `toml:"position"`

	Gap       *float64 `toml:"gap"`
	RowGap    *float64 `toml:"row_gap"`
	ColumnGap *float64 `toml:"column_gap"`

	Grow   *float64 `toml:"grow"`
	Shrink *float64 `toml:"shrink"`
	Order  *int     `toml:"order"`
	ZIndex *int     `toml:"z_index"`

	// CSS shorthand: one value for all edges, two for vertical then
	// horizontal, or four for top, right, bottom, left.
	Padding []float64 `toml:"padding"`
	Margin  []float64 `toml:"margin"`

	Top    *float64 `toml:"top"`
	Right  *float64 `toml:"right"`
	Bottom *float64 `toml:"bottom"`
	Left   *float64 `toml:"left"`

	Children []*node `toml:"children"`
}

// Load reads a TOML document and builds a fully constructed tree. The
// tree is returned clean with layout already computed.
func Load(r io.Reader) (*flexbox.Tree, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("styledoc: read document: %w", err)
	}
	var doc document
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("styledoc: parse document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("styledoc: document has no [root] table")
	}

	t := flexbox.NewTree(doc.Width, doc.Height)
	b := &builder{tree: t}
	root, err := b.build(doc.Root, "root")
	if err != nil {
		return nil, err
	}
	if err := t.SetRoot(root); err != nil {
		return nil, fmt.Errorf("styledoc: %w", err)
	}
	if err := t.Flush(); err != nil {
		return nil, fmt.Errorf("styledoc: initial layout: %w", err)
	}
	return t, nil
}

// LoadFile loads a tree from a TOML file on disk.
func LoadFile(path string) (*flexbox.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("styledoc: %w", err)
	}
	defer f.Close()
	return Load(f)
}

type builder struct {
	tree *flexbox.Tree
	seq  int
}

func (b *builder) build(nd *node, path string) (*flexbox.Node, error) {
	id := nd.ID
	if id == "" {
		b.seq++
		id = fmt.Sprintf("node-%d", b.seq)
	}
	n, err := b.tree.CreateNode(id)
	if err != nil {
		return nil, fmt.Errorf("styledoc: %s: %w", path, err)
	}
	if err := applyStyle(nd, &n.Style); err != nil {
		return nil, fmt.Errorf("styledoc: %s: %w", path, err)
	}
	for i, child := range nd.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		cn, err := b.build(child, childPath)
		if err != nil {
			return nil, err
		}
		if err := b.tree.AddChild(n, cn); err != nil {
			return nil, fmt.Errorf("styledoc: %s: %w", childPath, err)
		}
	}
	return n, nil
}

func applyStyle(nd *node, st *flexbox.Style) error {
	if err := setValue(&st.Width, nd.Width, "width"); err != nil {
		return err
	}
	if err := setValue(&st.Height, nd.Height, "height"); err != nil {
		return err
	}
	if err := setValue(&st.FlexBasis, nd.Basis, "basis"); err != nil {
		return err
	}

	if nd.MinWidth != nil {
		st.MinWidth = *nd.MinWidth
	}
	if nd.MinHeight != nil {
		st.MinHeight = *nd.MinHeight
	}
	if nd.MaxWidth != nil {
		st.MaxWidth = *nd.MaxWidth
	}
	if nd.MaxHeight != nil {
		st.MaxHeight = *nd.MaxHeight
	}

	if err := setEnum(&st.Direction, nd.Direction, "direction", directions); err != nil {
		return err
	}
	if err := setEnum(&st.FlexWrap, nd.Wrap, "wrap", wraps); err != nil {
		return err
	}
	if err := setEnum(&st.JustifyContent, nd.Justify, "justify", justifies); err != nil {
		return err
	}
	if err := setEnum(&st.AlignItems, nd.AlignItems, "align_items", aligns); err != nil {
		return err
	}
	if err := setEnum(&st.AlignContent, nd.AlignContent, "align_content", alignLines); err != nil {
		return err
	}
	if nd.AlignSelf != "" {
		var a flexbox.Align
		if err := setEnum(&a, nd.AlignSelf, "align_self", aligns); err != nil {
			return err
		}
		st.AlignSelf = &a
	}
	if err := setEnum(&st.Display, nd.Display, "display", displays); err != nil {
		return err
	}
	if err := setEnum(&st.Position, nd.Position, "position", positions); err != nil {
		return err
	}

	if nd.Gap != nil {
		st.Gap = *nd.Gap
	}
	st.RowGap = nd.RowGap
	st.ColumnGap = nd.ColumnGap

	if nd.Grow != nil {
		st.FlexGrow = *nd.Grow
	}
	if nd.Shrink != nil {
		st.FlexShrink = *nd.Shrink
	}
	if nd.Order != nil {
		st.Order = *nd.Order
	}
	if nd.ZIndex != nil {
		st.ZIndex = *nd.ZIndex
	}

	if len(nd.Padding) > 0 {
		e, err := edgesShorthand(nd.Padding, "padding")
		if err != nil {
			return err
		}
		st.Padding = e
	}
	if len(nd.Margin) > 0 {
		e, err := edgesShorthand(nd.Margin, "margin")
		if err != nil {
			return err
		}
		st.Margin = e
	}

	st.Top = nd.Top
	st.Right = nd.Right
	st.Bottom = nd.Bottom
	st.Left = nd.Left
	return nil
}

func setValue(dst *flexbox.Value, raw, key string) error {
	if raw == "" {
		return nil
	}
	v, err := flexbox.ParseValue(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func setEnum[T any](dst *T, raw, key string, table map[string]T) error {
	if raw == "" {
		return nil
	}
	v, ok := table[raw]
	if !ok {
		return fmt.Errorf("%s: unknown value %q", key, raw)
	}
	*dst = v
	return nil
}

func edgesShorthand(vals []float64, key string) (flexbox.Edges, error) {
	switch len(vals) {
	case 1:
		return flexbox.EdgeAll(vals[0]), nil
	case 2:
		return flexbox.EdgeSymmetric(vals[0], vals[1]), nil
	case 4:
		return flexbox.EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return flexbox.Edges{}, fmt.Errorf("%s: expected 1, 2, or 4 values, got %d", key, len(vals))
	}
}

var directions = map[string]flexbox.Direction{
	"row":            flexbox.Row,
	"row-reverse":    flexbox.RowReverse,
	"column":         flexbox.Column,
	"column-reverse": flexbox.ColumnReverse,
}

var wraps = map[string]flexbox.Wrap{
	"nowrap":       flexbox.NoWrap,
	"wrap":         flexbox.WrapLines,
	"wrap-reverse": flexbox.WrapReverse,
}

var justifies = map[string]flexbox.Justify{
	"start":         flexbox.JustifyStart,
	"end":           flexbox.JustifyEnd,
	"center":        flexbox.JustifyCenter,
	"space-between": flexbox.JustifySpaceBetween,
	"space-around":  flexbox.JustifySpaceAround,
	"space-evenly":  flexbox.JustifySpaceEvenly,
}

var aligns = map[string]flexbox.Align{
	"start":   flexbox.AlignStart,
	"end":     flexbox.AlignEnd,
	"center":  flexbox.AlignCenter,
	"stretch": flexbox.AlignStretch,
}

var alignLines = map[string]flexbox.AlignLines{
	"start":         flexbox.AlignLinesStart,
	"end":           flexbox.AlignLinesEnd,
	"center":        flexbox.AlignLinesCenter,
	"stretch":       flexbox.AlignLinesStretch,
	"space-between": flexbox.AlignLinesSpaceBetween,
	"space-around":  flexbox.AlignLinesSpaceAround,
}

var displays = map[string]flexbox.Display{
	"flex": flexbox.DisplayFlex,
	"none": flexbox.DisplayNone,
}

var positions = map[string]flexbox.Position{
	"relative": flexbox.PositionRelative,
	"absolute": flexbox.PositionAbsolute,
}
