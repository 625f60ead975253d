// Package flexbox is a retained-mode flexbox layout engine.
//
// Users import this single package for the complete public API:
// node construction, style values, tree management with batched
// recomputation, and the participant protocol for attaching
// measurable content.
//
// A minimal session builds a tree, mutates it freely, and flushes:
//
//	t := flexbox.NewTree(800, 600)
//	root, _ := t.CreateNode("root", flexbox.WithDirection(flexbox.Row), flexbox.WithGap(10))
//	_ = t.SetRoot(root)
//	child, _ := t.CreateNode("child", flexbox.WithFlexGrow(1))
//	_ = t.AddChild(root, child)
//	_ = t.Flush()
//	box := child.Computed().Rect
//
// Any number of mutations between flushes cost one recomputation per
// affected subtree.
package flexbox
