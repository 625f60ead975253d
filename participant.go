package flexbox

// Participant is an external object (a widget, a text run, a render
// surface) attached to a node. The tree pulls content measurement from
// it and pushes computed geometry back to it after every flush.
type Participant interface {
	// MeasureContent reports the natural content size in pixels. It is
	// called during layout whenever the node is auto-sized.
	MeasureContent() Size

	// ApplyLayout delivers the node's computed geometry after a flush.
	ApplyLayout(Layout)

	// SyncStyle lets the participant push style changes onto the node
	// before a recomputation. Called from Tree.SyncStyles.
	SyncStyle(*Style)
}

// Bind attaches a participant to a registered node. The participant
// becomes the node's measure source, replacing any fixed intrinsic
// size, and will receive ApplyLayout after every flush. Binding marks
// the node dirty since its measured content may change.
func (t *Tree) Bind(n *Node, p Participant) error {
	if err := t.owned(n); err != nil {
		return err
	}
	n.ClearIntrinsicSize()
	if err := n.SetMeasureFunc(p.MeasureContent); err != nil {
		return err
	}
	t.bindings[n] = p
	t.MarkDirty(n, DirtySize)
	return nil
}

// Unbind detaches the participant from a node and clears its measure
// source. It is a no-op for unbound nodes.
func (t *Tree) Unbind(n *Node) {
	if _, ok := t.bindings[n]; !ok {
		return
	}
	delete(t.bindings, n)
	if t.owned(n) == nil {
		_ = n.SetMeasureFunc(nil)
		t.MarkDirty(n, DirtySize)
	}
}

// Participant returns the participant bound to n, or nil.
func (t *Tree) Participant(n *Node) Participant {
	return t.bindings[n]
}

// SyncStyles gives every bound participant a chance to mutate its
// node's style, marking nodes whose participants were consulted dirty.
// Call it before a flush when participants own styling state.
func (t *Tree) SyncStyles() {
	for n, p := range t.bindings {
		p.SyncStyle(&n.Style)
		t.MarkDirty(n, DirtyStyle)
	}
}
