package tree

import (
	"github.com/go-joist/joist/pkg/graphics"
)

// Semantics describes a widget to assistive consumers. Widgets opt in by
// implementing Describer; widgets that do not are generic grouping nodes.
type Semantics struct {
	Role  string
	Label string
	Value string
}

// SemanticsNode is one node of the accessibility snapshot, mirroring the
// widget hierarchy with global bounds attached.
type SemanticsNode struct {
	ID       WidgetID
	Role     string
	Label    string
	Value    string
	Bounds   graphics.Rect
	Children []*SemanticsNode
}

// FlushSemantics rebuilds the semantics tree if anything is
// semantics-dirty and returns it. With no dirt the previous snapshot is
// returned unchanged.
func (t *Tree) FlushSemantics() *SemanticsNode {
	root := t.mustNode(t.root)
	if t.semantics != nil && !root.dirty.Has(DirtySemantics) {
		return t.semantics
	}
	t.semantics = t.describeNode(t.root)
	t.Walk(func(ref NodeRef, depth int) {
		t.mustNode(ref.ID()).dirty &^= DirtySemantics
	})
	return t.semantics
}

func (t *Tree) describeNode(id WidgetID) *SemanticsNode {
	n := t.mustNode(id)
	sn := &SemanticsNode{
		ID:     id,
		Bounds: n.size.Rect(t.globalOrigin(id)),
	}
	if d, ok := n.widget.(Describer); ok {
		s := d.Describe()
		sn.Role = s.Role
		sn.Label = s.Label
		sn.Value = s.Value
	}
	for _, c := range n.children {
		sn.Children = append(sn.Children, t.describeNode(c))
	}
	return sn
}
