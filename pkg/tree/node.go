package tree

import (
	"strings"

	"github.com/go-joist/joist/pkg/graphics"
)

// Dirty is a bit set of invalidation flags on a node.
type Dirty uint8

const (
	// DirtyLayout marks the node's size and child positions stale.
	DirtyLayout Dirty = 1 << iota
	// DirtyPaint marks the node's paint output stale.
	DirtyPaint
	// DirtySemantics marks the node's accessibility description stale.
	DirtySemantics
)

// Has returns true if all the given bits are set.
func (d Dirty) Has(bits Dirty) bool {
	return d&bits == bits
}

// String returns the set bits as "layout|paint|semantics", or "clean".
func (d Dirty) String() string {
	if d == 0 {
		return "clean"
	}
	var parts []string
	if d.Has(DirtyLayout) {
		parts = append(parts, "layout")
	}
	if d.Has(DirtyPaint) {
		parts = append(parts, "paint")
	}
	if d.Has(DirtySemantics) {
		parts = append(parts, "semantics")
	}
	return strings.Join(parts, "|")
}

// node is the tree-managed state for one widget. The tree's id-indexed map
// exclusively owns nodes; the parent link is a back-reference only.
type node struct {
	id       WidgetID
	widget   Widget
	parent   WidgetID
	children []WidgetID

	// Geometry from the last layout. origin is parent-local; global
	// positions are always derived, never stored.
	origin      graphics.Offset
	size        graphics.Size
	constraints graphics.Constraints
	hasLayout   bool
	placed      bool

	dirty   Dirty
	hovered bool
}

// NodeRef is a read-only view of one live node.
type NodeRef struct {
	tree *Tree
	id   WidgetID
}

// ID returns the node's id.
func (r NodeRef) ID() WidgetID { return r.id }

// Widget returns the widget value. Callers must not mutate it; mutation
// goes through the gateway.
func (r NodeRef) Widget() Widget {
	return r.tree.nodes[r.id].widget
}

// Parent returns the parent id, or zero for the root.
func (r NodeRef) Parent() WidgetID {
	return r.tree.nodes[r.id].parent
}

// Children returns a copy of the node's child ids in order.
func (r NodeRef) Children() []WidgetID {
	n := r.tree.nodes[r.id]
	out := make([]WidgetID, len(n.children))
	copy(out, n.children)
	return out
}

// Origin returns the node's parent-local position from the last layout.
func (r NodeRef) Origin() graphics.Offset {
	return r.tree.nodes[r.id].origin
}

// Size returns the node's size from the last layout.
func (r NodeRef) Size() graphics.Size {
	return r.tree.nodes[r.id].size
}

// GlobalOrigin returns the node's position in root coordinates, derived by
// walking the parent chain.
func (r NodeRef) GlobalOrigin() graphics.Offset {
	return r.tree.globalOrigin(r.id)
}

// Bounds returns the node's rectangle in root coordinates.
func (r NodeRef) Bounds() graphics.Rect {
	n := r.tree.nodes[r.id]
	return n.size.Rect(r.tree.globalOrigin(r.id))
}

// Dirty returns the node's current invalidation bits.
func (r NodeRef) Dirty() Dirty {
	return r.tree.nodes[r.id].dirty
}

// Hovered returns true if the pointer is currently over this node.
func (r NodeRef) Hovered() bool {
	return r.tree.nodes[r.id].hovered
}
