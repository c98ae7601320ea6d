package tree

import (
	"github.com/go-joist/joist/pkg/graphics"
)

// HitTest returns the chain of widgets under a point in root coordinates,
// deepest hit first and the root last. Children are probed in reverse
// structural order so the widget painted last wins overlaps. An empty
// chain means the point misses the tree entirely.
func (t *Tree) HitTest(point graphics.Offset) []WidgetID {
	root := t.mustNode(t.root)
	if !root.hasLayout {
		return nil
	}
	return t.hitNode(t.root, point)
}

func (t *Tree) hitNode(id WidgetID, local graphics.Offset) []WidgetID {
	n := t.mustNode(id)
	if !n.size.Contains(local) {
		return nil
	}
	if blocker, ok := n.widget.(HitBlocker); ok && blocker.BlocksHitTest() {
		return []WidgetID{id}
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		cn := t.mustNode(child)
		if chain := t.hitNode(child, local.Sub(cn.origin)); chain != nil {
			return append(chain, id)
		}
	}
	return []WidgetID{id}
}

// HitTarget returns the deepest widget under a point, or zero when the
// point misses the tree.
func (t *Tree) HitTarget(point graphics.Offset) WidgetID {
	chain := t.HitTest(point)
	if len(chain) == 0 {
		return 0
	}
	return chain[0]
}
