package tree

import (
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
)

// Widget is the capability contract every tree node satisfies. A widget
// computes its own size under parent-given constraints, paints itself and
// its children in an order of its choosing, handles routed events, and
// declares its structural children. The tree's bookkeeping, not the
// widget's storage, is the source of truth for parent/child links;
// divergence between the two is a logic error surfaced at the next pass
// boundary.
type Widget interface {
	// Layout computes the widget's size under the given constraints. A
	// container lays out each child through ctx.LayoutChild and positions
	// it with ctx.PlaceChild once sizes are known. The returned size must
	// satisfy the constraints.
	Layout(ctx *LayoutContext, constraints graphics.Constraints) graphics.Size

	// Paint emits drawing commands for the widget in its own coordinate
	// space. Children are painted via ctx.PaintChild; whether the widget
	// paints before or after them is its own decision.
	Paint(ctx *PaintContext)

	// OnEvent receives a routed event and reports whether it consumed it.
	// An unconsumed event continues to bubble toward the root. The widget
	// has exclusive access to its own state for the duration of the call.
	OnEvent(ctx *EventContext, event input.Event) bool

	// Children returns the widget's structural children in order. Leaves
	// return nil.
	Children() []WidgetID
}

// childHost is satisfied by widgets that can adopt children. Embedding
// ContainerBase provides it; the tree refuses insertion under widgets
// that lack it.
type childHost interface {
	adoptChild(id WidgetID)
	orphanChild(id WidgetID)
}

// ContainerBase carries the child id bookkeeping for container widgets.
// Embed it by value and the tree keeps it in sync as children are inserted
// and removed.
type ContainerBase struct {
	childIDs []WidgetID
}

// Children returns the adopted child ids in insertion order.
func (b *ContainerBase) Children() []WidgetID {
	return b.childIDs
}

func (b *ContainerBase) adoptChild(id WidgetID) {
	b.childIDs = append(b.childIDs, id)
}

func (b *ContainerBase) orphanChild(id WidgetID) {
	for i, c := range b.childIDs {
		if c == id {
			b.childIDs = append(b.childIDs[:i], b.childIDs[i+1:]...)
			return
		}
	}
}

// OnEvent ignores all events. Containers that interact override it.
func (b *ContainerBase) OnEvent(ctx *EventContext, event input.Event) bool {
	return false
}

// LeafBase provides the no-child defaults for leaf widgets.
type LeafBase struct{}

// Children returns nil; leaves have no children.
func (LeafBase) Children() []WidgetID { return nil }

// OnEvent ignores all events. Leaves that interact override it.
func (LeafBase) OnEvent(ctx *EventContext, event input.Event) bool {
	return false
}

// HitBlocker marks a widget opaque to hit-test descent: when the walk
// reaches it, the widget itself becomes the target and its children are
// never considered.
type HitBlocker interface {
	BlocksHitTest() bool
}

// Describer contributes a node to the semantics pass.
type Describer interface {
	Describe() Semantics
}
