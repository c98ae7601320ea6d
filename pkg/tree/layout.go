package tree

import (
	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
)

// LayoutContext is handed to a widget's Layout method. It is the widget's
// only way to size and position its children; the tree records the results
// and checks that every child laid out this pass is also placed.
type LayoutContext struct {
	tree    *Tree
	id      WidgetID
	laidOut []WidgetID
}

// FlushLayout runs the layout pass with the window size as a tight root
// constraint. Subtrees whose nodes are all clean and whose incoming
// constraints are unchanged are skipped wholesale; afterwards every node
// holds a fresh size and origin and no layout dirt remains.
func (t *Tree) FlushLayout(window graphics.Size) {
	if len(t.held) > 0 {
		t.layoutFailure(&errors.JoistError{
			Op:   "tree.FlushLayout",
			Kind: errors.KindIntegrity,
			Err:  &BorrowConflictError{Held: t.held[len(t.held)-1], Requested: t.root},
		})
		return
	}

	c := graphics.Tight(window)
	root := t.mustNode(t.root)
	if root.hasLayout && !root.dirty.Has(DirtyLayout) && root.constraints == c {
		return
	}

	t.lastWindow = window
	t.layoutNode(t.root, c)
	root.origin = graphics.Offset{}
	root.placed = true
	// A relayout can move any node, so the recorded scene is stale even
	// when no widget was edited.
	root.dirty |= DirtyPaint

	// A node still carrying layout dirt was skipped by its parent, which
	// means a widget did not lay out a child it declares.
	t.Walk(func(ref NodeRef, depth int) {
		n := t.mustNode(ref.ID())
		if n.dirty.Has(DirtyLayout) {
			t.layoutFailure(&errors.JoistError{
				Op:   "tree.FlushLayout",
				Kind: errors.KindLayout,
				Err:  &UnplacedChildError{ID: n.id, Parent: n.parent},
			})
			n.dirty &^= DirtyLayout
		}
	})
	t.checkIntegrity("tree.FlushLayout")
}

// layoutNode lays out one node against incoming constraints and returns the
// size the tree recorded for it.
func (t *Tree) layoutNode(id WidgetID, c graphics.Constraints) graphics.Size {
	n := t.mustNode(id)
	if n.hasLayout && !n.dirty.Has(DirtyLayout) && n.constraints == c {
		return n.size
	}

	ctx := &LayoutContext{tree: t, id: id}
	for _, child := range n.children {
		t.mustNode(child).placed = false
	}
	size := n.widget.Layout(ctx, c)
	if !c.IsSatisfiedBy(size) {
		t.layoutFailure(&errors.JoistError{
			Op:   "tree.layoutNode",
			Kind: errors.KindLayout,
			Err:  &ConstraintViolationError{ID: id, Constraints: c, Size: size},
		})
		size = c.Constrain(size)
	}
	for _, child := range ctx.laidOut {
		if !t.mustNode(child).placed {
			t.layoutFailure(&errors.JoistError{
				Op:   "tree.layoutNode",
				Kind: errors.KindLayout,
				Err:  &UnplacedChildError{ID: child, Parent: id},
			})
			t.mustNode(child).placed = true
		}
	}

	n.size = size
	n.constraints = c
	n.hasLayout = true
	n.dirty &^= DirtyLayout
	return size
}

// layoutFailure handles a widget breaking the layout protocol: fatal in
// debug mode, reported and papered over in release.
func (t *Tree) layoutFailure(je *errors.JoistError) {
	if errors.DebugMode {
		panic(je)
	}
	je.StackTrace = errors.CaptureStack()
	errors.Report(je)
}

// ID returns the id of the widget being laid out.
func (ctx *LayoutContext) ID() WidgetID { return ctx.id }

// Env returns the tree's environment.
func (ctx *LayoutContext) Env() *env.Env { return ctx.tree.env }

// LayoutChild lays out a declared child against the given constraints and
// returns the size it took. The caller must position the child with
// PlaceChild before its own Layout returns.
func (ctx *LayoutContext) LayoutChild(child WidgetID, c graphics.Constraints) graphics.Size {
	n, ok := ctx.tree.nodes[child]
	if !ok || n.parent != ctx.id {
		ctx.tree.layoutFailure(&errors.JoistError{
			Op:   "tree.LayoutChild",
			Kind: errors.KindLayout,
			Err:  &NotAChildError{ID: child, Parent: ctx.id},
		})
		return graphics.Size{}
	}
	ctx.laidOut = append(ctx.laidOut, child)
	return ctx.tree.layoutNode(child, c)
}

// PlaceChild positions a child at origin, in the parent's coordinate
// space.
func (ctx *LayoutContext) PlaceChild(child WidgetID, origin graphics.Offset) {
	n, ok := ctx.tree.nodes[child]
	if !ok || n.parent != ctx.id {
		ctx.tree.layoutFailure(&errors.JoistError{
			Op:   "tree.PlaceChild",
			Kind: errors.KindLayout,
			Err:  &NotAChildError{ID: child, Parent: ctx.id},
		})
		return
	}
	n.origin = origin
	n.placed = true
}

// ChildSize returns the size recorded for a child by an earlier
// LayoutChild call this pass.
func (ctx *LayoutContext) ChildSize(child WidgetID) graphics.Size {
	n, ok := ctx.tree.nodes[child]
	if !ok || n.parent != ctx.id {
		return graphics.Size{}
	}
	return n.size
}
