package tree

import (
	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
)

// PaintContext is handed to a widget's Paint method. Drawing goes through
// Canvas in the widget's local coordinate space, with the origin at the
// widget's top-left corner.
type PaintContext struct {
	tree   *Tree
	id     WidgetID
	canvas graphics.Canvas
}

// FlushPaint re-records the scene if anything is paint-dirty and returns
// the display list for the whole tree. With no dirt the previous scene is
// returned unchanged, so painting twice yields identical command lists.
func (t *Tree) FlushPaint() *graphics.DisplayList {
	root := t.mustNode(t.root)
	if len(t.held) > 0 || !root.hasLayout {
		var cause error = errMissingLayout
		if len(t.held) > 0 {
			cause = &BorrowConflictError{Held: t.held[len(t.held)-1], Requested: t.root}
		}
		t.paintFailure(&errors.JoistError{Op: "tree.FlushPaint", Kind: errors.KindPaint, Err: cause})
		if t.scene != nil {
			return t.scene
		}
		return &graphics.DisplayList{}
	}

	if t.scene != nil && !root.dirty.Has(DirtyPaint) {
		return t.scene
	}

	var rec graphics.Recorder
	canvas := rec.Begin(root.size)
	canvas.Clear(t.env.Color(env.WindowBackground))
	t.paintNode(t.root, canvas)
	t.Walk(func(ref NodeRef, depth int) {
		t.mustNode(ref.ID()).dirty &^= DirtyPaint
	})
	t.scene = rec.End()
	return t.scene
}

// paintNode runs one widget's Paint with a context bound to the shared
// canvas. The caller has already translated into the node's coordinate
// space.
func (t *Tree) paintNode(id WidgetID, canvas graphics.Canvas) {
	n := t.mustNode(id)
	ctx := &PaintContext{tree: t, id: id, canvas: canvas}
	n.widget.Paint(ctx)
}

// paintFailure handles a widget breaking the paint protocol: fatal in
// debug mode, reported and skipped in release.
func (t *Tree) paintFailure(je *errors.JoistError) {
	if errors.DebugMode {
		panic(je)
	}
	je.StackTrace = errors.CaptureStack()
	errors.Report(je)
}

// ID returns the id of the widget being painted.
func (ctx *PaintContext) ID() WidgetID { return ctx.id }

// Canvas returns the recording surface, positioned at the widget's local
// origin.
func (ctx *PaintContext) Canvas() graphics.Canvas { return ctx.canvas }

// Size returns the widget's laid-out size.
func (ctx *PaintContext) Size() graphics.Size {
	return ctx.tree.mustNode(ctx.id).size
}

// Bounds returns the widget's local bounds, origin at zero.
func (ctx *PaintContext) Bounds() graphics.Rect {
	return ctx.Size().Rect(graphics.Offset{})
}

// Env returns the tree's environment.
func (ctx *PaintContext) Env() *env.Env { return ctx.tree.env }

// IsHovered reports whether the pointer is currently over this widget.
func (ctx *PaintContext) IsHovered() bool {
	return ctx.tree.hover == ctx.id
}

// HasFocus reports whether this widget holds keyboard focus.
func (ctx *PaintContext) HasFocus() bool {
	return ctx.tree.focus == ctx.id
}

// PaintChild paints a declared child inside a save/translate block at the
// position layout assigned it.
func (ctx *PaintContext) PaintChild(child WidgetID) {
	n, ok := ctx.tree.nodes[child]
	if !ok || n.parent != ctx.id {
		ctx.tree.paintFailure(&errors.JoistError{
			Op:   "tree.PaintChild",
			Kind: errors.KindPaint,
			Err:  &NotAChildError{ID: child, Parent: ctx.id},
		})
		return
	}
	ctx.canvas.Save()
	ctx.canvas.Translate(n.origin.X, n.origin.Y)
	ctx.tree.paintNode(child, ctx.canvas)
	ctx.canvas.Restore()
}
