package tree

import (
	"fmt"
	"time"

	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
)

// EventContext is handed to a widget's OnEvent method. The widget holds an
// implicit mutation scope on itself for the duration of the handler and may
// change its own fields directly, requesting invalidation for whatever it
// changed.
type EventContext struct {
	tree      *Tree
	id        WidgetID
	wantFocus bool
	wantBlur  bool
}

// Dispatch routes one input event through the tree and reports whether any
// widget consumed it. Pointer events follow the hit-test chain, or the
// capture chain while a widget holds the pointer. Key and text events
// follow the focus chain. After routing, queued actions are drained to the
// delegate.
func (t *Tree) Dispatch(event input.Event) bool {
	if !t.dispatchable("tree.Dispatch") {
		return false
	}
	consumed := false
	switch ev := event.(type) {
	case input.PointerEvent:
		consumed = t.dispatchPointer(ev)
	case input.KeyEvent:
		consumed = t.dispatchFocused(event)
	case input.TextEvent:
		consumed = t.dispatchFocused(event)
	default:
		// Hover, focus, and animation frame events are synthesized by
		// the tree itself; injected copies are dropped.
	}
	t.drainActions()
	return consumed
}

func (t *Tree) dispatchPointer(ev input.PointerEvent) bool {
	var chain []WidgetID
	if t.capture != 0 {
		chain = append(chain, t.capture)
		ancestors, _ := t.Ancestors(t.capture)
		chain = append(chain, ancestors...)
	} else {
		chain = t.HitTest(ev.Position)
		if ev.Phase == input.PointerPhaseMove {
			var target WidgetID
			if len(chain) > 0 {
				target = chain[0]
			}
			t.updateHover(target, ev.Position)
		}
	}

	consumed := false
	for _, id := range chain {
		if _, ok := t.nodes[id]; !ok {
			continue
		}
		local := ev
		local.Position = ev.Position.Sub(t.globalOrigin(id))
		if t.deliver(id, local) {
			consumed = true
			if ev.Phase == input.PointerPhaseDown {
				t.capture = id
			}
			break
		}
	}

	if ev.Phase == input.PointerPhaseUp || ev.Phase == input.PointerPhaseCancel {
		t.capture = 0
	}
	return consumed
}

// dispatchFocused bubbles an event from the focused widget to the root.
// Without a focused widget the event is dropped.
func (t *Tree) dispatchFocused(event input.Event) bool {
	if t.focus == 0 {
		return false
	}
	chain := []WidgetID{t.focus}
	ancestors, _ := t.Ancestors(t.focus)
	chain = append(chain, ancestors...)
	for _, id := range chain {
		if _, ok := t.nodes[id]; !ok {
			continue
		}
		if t.deliver(id, event) {
			return true
		}
	}
	return false
}

// updateHover retargets hover to the deepest widget under the pointer,
// synthesizing leave and enter events on a change.
func (t *Tree) updateHover(target WidgetID, position graphics.Offset) {
	if target == t.hover {
		return
	}
	old := t.hover
	t.hover = target
	if old != 0 {
		if n, ok := t.nodes[old]; ok {
			n.hovered = false
			t.deliver(old, input.HoverEvent{Entered: false, Position: position.Sub(t.globalOrigin(old))})
		}
	}
	if target != 0 {
		t.mustNode(target).hovered = true
		t.deliver(target, input.HoverEvent{Entered: true, Position: position.Sub(t.globalOrigin(target))})
	}
}

// dispatchable checks that no mutation scope is open before an event
// enters the tree. A handler's implicit scope skips the conflict rules, so
// routing inside an open scope would hand out overlapping write access.
// Fatal in debug mode, reported and dropped in release.
func (t *Tree) dispatchable(op string) bool {
	if len(t.held) == 0 {
		return true
	}
	je := &errors.JoistError{
		Op:   op,
		Kind: errors.KindDispatch,
		Err:  fmt.Errorf("event injected while widget %d holds a mutation scope", t.held[len(t.held)-1]),
	}
	if errors.DebugMode {
		panic(je)
	}
	je.StackTrace = errors.CaptureStack()
	errors.Report(je)
	return false
}

// deliver runs one widget's event handler under an implicit mutation scope
// and applies any focus request the handler made once the scope is
// released.
func (t *Tree) deliver(id WidgetID, event input.Event) bool {
	n := t.mustNode(id)
	ctx := &EventContext{tree: t, id: id}
	t.held = append(t.held, id)
	consumed := func() bool {
		defer func() { t.held = t.held[:len(t.held)-1] }()
		return n.widget.OnEvent(ctx, event)
	}()
	if ctx.wantFocus {
		t.SetFocus(id)
	} else if ctx.wantBlur && t.focus == id {
		t.ClearFocus()
	}
	return consumed
}

// requestAnimFrame schedules a widget for the next animation frame
// delivery. Requests are deduplicated and kept in arrival order.
func (t *Tree) requestAnimFrame(id WidgetID) {
	if _, ok := t.nodes[id]; !ok {
		return
	}
	if _, ok := t.animSet[id]; ok {
		return
	}
	t.animSet[id] = struct{}{}
	t.animRequests = append(t.animRequests, id)
}

// DeliverAnimFrames sends an animation frame carrying the elapsed time to
// every widget that requested one, in request order, then drains actions.
// Requests made during delivery are kept for the next call.
func (t *Tree) DeliverAnimFrames(elapsed time.Duration) {
	if !t.dispatchable("tree.DeliverAnimFrames") {
		return
	}
	pending := t.animRequests
	t.animRequests = nil
	t.animSet = make(map[WidgetID]struct{})
	for _, id := range pending {
		if _, ok := t.nodes[id]; !ok {
			continue
		}
		t.deliver(id, input.AnimFrameEvent{Elapsed: elapsed})
	}
	t.drainActions()
}

// HasAnimFrameRequests reports whether any widget is waiting on an
// animation frame.
func (t *Tree) HasAnimFrameRequests() bool {
	return len(t.animRequests) > 0
}

// ID returns the id of the widget handling the event.
func (ctx *EventContext) ID() WidgetID { return ctx.id }

// Env returns the tree's environment.
func (ctx *EventContext) Env() *env.Env { return ctx.tree.env }

// Size returns the widget's laid-out size.
func (ctx *EventContext) Size() graphics.Size {
	return ctx.tree.mustNode(ctx.id).size
}

// IsHovered reports whether the pointer is over this widget.
func (ctx *EventContext) IsHovered() bool {
	return ctx.tree.hover == ctx.id
}

// HasFocus reports whether this widget holds keyboard focus.
func (ctx *EventContext) HasFocus() bool {
	return ctx.tree.focus == ctx.id
}

// HasCapture reports whether this widget holds the pointer grab.
func (ctx *EventContext) HasCapture() bool {
	return ctx.tree.capture == ctx.id
}

// RequestLayout invalidates the widget's layout, which also invalidates
// its paint.
func (ctx *EventContext) RequestLayout() {
	ctx.tree.markDirty(ctx.id, DirtyLayout)
}

// RequestPaint invalidates the widget's paint only.
func (ctx *EventContext) RequestPaint() {
	ctx.tree.markDirty(ctx.id, DirtyPaint)
}

// RequestSemantics invalidates the widget's semantics description.
func (ctx *EventContext) RequestSemantics() {
	ctx.tree.markDirty(ctx.id, DirtySemantics)
}

// RequestFocus asks for keyboard focus. The transfer happens after the
// current handler returns, so the focus notifications never overlap the
// handler's own scope.
func (ctx *EventContext) RequestFocus() {
	ctx.wantFocus = true
	ctx.wantBlur = false
}

// ReleaseFocus gives up keyboard focus if this widget holds it, applied
// after the current handler returns.
func (ctx *EventContext) ReleaseFocus() {
	ctx.wantBlur = true
}

// RequestAnimFrame schedules this widget for the next animation frame.
func (ctx *EventContext) RequestAnimFrame() {
	ctx.tree.requestAnimFrame(ctx.id)
}

// SubmitAction queues an application action attributed to this widget.
func (ctx *EventContext) SubmitAction(action Action) {
	ctx.tree.SubmitAction(action, ctx.id)
}
