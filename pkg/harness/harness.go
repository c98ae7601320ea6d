package harness

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-joist/joist/pkg/anim"
	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
	"github.com/go-joist/joist/pkg/tree"
)

const (
	// DefaultWidth is the default logical width of the harness window.
	DefaultWidth = 800
	// DefaultHeight is the default logical height of the harness window.
	DefaultHeight = 600

	// FrameDuration is the synthetic frame interval used by AdvanceTime.
	FrameDuration = 16 * time.Millisecond
)

// WidgetNotFoundError is returned when an input helper targets a widget
// that is not in the tree.
type WidgetNotFoundError struct {
	ID  tree.WidgetID
	Err error
}

func (e *WidgetNotFoundError) Error() string {
	return fmt.Sprintf("harness: widget %d not found: %v", e.ID, e.Err)
}

func (e *WidgetNotFoundError) Unwrap() error { return e.Err }

// Harness owns a widget tree, a fake clock, and a synthetic mouse, and
// drives the layout and paint passes the way a windowing loop would. It is
// single-threaded like the tree it drives.
type Harness struct {
	tree      *tree.Tree
	clock     *anim.FakeClock
	prevClock anim.Clock
	window    graphics.Size
	theme     *env.Env
	mouse     graphics.Offset
	pointer   int64
	cleaned   bool
}

// Option configures a harness before its tree is built.
type Option func(*Harness)

// WithWindowSize sets the logical window size.
func WithWindowSize(size graphics.Size) Option {
	return func(h *Harness) { h.window = size }
}

// WithEnv replaces the default environment the tree is built with.
func WithEnv(e *env.Env) Option {
	return func(h *Harness) { h.theme = e }
}

// New creates a harness rooted at the given widget. It installs a fake
// animation clock; call Cleanup when done, or use NewWithT instead.
func New(root tree.Widget, opts ...Option) *Harness {
	h := &Harness{
		clock:  anim.NewFakeClock(),
		window: graphics.Size{Width: DefaultWidth, Height: DefaultHeight},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.theme != nil {
		h.tree = tree.NewWithEnv(root, h.theme)
	} else {
		h.tree = tree.New(root)
	}
	h.prevClock = anim.SetClock(h.clock)
	return h
}

// NewWithT creates a harness that restores global state via t.Cleanup.
// This is the recommended constructor for tests.
func NewWithT(t *testing.T, root tree.Widget, opts ...Option) *Harness {
	t.Helper()
	h := New(root, opts...)
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the animation clock. Safe to call more than once.
func (h *Harness) Cleanup() {
	if h.cleaned {
		return
	}
	h.cleaned = true
	anim.SetClock(h.prevClock)
}

// Tree returns the tree under test for direct structural calls.
func (h *Harness) Tree() *tree.Tree { return h.tree }

// Clock returns the fake clock driving animation time.
func (h *Harness) Clock() *anim.FakeClock { return h.clock }

// Window returns the logical window size.
func (h *Harness) Window() graphics.Size { return h.window }

// SetWindowSize resizes the window. The next pump lays the tree out
// against the new size.
func (h *Harness) SetWindowSize(size graphics.Size) {
	h.window = size
}

// Pump runs the layout, paint, and semantics passes and returns the
// scene. Pumping a clean tree is cheap; every pass skips or returns
// cached results.
func (h *Harness) Pump() *graphics.DisplayList {
	h.tree.FlushLayout(h.window)
	scene := h.tree.FlushPaint()
	h.tree.FlushSemantics()
	return scene
}

// Scene pumps to quiescence and returns the current scene.
func (h *Harness) Scene() *graphics.DisplayList {
	return h.Pump()
}

// AdvanceTime moves the fake clock forward by d in frame-sized steps,
// delivering animation frames and pumping after each step. Widgets that
// re-arm keep receiving frames until d is exhausted or they stop.
func (h *Harness) AdvanceTime(d time.Duration) {
	for d > 0 {
		step := FrameDuration
		if d < step {
			step = d
		}
		h.clock.Advance(step)
		if h.tree.HasAnimFrameRequests() {
			h.tree.DeliverAnimFrames(step)
		}
		h.Pump()
		d -= step
	}
}

// EditRootWidget opens a mutation scope on the root widget.
func (h *Harness) EditRootWidget(fn func(m *tree.Mutation) error) error {
	return h.tree.Mutate(h.tree.Root(), fn)
}

// EditWidget opens a mutation scope on the given widget.
func (h *Harness) EditWidget(id tree.WidgetID, fn func(m *tree.Mutation) error) error {
	return h.tree.Mutate(id, fn)
}

// MouseMoveTo moves the synthetic mouse to the given window position,
// dispatching a pointer move with the travelled delta.
func (h *Harness) MouseMoveTo(p graphics.Offset) {
	h.Pump()
	delta := p.Sub(h.mouse)
	h.mouse = p
	h.tree.Dispatch(input.PointerEvent{
		PointerID: h.pointer,
		Phase:     input.PointerPhaseMove,
		Position:  p,
		Delta:     delta,
	})
}

// MouseDown presses the primary button at the current mouse position.
func (h *Harness) MouseDown() {
	h.Pump()
	h.tree.Dispatch(input.PointerEvent{
		PointerID: h.pointer,
		Phase:     input.PointerPhaseDown,
		Position:  h.mouse,
		Button:    input.ButtonPrimary,
	})
}

// MouseUp releases the primary button at the current mouse position.
func (h *Harness) MouseUp() {
	h.tree.Dispatch(input.PointerEvent{
		PointerID: h.pointer,
		Phase:     input.PointerPhaseUp,
		Position:  h.mouse,
		Button:    input.ButtonPrimary,
	})
}

// MouseClickOn moves to the center of the widget and clicks it. Returns a
// WidgetNotFoundError if the widget is not in the tree.
func (h *Harness) MouseClickOn(id tree.WidgetID) error {
	h.Pump()
	ref, err := h.tree.Node(id)
	if err != nil {
		return &WidgetNotFoundError{ID: id, Err: err}
	}
	origin := ref.GlobalOrigin()
	size := ref.Size()
	center := graphics.Offset{
		X: origin.X + size.Width/2,
		Y: origin.Y + size.Height/2,
	}
	h.MouseMoveTo(center)
	h.MouseDown()
	h.MouseUp()
	return nil
}

// KeyDown dispatches a key press to the focused widget.
func (h *Harness) KeyDown(key input.Key) {
	h.tree.Dispatch(input.KeyEvent{Phase: input.KeyPhaseDown, Key: key})
}

// KeyUp dispatches a key release to the focused widget.
func (h *Harness) KeyUp(key input.Key) {
	h.tree.Dispatch(input.KeyEvent{Phase: input.KeyPhaseUp, Key: key})
}

// PressKey dispatches a full press and release.
func (h *Harness) PressKey(key input.Key) {
	h.KeyDown(key)
	h.KeyUp(key)
}

// TypeText dispatches committed text to the focused widget.
func (h *Harness) TypeText(s string) {
	h.tree.Dispatch(input.TextEvent{Text: s})
}

// PopAction removes and returns the oldest queued action.
func (h *Harness) PopAction() (tree.Action, tree.WidgetID, bool) {
	return h.tree.PopAction()
}
