package widgets

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-joist/joist/pkg/anim"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
	"github.com/go-joist/joist/pkg/tree"
)

// Fade wraps its children in an opacity layer and animates the opacity
// between targets. Start an animation with FadeTo inside a mutation scope
// and request an animation frame on the same scope; the fade then re-arms
// itself every frame until the target is reached and emits FadeFinished.
type Fade struct {
	tree.ContainerBase

	controller *anim.Controller
	easing     ease.TweenFunc
}

// NewFade creates a fully opaque fade container.
func NewFade() *Fade {
	return &Fade{
		controller: anim.NewController(1),
		easing:     ease.Linear,
	}
}

// WithEase sets the easing function for subsequent animations and returns
// the container.
func (f *Fade) WithEase(fn ease.TweenFunc) *Fade {
	f.easing = fn
	return f
}

// Opacity returns the current opacity in [0, 1].
func (f *Fade) Opacity() float64 {
	return clampUnit(f.controller.Value())
}

// SetOpacity jumps to an opacity without animating. Call through a
// mutation scope.
func (f *Fade) SetOpacity(value float64) {
	f.controller.Start(clampUnit(value), 0, f.easing)
}

// FadeTo starts animating toward the target opacity. Call through a
// mutation scope and request an animation frame on it:
//
//	tr.Mutate(id, func(m *tree.Mutation) error {
//		fade, err := tree.WidgetAs[*widgets.Fade](m)
//		if err != nil {
//			return err
//		}
//		fade.FadeTo(0, 200*time.Millisecond)
//		m.OnlyPaint()
//		m.RequestAnimFrame()
//		return nil
//	})
func (f *Fade) FadeTo(target float64, duration time.Duration) {
	f.controller.Start(clampUnit(target), duration, f.easing)
}

// Animating returns true while an opacity animation is in flight.
func (f *Fade) Animating() bool {
	return !f.controller.Done()
}

func (f *Fade) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	loose := c.Loosen()
	var content graphics.Size
	for _, child := range f.Children() {
		size := ctx.LayoutChild(child, loose)
		ctx.PlaceChild(child, graphics.Offset{})
		if size.Width > content.Width {
			content.Width = size.Width
		}
		if size.Height > content.Height {
			content.Height = size.Height
		}
	}
	return c.Constrain(content)
}

func (f *Fade) Paint(ctx *tree.PaintContext) {
	opacity := f.Opacity()
	if opacity <= 0 {
		return
	}
	if opacity >= 1 {
		for _, child := range f.Children() {
			ctx.PaintChild(child)
		}
		return
	}
	canvas := ctx.Canvas()
	canvas.SaveLayerAlpha(ctx.Bounds(), opacity)
	for _, child := range f.Children() {
		ctx.PaintChild(child)
	}
	canvas.Restore()
}

func (f *Fade) OnEvent(ctx *tree.EventContext, event input.Event) bool {
	frame, ok := event.(input.AnimFrameEvent)
	if !ok {
		return false
	}
	value, finished := f.controller.Tick(frame.Elapsed)
	ctx.RequestPaint()
	if finished {
		ctx.SubmitAction(FadeFinished{Opacity: clampUnit(value)})
	} else {
		ctx.RequestAnimFrame()
	}
	return true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
