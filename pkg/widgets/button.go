package widgets

import (
	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
	"github.com/go-joist/joist/pkg/tree"
)

// Button is a pressable control with a text label and theme-driven
// styling. A complete press, down followed by a release inside the
// button's bounds, emits ButtonPressed on the tree's action queue. The
// pointer grab the tree gives the consumer of a down event means a drag
// off the button followed by a release elsewhere cancels the press.
type Button struct {
	tree.LeafBase

	label    string
	disabled bool
	pressed  bool
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// WithDisabled sets the disabled state and returns the button.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the current label text.
func (b *Button) Label() string { return b.label }

// SetLabel changes the label. Call through a mutation scope; the default
// conservative invalidation covers the size change.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Disabled returns whether the button ignores input.
func (b *Button) Disabled() bool { return b.disabled }

// SetDisabled changes the disabled state. Call through a mutation scope.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.pressed = false
	}
}

func (b *Button) textStyle(e *env.Env) graphics.TextStyle {
	return graphics.TextStyle{
		Color: e.Color(env.ButtonText),
		Scale: e.Float(env.FontScale),
	}
}

func (b *Button) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	e := ctx.Env()
	text := graphics.MeasureText(b.label, b.textStyle(e))
	padding := e.Insets(env.ButtonPadding)
	return c.Constrain(graphics.Size{
		Width:  text.Width + padding.Horizontal(),
		Height: text.Height + padding.Vertical(),
	})
}

func (b *Button) Paint(ctx *tree.PaintContext) {
	e := ctx.Env()
	background := e.Color(env.ButtonBackground)
	switch {
	case b.pressed:
		background = e.Color(env.ButtonBackgroundActive)
	case !b.disabled && ctx.IsHovered():
		background = e.Color(env.ButtonBackgroundHover)
	}
	if b.disabled {
		background = background.WithAlpha(128)
	}

	bounds := ctx.Bounds()
	ctx.Canvas().DrawRRect(graphics.RRect{
		Rect:   bounds,
		Radius: e.Float(env.ButtonCornerRadius),
	}, graphics.FillPaint(background))

	style := b.textStyle(e)
	if b.disabled {
		style.Color = style.Color.WithAlpha(128)
	}
	text := graphics.MeasureText(b.label, style)
	ctx.Canvas().DrawText(b.label, graphics.Offset{
		X: (bounds.Width() - text.Width) / 2,
		Y: (bounds.Height() - text.Height) / 2,
	}, style)
}

func (b *Button) OnEvent(ctx *tree.EventContext, event input.Event) bool {
	switch ev := event.(type) {
	case input.PointerEvent:
		if b.disabled {
			return false
		}
		switch ev.Phase {
		case input.PointerPhaseDown:
			b.pressed = true
			ctx.RequestPaint()
			return true
		case input.PointerPhaseUp:
			if !b.pressed {
				return false
			}
			b.pressed = false
			ctx.RequestPaint()
			size := ctx.Size()
			if size.Contains(ev.Position) {
				ctx.SubmitAction(ButtonPressed{})
			}
			return true
		case input.PointerPhaseCancel:
			b.pressed = false
			ctx.RequestPaint()
			return true
		}
	case input.HoverEvent:
		ctx.RequestPaint()
		return true
	}
	return false
}

func (b *Button) Describe() tree.Semantics {
	return tree.Semantics{Role: "button", Label: b.label}
}
