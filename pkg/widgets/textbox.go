package widgets

import (
	"math"

	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
	"github.com/go-joist/joist/pkg/tree"
)

// TextBox is a single-line editable text field. It takes keyboard focus on
// click, edits its buffer from routed text and key events, and emits
// TextChanged after every edit and TextSubmitted on enter.
type TextBox struct {
	tree.LeafBase

	text        []rune
	caret       int
	placeholder string
}

// NewTextBox creates an empty text box.
func NewTextBox() *TextBox {
	return &TextBox{}
}

// WithPlaceholder sets the hint shown while the box is empty and returns
// the text box.
func (t *TextBox) WithPlaceholder(placeholder string) *TextBox {
	t.placeholder = placeholder
	return t
}

// Text returns the current content.
func (t *TextBox) Text() string { return string(t.text) }

// SetText replaces the content and clamps the caret to the new end. Call
// through a mutation scope.
func (t *TextBox) SetText(text string) {
	t.text = []rune(text)
	if t.caret > len(t.text) {
		t.caret = len(t.text)
	}
}

// Caret returns the caret position as a rune index into the content.
func (t *TextBox) Caret() int { return t.caret }

func (t *TextBox) style(e *env.Env) graphics.TextStyle {
	return graphics.TextStyle{
		Color: e.Color(env.TextBoxText),
		Scale: e.Float(env.FontScale),
	}
}

func (t *TextBox) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	e := ctx.Env()
	padding := e.Insets(env.TextBoxPadding)
	line := graphics.MeasureText(string(t.text), t.style(e))

	width := line.Width + padding.Horizontal()
	if c.HasBoundedWidth() {
		// A text field claims the width it is offered.
		width = c.MaxWidth
	}
	return c.Constrain(graphics.Size{
		Width:  width,
		Height: line.Height + padding.Vertical(),
	})
}

func (t *TextBox) Paint(ctx *tree.PaintContext) {
	e := ctx.Env()
	bounds := ctx.Bounds()
	canvas := ctx.Canvas()

	canvas.DrawRect(bounds, graphics.FillPaint(e.Color(env.TextBoxBackground)))
	border := e.Color(env.TextBoxBorder)
	if ctx.HasFocus() {
		border = e.Color(env.TextBoxBorderFocused)
	}
	canvas.DrawRect(bounds, graphics.StrokePaint(border, e.Float(env.TextBoxBorderWidth)))

	padding := e.Insets(env.TextBoxPadding)
	style := t.style(e)
	origin := graphics.Offset{X: padding.Left, Y: padding.Top}
	if len(t.text) == 0 && t.placeholder != "" {
		hint := style
		hint.Color = hint.Color.WithAlpha(128)
		canvas.DrawText(t.placeholder, origin, hint)
	} else {
		canvas.DrawText(string(t.text), origin, style)
	}

	if ctx.HasFocus() {
		caretX := padding.Left + graphics.MeasureText(string(t.text[:t.caret]), style).Width
		canvas.DrawLine(
			graphics.Offset{X: caretX, Y: padding.Top},
			graphics.Offset{X: caretX, Y: bounds.Height() - padding.Bottom},
			graphics.StrokePaint(style.Color, 1),
		)
	}
}

func (t *TextBox) OnEvent(ctx *tree.EventContext, event input.Event) bool {
	switch ev := event.(type) {
	case input.PointerEvent:
		switch ev.Phase {
		case input.PointerPhaseDown:
			e := ctx.Env()
			t.caret = t.caretForX(ev.Position.X-e.Insets(env.TextBoxPadding).Left, e)
			ctx.RequestFocus()
			ctx.RequestPaint()
			return true
		case input.PointerPhaseUp:
			return true
		}
	case input.FocusEvent:
		ctx.RequestPaint()
		return true
	case input.TextEvent:
		if ev.Text == "" {
			return true
		}
		insert := []rune(ev.Text)
		t.text = append(t.text[:t.caret], append(insert, t.text[t.caret:]...)...)
		t.caret += len(insert)
		t.noteEdit(ctx)
		return true
	case input.KeyEvent:
		if ev.Phase != input.KeyPhaseDown {
			return false
		}
		return t.handleKey(ctx, ev.Key)
	}
	return false
}

func (t *TextBox) handleKey(ctx *tree.EventContext, key input.Key) bool {
	switch key {
	case input.KeyBackspace:
		if t.caret > 0 {
			t.text = append(t.text[:t.caret-1], t.text[t.caret:]...)
			t.caret--
			t.noteEdit(ctx)
		}
		return true
	case input.KeyDelete:
		if t.caret < len(t.text) {
			t.text = append(t.text[:t.caret], t.text[t.caret+1:]...)
			t.noteEdit(ctx)
		}
		return true
	case input.KeyArrowLeft:
		if t.caret > 0 {
			t.caret--
			ctx.RequestPaint()
		}
		return true
	case input.KeyArrowRight:
		if t.caret < len(t.text) {
			t.caret++
			ctx.RequestPaint()
		}
		return true
	case input.KeyHome:
		t.caret = 0
		ctx.RequestPaint()
		return true
	case input.KeyEnd:
		t.caret = len(t.text)
		ctx.RequestPaint()
		return true
	case input.KeyEnter:
		ctx.SubmitAction(TextSubmitted{Text: string(t.text)})
		return true
	case input.KeyEscape:
		ctx.ReleaseFocus()
		return true
	}
	return false
}

// noteEdit records the invalidation and action for a content change.
func (t *TextBox) noteEdit(ctx *tree.EventContext) {
	ctx.RequestLayout()
	ctx.RequestSemantics()
	ctx.SubmitAction(TextChanged{Text: string(t.text)})
}

// caretForX maps a text-local x coordinate to the nearest rune boundary.
func (t *TextBox) caretForX(x float64, e *env.Env) int {
	style := t.style(e)
	best := 0
	bestDist := math.Abs(x)
	for i := 1; i <= len(t.text); i++ {
		width := graphics.MeasureText(string(t.text[:i]), style).Width
		dist := math.Abs(x - width)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

func (t *TextBox) Describe() tree.Semantics {
	return tree.Semantics{Role: "textbox", Label: t.placeholder, Value: string(t.text)}
}
