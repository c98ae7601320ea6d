package widgets

import (
	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

// Label displays a single run of text. It sizes itself to the measured
// text under the environment's font scale and never consumes input.
type Label struct {
	tree.LeafBase

	text     string
	color    graphics.Color
	hasColor bool
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// WithColor overrides the environment text color and returns the label.
func (l *Label) WithColor(c graphics.Color) *Label {
	l.color = c
	l.hasColor = true
	return l
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetText changes the text. Call through a mutation scope; the default
// conservative invalidation covers the size change.
func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) style(e *env.Env) graphics.TextStyle {
	color := e.Color(env.TextColor)
	if l.hasColor {
		color = l.color
	}
	return graphics.TextStyle{Color: color, Scale: e.Float(env.FontScale)}
}

func (l *Label) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(graphics.MeasureText(l.text, l.style(ctx.Env())))
}

func (l *Label) Paint(ctx *tree.PaintContext) {
	ctx.Canvas().DrawText(l.text, graphics.Offset{}, l.style(ctx.Env()))
}

func (l *Label) Describe() tree.Semantics {
	return tree.Semantics{Role: "label", Label: l.text}
}
