package widgets

import (
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

// Padding insets its child by a fixed amount on each side. The child sees
// the incoming constraints deflated by the insets; the padding reports the
// child's size inflated back.
type Padding struct {
	tree.ContainerBase

	insets graphics.Insets
}

// NewPadding creates a padding container with the given insets.
func NewPadding(insets graphics.Insets) *Padding {
	return &Padding{insets: insets}
}

// NewPaddingAll creates a padding container with the same inset on every
// side.
func NewPaddingAll(value float64) *Padding {
	return &Padding{insets: graphics.UniformInsets(value)}
}

// Insets returns the current insets.
func (p *Padding) Insets() graphics.Insets { return p.insets }

// SetInsets changes the insets. Call through a mutation scope.
func (p *Padding) SetInsets(insets graphics.Insets) {
	p.insets = insets
}

func (p *Padding) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	inner := c.Deflate(p.insets)
	var content graphics.Size
	for _, child := range p.Children() {
		size := ctx.LayoutChild(child, inner)
		ctx.PlaceChild(child, graphics.Offset{X: p.insets.Left, Y: p.insets.Top})
		if size.Width > content.Width {
			content.Width = size.Width
		}
		if size.Height > content.Height {
			content.Height = size.Height
		}
	}
	return c.Constrain(graphics.Size{
		Width:  content.Width + p.insets.Horizontal(),
		Height: content.Height + p.insets.Vertical(),
	})
}

func (p *Padding) Paint(ctx *tree.PaintContext) {
	for _, child := range p.Children() {
		ctx.PaintChild(child)
	}
}
