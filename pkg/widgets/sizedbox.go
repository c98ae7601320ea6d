package widgets

import (
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

// SizedBox takes a fixed size, clamped into the incoming constraints, and
// forces any child to that exact size. Without a child it is a spacer.
type SizedBox struct {
	tree.ContainerBase

	width  float64
	height float64
}

// NewSizedBox creates a box with the given dimensions.
func NewSizedBox(width, height float64) *SizedBox {
	return &SizedBox{width: width, height: height}
}

// Width returns the requested width.
func (s *SizedBox) Width() float64 { return s.width }

// Height returns the requested height.
func (s *SizedBox) Height() float64 { return s.height }

// Resize changes the requested dimensions. Call through a mutation scope.
func (s *SizedBox) Resize(width, height float64) {
	s.width = width
	s.height = height
}

func (s *SizedBox) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	size := c.Constrain(graphics.Size{Width: s.width, Height: s.height})
	for _, child := range s.Children() {
		ctx.LayoutChild(child, graphics.Tight(size))
		ctx.PlaceChild(child, graphics.Offset{})
	}
	return size
}

func (s *SizedBox) Paint(ctx *tree.PaintContext) {
	for _, child := range s.Children() {
		ctx.PaintChild(child)
	}
}
