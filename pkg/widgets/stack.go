package widgets

import (
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

// Stack overlays its children at its own origin. Children are painted in
// insertion order, so the last child sits visually on top and wins
// hit-testing where they overlap.
type Stack struct {
	tree.ContainerBase

	expand bool
}

// NewStack creates a stack that shrink-wraps its largest child.
func NewStack() *Stack {
	return &Stack{}
}

// WithExpand makes the stack fill the available space instead of
// shrink-wrapping, and returns the stack.
func (s *Stack) WithExpand(expand bool) *Stack {
	s.expand = expand
	return s
}

func (s *Stack) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	loose := c.Loosen()
	var content graphics.Size
	for _, child := range s.Children() {
		size := ctx.LayoutChild(child, loose)
		ctx.PlaceChild(child, graphics.Offset{})
		if size.Width > content.Width {
			content.Width = size.Width
		}
		if size.Height > content.Height {
			content.Height = size.Height
		}
	}
	if s.expand && c.HasBoundedWidth() && c.HasBoundedHeight() {
		return c.Biggest()
	}
	return c.Constrain(content)
}

func (s *Stack) Paint(ctx *tree.PaintContext) {
	for _, child := range s.Children() {
		ctx.PaintChild(child)
	}
}
