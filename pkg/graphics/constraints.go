package graphics

import (
	"fmt"
	"math"
)

// Unbounded marks a constraint axis with no upper limit.
var Unbounded = math.Inf(1)

// Constraints are immutable min/max size bounds passed down the tree during
// layout. A widget's computed size must satisfy the constraints handed to it
// by its parent; returning a size outside the bounds is a programming error,
// not a recoverable condition.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that admit exactly the given size.
func Tight(size Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// UnboundedConstraints returns constraints with no upper limit on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// Constrain returns the size closest to s that satisfies the constraints.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  c.ConstrainWidth(s.Width),
		Height: c.ConstrainHeight(s.Height),
	}
}

// ConstrainWidth clamps a width into the constraint's horizontal bounds.
func (c Constraints) ConstrainWidth(w float64) float64 {
	return math.Min(math.Max(w, c.MinWidth), c.MaxWidth)
}

// ConstrainHeight clamps a height into the constraint's vertical bounds.
func (c Constraints) ConstrainHeight(h float64) float64 {
	return math.Min(math.Max(h, c.MinHeight), c.MaxHeight)
}

// IsTight returns true if the constraints admit exactly one size, within
// the tolerance constraint arithmetic can introduce.
func (c Constraints) IsTight() bool {
	return floatEqual(c.MinWidth, c.MaxWidth) && floatEqual(c.MinHeight, c.MaxHeight)
}

// IsSatisfiedBy returns true if the size lies within the bounds,
// with a small tolerance for floating-point layout arithmetic.
func (c Constraints) IsSatisfiedBy(s Size) bool {
	return s.Width >= c.MinWidth-epsilon && s.Width <= c.MaxWidth+epsilon &&
		s.Height >= c.MinHeight-epsilon && s.Height <= c.MaxHeight+epsilon
}

// HasBoundedWidth returns true if the maximum width is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight returns true if the maximum height is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Loosen returns the constraints with minimums removed.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate returns the constraints reduced by the given insets, for sizing a
// child inside padding. Bounds never deflate below zero.
func (c Constraints) Deflate(in Insets) Constraints {
	h := in.Horizontal()
	v := in.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
}

// Smallest returns the smallest size satisfying the constraints.
func (c Constraints) Smallest() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Biggest returns the largest size satisfying the constraints.
func (c Constraints) Biggest() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// String returns a compact representation for diagnostics.
func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w:%g..%g h:%g..%g)",
		c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}
