package widgets

import (
	"fmt"
	"math"

	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main
// axis (horizontal for a row, vertical for a column).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start of the main axis.
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end of the main axis.
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between
	// children, with none before the first or after the last.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with
	// half-sized spaces at the start and end.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly,
	// including equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

// String returns a human-readable representation of the alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	case MainAxisAlignmentSpaceAround:
		return "space_around"
	case MainAxisAlignmentSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned across the main
// axis.
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch stretches children to fill the cross axis.
	CrossAxisAlignmentStretch
)

// String returns a human-readable representation of the alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// MainAxisSize controls how much space the flex container takes along its
// main axis.
type MainAxisSize int

const (
	// MainAxisSizeMin sizes the container to fit its children.
	MainAxisSizeMin MainAxisSize = iota
	// MainAxisSizeMax expands to fill the available main axis. Required
	// for flex-factor children to receive space.
	MainAxisSizeMax
)

// String returns a human-readable representation of the sizing mode.
func (s MainAxisSize) String() string {
	switch s {
	case MainAxisSizeMin:
		return "min"
	case MainAxisSizeMax:
		return "max"
	default:
		return fmt.Sprintf("MainAxisSize(%d)", int(s))
	}
}

// Flex lays out children in a single run along one axis. Children with a
// flex factor share the space left over after rigid children take their
// sizes, proportionally to their factors.
//
// Rigid children are laid out first under loose constraints, then flex
// children under tight main axis constraints carved from the remainder.
// Positioning honors the main and cross axis alignments.
type Flex struct {
	tree.ContainerBase

	// Direction selects the main axis.
	Direction Axis
	// Alignment distributes free main axis space.
	Alignment MainAxisAlignment
	// CrossAlignment positions children across the main axis.
	CrossAlignment CrossAxisAlignment
	// AxisSize picks shrink-wrap or expand behavior on the main axis.
	AxisSize MainAxisSize

	factors        map[tree.WidgetID]int
	unboundedNoted bool
}

// NewRow creates a horizontal flex container.
func NewRow() *Flex {
	return &Flex{Direction: AxisHorizontal}
}

// NewColumn creates a vertical flex container.
func NewColumn() *Flex {
	return &Flex{Direction: AxisVertical}
}

// WithAlignment sets the main axis alignment and returns the container.
func (f *Flex) WithAlignment(a MainAxisAlignment) *Flex {
	f.Alignment = a
	return f
}

// WithCrossAlignment sets the cross axis alignment and returns the
// container.
func (f *Flex) WithCrossAlignment(a CrossAxisAlignment) *Flex {
	f.CrossAlignment = a
	return f
}

// WithAxisSize sets the main axis sizing mode and returns the container.
func (f *Flex) WithAxisSize(s MainAxisSize) *Flex {
	f.AxisSize = s
	return f
}

// SetFlex assigns a flex factor to a child. A factor of zero makes the
// child rigid again. Call through a mutation scope on the container once
// the child id is known.
func (f *Flex) SetFlex(child tree.WidgetID, factor int) {
	if factor <= 0 {
		delete(f.factors, child)
		return
	}
	if f.factors == nil {
		f.factors = make(map[tree.WidgetID]int)
	}
	f.factors[child] = factor
}

// FlexOf returns the flex factor assigned to a child, zero for rigid
// children.
func (f *Flex) FlexOf(child tree.WidgetID) int {
	return f.factors[child]
}

func (f *Flex) mainAxis(size graphics.Size) float64 {
	if f.Direction == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f *Flex) crossAxis(size graphics.Size) float64 {
	if f.Direction == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f *Flex) makeSize(main, cross float64) graphics.Size {
	if f.Direction == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f *Flex) makeOffset(main, cross float64) graphics.Offset {
	if f.Direction == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

func (f *Flex) Layout(ctx *tree.LayoutContext, c graphics.Constraints) graphics.Size {
	children := f.Children()
	maxSize := graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	maxMain := f.mainAxis(maxSize)

	mainSize := 0.0
	crossSize := 0.0
	totalFlex := 0
	type flexChild struct {
		id     tree.WidgetID
		factor int
	}
	var flexChildren []flexChild

	for _, child := range children {
		factor := f.factors[child]
		if factor > 0 && !math.IsInf(maxMain, 1) {
			flexChildren = append(flexChildren, flexChild{id: child, factor: factor})
			totalFlex += factor
			continue
		}
		if factor > 0 && !f.unboundedNoted {
			// Flex factors cannot allocate space from an unbounded axis;
			// those children fall back to loose layout.
			errors.Report(&errors.JoistError{
				Op:   "widgets.Flex.Layout",
				Kind: errors.KindLayout,
				Err:  fmt.Errorf("flex factor used with unbounded %s axis", f.Direction),
			})
			f.unboundedNoted = true
		}
		size := ctx.LayoutChild(child, f.looseConstraints(maxSize))
		mainSize += f.mainAxis(size)
		crossSize = math.Max(crossSize, f.crossAxis(size))
	}

	remaining := math.Max(maxMain-mainSize, 0)
	if f.AxisSize != MainAxisSizeMax {
		remaining = 0
	}
	for _, fc := range flexChildren {
		allocated := remaining * float64(fc.factor) / float64(totalFlex)
		size := ctx.LayoutChild(fc.id, f.flexConstraints(c, allocated))
		mainSize += f.mainAxis(size)
		crossSize = math.Max(crossSize, f.crossAxis(size))
	}

	finalMain := mainSize
	if f.AxisSize == MainAxisSizeMax && !math.IsInf(maxMain, 1) {
		finalMain = maxMain
	}
	size := c.Constrain(f.makeSize(finalMain, crossSize))

	freeSpace := math.Max(0, f.mainAxis(size)-mainSize)
	spacing, cursor := f.computeSpacing(freeSpace, len(children))
	for _, child := range children {
		childSize := ctx.ChildSize(child)
		cross := f.crossOffset(f.crossAxis(size), f.crossAxis(childSize))
		ctx.PlaceChild(child, f.makeOffset(cursor, cross))
		cursor += f.mainAxis(childSize) + spacing
	}
	return size
}

func (f *Flex) looseConstraints(maxSize graphics.Size) graphics.Constraints {
	if f.CrossAlignment != CrossAxisAlignmentStretch {
		return graphics.Loose(maxSize)
	}
	if f.Direction == AxisHorizontal {
		return graphics.Constraints{
			MaxWidth:  maxSize.Width,
			MinHeight: maxSize.Height,
			MaxHeight: maxSize.Height,
		}
	}
	return graphics.Constraints{
		MinWidth:  maxSize.Width,
		MaxWidth:  maxSize.Width,
		MaxHeight: maxSize.Height,
	}
}

func (f *Flex) flexConstraints(c graphics.Constraints, mainSize float64) graphics.Constraints {
	if f.Direction == AxisHorizontal {
		minHeight := 0.0
		if f.CrossAlignment == CrossAxisAlignmentStretch {
			minHeight = c.MaxHeight
		}
		return graphics.Constraints{
			MinWidth:  mainSize,
			MaxWidth:  mainSize,
			MinHeight: minHeight,
			MaxHeight: c.MaxHeight,
		}
	}
	minWidth := 0.0
	if f.CrossAlignment == CrossAxisAlignmentStretch {
		minWidth = c.MaxWidth
	}
	return graphics.Constraints{
		MinWidth:  minWidth,
		MaxWidth:  c.MaxWidth,
		MinHeight: mainSize,
		MaxHeight: mainSize,
	}
}

func (f *Flex) computeSpacing(freeSpace float64, n int) (spacing, offset float64) {
	switch f.Alignment {
	case MainAxisAlignmentEnd:
		offset = freeSpace
	case MainAxisAlignmentCenter:
		offset = freeSpace * 0.5
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return
}

func (f *Flex) crossOffset(available, used float64) float64 {
	free := available - used
	if free <= 0 {
		return 0
	}
	switch f.CrossAlignment {
	case CrossAxisAlignmentEnd:
		return free
	case CrossAxisAlignmentCenter:
		return free * 0.5
	default:
		return 0
	}
}

func (f *Flex) Paint(ctx *tree.PaintContext) {
	for _, child := range f.Children() {
		ctx.PaintChild(child)
	}
}
