package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextStyle describes how a run of text is drawn.
//
// Measurement is performed against a fixed embedded face so that text
// metrics are identical on every platform; Scale multiplies the base
// metrics and is interpreted by the renderer, not rasterized here.
type TextStyle struct {
	Color Color
	Scale float64 // 0 means 1.0
}

func (s TextStyle) scale() float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

// face is the deterministic measurement face. All layout math in the tree
// uses these metrics; a rasterizing backend may substitute richer fonts as
// long as it accepts the sizes computed here.
var face font.Face = basicfont.Face7x13

// MeasureText returns the box a single line of text occupies under the
// given style. Newlines are not interpreted.
func MeasureText(text string, style TextStyle) Size {
	advance := font.MeasureString(face, text)
	m := face.Metrics()
	k := style.scale()
	return Size{
		Width:  float64(advance.Ceil()) * k,
		Height: float64(m.Height.Ceil()) * k,
	}
}

// TextBaseline returns the distance from the top of a measured text box to
// the alphabetic baseline under the given style.
func TextBaseline(style TextStyle) float64 {
	m := face.Metrics()
	return float64(m.Ascent.Ceil()) * style.scale()
}
