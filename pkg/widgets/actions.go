package widgets

// ButtonPressed is emitted by a Button after a complete press gesture: a
// press followed by a release inside the button's bounds.
type ButtonPressed struct{}

// TextChanged is emitted by a TextBox whenever its content changes, with
// the full new text.
type TextChanged struct {
	Text string
}

// TextSubmitted is emitted by a TextBox when enter is pressed.
type TextSubmitted struct {
	Text string
}

// FadeFinished is emitted by a Fade when an opacity animation reaches its
// target.
type FadeFinished struct {
	Opacity float64
}
