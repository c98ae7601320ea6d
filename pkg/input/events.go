// Package input defines the closed set of events crossing the runtime's
// input boundary. Platform shells translate OS events into these types; the
// core never sees an OS event representation. Hover, focus-transfer, and
// animation-frame events are synthesized inside the runtime and share the
// same Event interface so widgets handle all of them through one method.
package input

import (
	"fmt"
	"time"

	"github.com/go-joist/joist/pkg/graphics"
)

// Event is one routed input event. The set of kinds is closed.
type Event interface {
	event()
}

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	PointerPhaseMove PointerPhase = iota
	PointerPhaseDown
	PointerPhaseUp
	PointerPhaseCancel
)

// String returns a human-readable representation of the pointer phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseMove:
		return "move"
	case PointerPhaseDown:
		return "down"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerButton identifies which button is involved in a pointer event.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// String returns a human-readable representation of the pointer button.
func (b PointerButton) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("PointerButton(%d)", int(b))
	}
}

// PointerEvent is a mouse or touch event. Position is in the coordinate
// space of the widget receiving the event; the router translates it as the
// event descends the tree.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	Position  graphics.Offset
	Delta     graphics.Offset
	Button    PointerButton
}

// KeyPhase identifies whether a key went down or up.
type KeyPhase int

const (
	KeyPhaseDown KeyPhase = iota
	KeyPhaseUp
)

// String returns a human-readable representation of the key phase.
func (p KeyPhase) String() string {
	switch p {
	case KeyPhaseDown:
		return "down"
	case KeyPhaseUp:
		return "up"
	default:
		return fmt.Sprintf("KeyPhase(%d)", int(p))
	}
}

// Key is a non-text key code. Printable input arrives as TextEvent, so the
// set here covers editing and navigation keys only.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
)

var keyNames = []string{
	"unknown", "enter", "escape", "backspace", "delete", "tab", "space",
	"arrow_left", "arrow_right", "arrow_up", "arrow_down", "home", "end",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if int(k) >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Modifiers is a bit set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Has returns true if all the given modifier bits are set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// KeyEvent is a non-text keyboard event routed to the focused widget.
type KeyEvent struct {
	Phase     KeyPhase
	Key       Key
	Modifiers Modifiers
}

// TextEvent carries committed text input routed to the focused widget.
type TextEvent struct {
	Text string
}

// FocusEvent tells a widget it gained or lost focus. The runtime
// synthesizes one for the loser and one for the gainer on each transfer.
type FocusEvent struct {
	Gained bool
}

// HoverEvent tells a widget the pointer entered or left its bounds. The
// runtime synthesizes these from pointer movement; they are delivered to
// the affected widget only and do not bubble.
type HoverEvent struct {
	Entered  bool
	Position graphics.Offset
}

// AnimFrameEvent is delivered once per pumped frame to widgets that
// requested an animation frame. A widget must re-request to keep
// receiving them.
type AnimFrameEvent struct {
	Elapsed time.Duration
}

func (PointerEvent) event()   {}
func (KeyEvent) event()       {}
func (TextEvent) event()      {}
func (FocusEvent) event()     {}
func (HoverEvent) event()     {}
func (AnimFrameEvent) event() {}
