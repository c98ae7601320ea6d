package tree

import (
	"github.com/go-joist/joist/pkg/input"
)

// Focus returns the id of the widget holding keyboard focus, or zero.
func (t *Tree) Focus() WidgetID { return t.focus }

// Hover returns the id of the widget under the pointer, or zero.
func (t *Tree) Hover() WidgetID { return t.hover }

// Capture returns the id of the widget holding the pointer grab, or zero.
func (t *Tree) Capture() WidgetID { return t.capture }

// SetFocus moves keyboard focus to the widget. The previous holder is
// notified it lost focus before the new holder is notified it gained it.
// The notifications are dispatches, so focus cannot move while a mutation
// scope is open.
func (t *Tree) SetFocus(id WidgetID) error {
	if _, ok := t.nodes[id]; !ok {
		return &UnknownIDError{ID: id}
	}
	if t.focus == id {
		return nil
	}
	if !t.dispatchable("tree.SetFocus") {
		return nil
	}
	old := t.focus
	t.focus = id
	if old != 0 {
		if _, ok := t.nodes[old]; ok {
			t.deliver(old, input.FocusEvent{Gained: false})
		}
	}
	t.deliver(id, input.FocusEvent{Gained: true})
	return nil
}

// ClearFocus removes keyboard focus entirely, notifying the previous
// holder.
func (t *Tree) ClearFocus() {
	if t.focus == 0 {
		return
	}
	if !t.dispatchable("tree.ClearFocus") {
		return
	}
	old := t.focus
	t.focus = 0
	if _, ok := t.nodes[old]; ok {
		t.deliver(old, input.FocusEvent{Gained: false})
	}
}
