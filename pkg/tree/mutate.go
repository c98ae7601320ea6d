package tree

import (
	"fmt"

	"github.com/go-joist/joist/pkg/errors"
)

// Mutation is a scoped grant of mutable access to one widget and its
// subtree. It exists only inside Tree.Mutate; keeping one after the
// callback returns is a programming error.
type Mutation struct {
	tree    *Tree
	id      WidgetID
	pending Dirty
	touched []WidgetID
	closed  bool
}

// Mutate runs fn with exclusive mutable access to the widget. The scope
// conflicts with any open scope on the same widget, an ancestor, or a
// descendant; disjoint subtrees do not conflict. When the scope closes the
// widget is conservatively invalidated for layout and paint unless the
// callback narrowed it, even if fn returned an error.
func (t *Tree) Mutate(id WidgetID, fn func(m *Mutation) error) error {
	if _, ok := t.nodes[id]; !ok {
		return &UnknownIDError{ID: id}
	}
	for _, h := range t.held {
		if h == id || t.isAncestorOf(h, id) || t.isAncestorOf(id, h) {
			return &BorrowConflictError{Held: h, Requested: id}
		}
	}

	m := &Mutation{tree: t, id: id, pending: DirtyLayout | DirtyPaint}
	t.held = append(t.held, id)
	defer func() {
		t.held = t.held[:len(t.held)-1]
		m.closed = true
		if _, ok := t.nodes[id]; ok {
			t.markDirty(id, m.pending)
		}
		for _, touched := range m.touched {
			if _, ok := t.nodes[touched]; ok {
				t.markDirty(touched, DirtyLayout|DirtyPaint)
			}
		}
	}()
	return fn(m)
}

// ID returns the id of the widget the scope covers.
func (m *Mutation) ID() WidgetID { return m.id }

// mustOpen panics when the scope has already closed. A stale handle
// reaching the tree would write outside any held scope.
func (m *Mutation) mustOpen() {
	if m.closed {
		panic(&errors.JoistError{
			Op:   "tree.Mutation",
			Kind: errors.KindIntegrity,
			Err:  fmt.Errorf("mutation scope for widget %d used after close", m.id),
		})
	}
}

// Widget returns the scope's widget for in-place modification.
func (m *Mutation) Widget() Widget {
	m.mustOpen()
	return m.tree.mustNode(m.id).widget
}

// OnlyPaint narrows the invalidation applied when the scope closes to
// paint only, for changes that cannot move or resize anything.
func (m *Mutation) OnlyPaint() {
	m.mustOpen()
	m.pending = DirtyPaint
}

// AlsoSemantics adds semantics to the invalidation applied when the scope
// closes.
func (m *Mutation) AlsoSemantics() {
	m.mustOpen()
	m.pending |= DirtySemantics
}

// Insert adds a widget under a parent inside the scope's subtree. The
// parent must be the scope's widget or one of its descendants.
func (m *Mutation) Insert(parent WidgetID, w Widget) (WidgetID, error) {
	m.mustOpen()
	if parent != m.id && !m.tree.isAncestorOf(m.id, parent) {
		return 0, &InvalidParentError{Parent: parent, Reason: "outside the mutation scope"}
	}
	return m.tree.insert(parent, w)
}

// Remove detaches and destroys a subtree strictly below the scope's
// widget. The scope's own widget cannot remove itself.
func (m *Mutation) Remove(id WidgetID) error {
	m.mustOpen()
	if id == m.id {
		return fmt.Errorf("tree: a widget cannot remove itself from its own mutation scope")
	}
	if !m.tree.isAncestorOf(m.id, id) {
		if _, ok := m.tree.nodes[id]; !ok {
			return &UnknownIDError{ID: id}
		}
		return fmt.Errorf("tree: widget %d is outside the mutation scope", id)
	}
	return m.tree.remove(id)
}

// WidgetOf grants access to a descendant's widget within the scope. The
// descendant is conservatively invalidated when the scope closes.
func (m *Mutation) WidgetOf(id WidgetID) (Widget, error) {
	m.mustOpen()
	if id == m.id {
		return m.Widget(), nil
	}
	if !m.tree.isAncestorOf(m.id, id) {
		if _, ok := m.tree.nodes[id]; !ok {
			return nil, &UnknownIDError{ID: id}
		}
		return nil, fmt.Errorf("tree: widget %d is outside the mutation scope", id)
	}
	for _, prev := range m.touched {
		if prev == id {
			return m.tree.mustNode(id).widget, nil
		}
	}
	m.touched = append(m.touched, id)
	return m.tree.mustNode(id).widget, nil
}

// RequestAnimFrame asks for an animation frame for the scope's widget on
// the next DeliverAnimFrames call.
func (m *Mutation) RequestAnimFrame() {
	m.mustOpen()
	m.tree.requestAnimFrame(m.id)
}

// WidgetAs returns the scope's widget downcast to a concrete type, or a
// TypeMismatchError naming both types when the held widget is something
// else.
func WidgetAs[T Widget](m *Mutation) (T, error) {
	w := m.Widget()
	typed, ok := w.(T)
	if !ok {
		var want T
		return want, &TypeMismatchError{
			ID:   m.id,
			Want: fmt.Sprintf("%T", want),
			Got:  fmt.Sprintf("%T", w),
		}
	}
	return typed, nil
}
