package tree

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
)

func TestMutate_InvalidatesConservatively(t *testing.T) {
	tr := New(&testStack{})
	box := newTestBox(10, 10)
	id, _ := tr.Insert(tr.Root(), box)
	pump(t, tr)

	err := tr.Mutate(id, func(m *Mutation) error {
		typed, err := WidgetAs[*testBox](m)
		if err != nil {
			return err
		}
		typed.preferred = graphics.Size{Width: 30, Height: 30}
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	ref, _ := tr.Node(id)
	if !ref.Dirty().Has(DirtyLayout | DirtyPaint) {
		t.Fatalf("expected layout and paint dirt, got %v", ref.Dirty())
	}
	rootRef, _ := tr.Node(tr.Root())
	if !rootRef.Dirty().Has(DirtyLayout | DirtyPaint) {
		t.Fatalf("expected dirt to propagate to the root, got %v", rootRef.Dirty())
	}

	tr.FlushLayout(testWindow)
	if got := ref.Size(); got.Width != 30 || got.Height != 30 {
		t.Fatalf("expected relayout to 30x30, got %v", got)
	}
}

func TestMutate_OnlyPaintNarrowsInvalidation(t *testing.T) {
	tr := New(&testStack{})
	box := newTestBox(10, 10)
	id, _ := tr.Insert(tr.Root(), box)
	pump(t, tr)
	layoutsBefore := box.layouts

	tr.Mutate(id, func(m *Mutation) error {
		box.color = graphics.ColorRed
		m.OnlyPaint()
		return nil
	})

	ref, _ := tr.Node(id)
	if ref.Dirty() != DirtyPaint {
		t.Fatalf("expected paint-only dirt, got %v", ref.Dirty())
	}
	pump(t, tr)
	if box.layouts != layoutsBefore {
		t.Fatalf("expected no relayout, layouts went %d to %d", layoutsBefore, box.layouts)
	}
}

func TestMutate_ErrorStillInvalidates(t *testing.T) {
	tr := New(&testStack{})
	id, _ := tr.Insert(tr.Root(), newTestBox(10, 10))
	pump(t, tr)

	wantErr := fmt.Errorf("partial change")
	err := tr.Mutate(id, func(m *Mutation) error {
		return wantErr
	})
	if !stderrors.Is(err, wantErr) {
		t.Fatalf("expected the callback error back, got %v", err)
	}
	ref, _ := tr.Node(id)
	if !ref.Dirty().Has(DirtyLayout | DirtyPaint) {
		t.Fatalf("expected conservative dirt despite the error, got %v", ref.Dirty())
	}
}

func TestMutate_UnknownIDFails(t *testing.T) {
	tr := New(&testStack{})
	err := tr.Mutate(WidgetID(777777), func(m *Mutation) error { return nil })
	var unknown *UnknownIDError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("expected UnknownIDError, got %v", err)
	}
}

func TestMutate_OverlappingScopesConflict(t *testing.T) {
	tr := New(&testStack{})
	mid, _ := tr.Insert(tr.Root(), &testStack{})
	leaf, _ := tr.Insert(mid, newTestBox(10, 10))

	cases := []struct {
		name      string
		requested WidgetID
	}{
		{name: "same widget", requested: mid},
		{name: "descendant of held", requested: leaf},
		{name: "ancestor of held", requested: tr.Root()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tr.Mutate(mid, func(m *Mutation) error {
				return tr.Mutate(tc.requested, func(inner *Mutation) error { return nil })
			})
			var conflict *BorrowConflictError
			if !stderrors.As(err, &conflict) {
				t.Fatalf("expected BorrowConflictError, got %v", err)
			}
			if conflict.Held != mid || conflict.Requested != tc.requested {
				t.Fatalf("expected held %d requested %d, got held %d requested %d",
					mid, tc.requested, conflict.Held, conflict.Requested)
			}
		})
	}

	// The failed requests must not have poisoned anything.
	if err := tr.Mutate(leaf, func(m *Mutation) error { return nil }); err != nil {
		t.Fatalf("expected a fresh scope to succeed, got %v", err)
	}
}

func TestMutate_DisjointSiblingsAllowed(t *testing.T) {
	tr := New(&testStack{})
	a, _ := tr.Insert(tr.Root(), newTestBox(10, 10))
	b, _ := tr.Insert(tr.Root(), newTestBox(10, 10))

	err := tr.Mutate(a, func(m *Mutation) error {
		return tr.Mutate(b, func(inner *Mutation) error { return nil })
	})
	if err != nil {
		t.Fatalf("expected disjoint sibling scopes to coexist, got %v", err)
	}
}

func TestMutate_StructuralEditsStayInScope(t *testing.T) {
	tr := New(&testStack{})
	mid, _ := tr.Insert(tr.Root(), &testStack{})
	outside, _ := tr.Insert(tr.Root(), &testStack{})

	var added WidgetID
	err := tr.Mutate(mid, func(m *Mutation) error {
		var err error
		added, err = m.Insert(m.ID(), newTestBox(5, 5))
		if err != nil {
			return err
		}
		if _, err := m.Insert(outside, newTestBox(5, 5)); err == nil {
			return fmt.Errorf("expected insertion outside the scope to fail")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if !tr.Exists(added) {
		t.Fatal("expected the in-scope insertion to take effect")
	}

	err = tr.Mutate(mid, func(m *Mutation) error {
		if err := m.Remove(outside); err == nil {
			return fmt.Errorf("expected removal outside the scope to fail")
		}
		if err := m.Remove(m.ID()); err == nil {
			return fmt.Errorf("expected self-removal to fail")
		}
		return m.Remove(added)
	})
	if err != nil {
		t.Fatalf("mutate remove: %v", err)
	}
	if tr.Exists(added) {
		t.Fatal("expected the in-scope removal to take effect")
	}
}

func TestMutate_TreeLevelEditsBlockedDuringScope(t *testing.T) {
	tr := New(&testStack{})
	mid, _ := tr.Insert(tr.Root(), &testStack{})

	tr.Mutate(mid, func(m *Mutation) error {
		if _, err := tr.Insert(tr.Root(), newTestBox(1, 1)); err == nil {
			t.Error("expected Tree.Insert to fail while a scope is held")
		}
		if err := tr.Remove(mid); err == nil {
			t.Error("expected Tree.Remove to fail while a scope is held")
		}
		return nil
	})

	// Both succeed once the scope closes.
	if _, err := tr.Insert(tr.Root(), newTestBox(1, 1)); err != nil {
		t.Fatalf("insert after scope: %v", err)
	}
	if err := tr.Remove(mid); err != nil {
		t.Fatalf("remove after scope: %v", err)
	}
}

func TestMutate_WidgetOfInvalidatesDescendant(t *testing.T) {
	tr := New(&testStack{})
	mid, _ := tr.Insert(tr.Root(), &testStack{})
	leaf, _ := tr.Insert(mid, newTestBox(10, 10))
	pump(t, tr)

	err := tr.Mutate(mid, func(m *Mutation) error {
		w, err := m.WidgetOf(leaf)
		if err != nil {
			return err
		}
		w.(*testBox).preferred = graphics.Size{Width: 40, Height: 40}
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	leafRef, _ := tr.Node(leaf)
	if !leafRef.Dirty().Has(DirtyLayout | DirtyPaint) {
		t.Fatalf("expected the touched descendant dirty, got %v", leafRef.Dirty())
	}
}

func TestMutate_StaleHandleIsFatal(t *testing.T) {
	tr := New(&testStack{})
	id, _ := tr.Insert(tr.Root(), newTestBox(10, 10))

	var stale *Mutation
	tr.Mutate(id, func(m *Mutation) error {
		stale = m
		return nil
	})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a stale mutation handle to panic")
		}
		je, ok := r.(*errors.JoistError)
		if !ok || je.Kind != errors.KindIntegrity {
			t.Fatalf("expected an integrity error, got %v", r)
		}
	}()
	stale.Widget()
}

func TestWidgetAs_TypeMismatch(t *testing.T) {
	tr := New(&testStack{})
	id, _ := tr.Insert(tr.Root(), newTestBox(10, 10))

	err := tr.Mutate(id, func(m *Mutation) error {
		_, err := WidgetAs[*testStack](m)
		return err
	})
	var mismatch *TypeMismatchError
	if !stderrors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if mismatch.ID != id {
		t.Fatalf("expected id %d in error, got %d", id, mismatch.ID)
	}
	if mismatch.Want == "" || mismatch.Got == "" || mismatch.Want == mismatch.Got {
		t.Fatalf("expected distinct type names, got want %q got %q", mismatch.Want, mismatch.Got)
	}
}
