package tree

import (
	"testing"

	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/graphics"
)

func TestFlushPaint_SceneStartsWithWindowClear(t *testing.T) {
	tr := New(&testStack{})
	tr.Insert(tr.Root(), newTestBox(10, 10))
	scene := pump(t, tr)

	ops := scene.Ops()
	if len(ops) == 0 {
		t.Fatal("expected a non-empty scene")
	}
	clear, ok := ops[0].(graphics.ClearOp)
	if !ok {
		t.Fatalf("expected the scene to open with a clear, got %T", ops[0])
	}
	if want := tr.Env().Color(env.WindowBackground); clear.Color != want {
		t.Fatalf("expected clear color %v, got %v", want, clear.Color)
	}
}

func TestFlushPaint_IdempotentWhenClean(t *testing.T) {
	tr := New(&testStack{})
	tr.Insert(tr.Root(), newTestBox(10, 10))
	tr.FlushLayout(testWindow)

	first := tr.FlushPaint()
	second := tr.FlushPaint()
	if first != second {
		t.Fatal("expected the cached scene back for a clean tree")
	}
}

func TestFlushPaint_ReRecordsAfterMutation(t *testing.T) {
	tr := New(&testStack{})
	box := newTestBox(10, 10)
	id, _ := tr.Insert(tr.Root(), box)
	first := pump(t, tr)

	tr.Mutate(id, func(m *Mutation) error {
		box.color = graphics.ColorRed
		m.OnlyPaint()
		return nil
	})
	second := tr.FlushPaint()

	if first == second {
		t.Fatal("expected a fresh scene after a paint invalidation")
	}
	var sawRed bool
	for _, op := range second.Ops() {
		if rect, ok := op.(graphics.RectOp); ok && rect.Paint.Color == graphics.ColorRed {
			sawRed = true
		}
	}
	if !sawRed {
		t.Fatal("expected the re-recorded scene to carry the new color")
	}
}

func TestFlushPaint_TranslatesChildrenToTheirOrigins(t *testing.T) {
	tr := New(&testRow{})
	tr.Insert(tr.Root(), newTestBox(50, 40))
	tr.Insert(tr.Root(), newTestBox(30, 40))
	scene := pump(t, tr)

	var sawOffset bool
	for _, op := range scene.Ops() {
		if tl, ok := op.(graphics.TranslateOp); ok && tl.DX == 50 && tl.DY == 0 {
			sawOffset = true
		}
	}
	if !sawOffset {
		t.Fatal("expected a translate to the second child's origin")
	}
}

func TestFlushPaint_ChildOrderIsPaintOrder(t *testing.T) {
	tr := New(&testStack{})
	bottom := newTestBox(60, 60)
	bottom.color = graphics.ColorBlue
	top := newTestBox(60, 60)
	top.color = graphics.ColorGreen
	tr.Insert(tr.Root(), bottom)
	tr.Insert(tr.Root(), top)
	scene := pump(t, tr)

	blueAt, greenAt := -1, -1
	for i, op := range scene.Ops() {
		rect, ok := op.(graphics.RectOp)
		if !ok {
			continue
		}
		switch rect.Paint.Color {
		case graphics.ColorBlue:
			blueAt = i
		case graphics.ColorGreen:
			greenAt = i
		}
	}
	if blueAt < 0 || greenAt < 0 {
		t.Fatalf("expected both rects in the scene, got blue %d green %d", blueAt, greenAt)
	}
	if blueAt > greenAt {
		t.Fatalf("expected the first child painted first, got blue %d green %d", blueAt, greenAt)
	}
}

func TestFlushPaint_SceneSizeMatchesWindow(t *testing.T) {
	tr := New(&testStack{})
	scene := pump(t, tr)
	if got := scene.Size(); got != testWindow {
		t.Fatalf("expected scene size %v, got %v", testWindow, got)
	}
}

func TestFlushPaint_BeforeLayoutFatalInDebug(t *testing.T) {
	tr := New(&testStack{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected painting an unlaid tree to panic in debug mode")
		}
	}()
	tr.FlushPaint()
}
