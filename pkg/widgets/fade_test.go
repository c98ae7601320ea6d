package widgets

import (
	"math"
	"testing"
	"time"

	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

func newFadeTree(t *testing.T) (*tree.Tree, *Fade, tree.WidgetID) {
	t.Helper()
	tr := tree.New(NewStack())
	fade := NewFade()
	fadeID := mustInsert(t, tr, tr.Root(), fade)
	mustInsert(t, tr, fadeID, NewLabel("content"))
	pump(t, tr)
	return tr, fade, fadeID
}

func startFade(t *testing.T, tr *tree.Tree, id tree.WidgetID, target float64, duration time.Duration) {
	t.Helper()
	err := tr.Mutate(id, func(m *tree.Mutation) error {
		fade, err := tree.WidgetAs[*Fade](m)
		if err != nil {
			return err
		}
		fade.FadeTo(target, duration)
		m.OnlyPaint()
		m.RequestAnimFrame()
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
}

func TestFade_StartsOpaqueWithoutLayer(t *testing.T) {
	tr, fade, _ := newFadeTree(t)

	if fade.Opacity() != 1 {
		t.Fatalf("expected full opacity, got %v", fade.Opacity())
	}
	if fade.Animating() {
		t.Fatal("expected an idle controller")
	}
	for _, op := range tr.FlushPaint().Ops() {
		if _, ok := op.(graphics.SaveLayerAlphaOp); ok {
			t.Fatal("expected no compositing layer at full opacity")
		}
	}
}

func TestFade_AnimatesAcrossFrames(t *testing.T) {
	tr, fade, fadeID := newFadeTree(t)
	startFade(t, tr, fadeID, 0, 200*time.Millisecond)

	if !tr.HasAnimFrameRequests() {
		t.Fatal("expected a pending animation frame")
	}

	tr.DeliverAnimFrames(100 * time.Millisecond)
	if got := fade.Opacity(); math.Abs(got-0.5) > 1e-3 {
		t.Fatalf("expected opacity near 0.5 halfway through, got %v", got)
	}
	if !fade.Animating() {
		t.Fatal("expected the fade still in flight")
	}
	if !tr.HasAnimFrameRequests() {
		t.Fatal("expected the fade to re-arm for the next frame")
	}
	if _, _, ok := tr.PopAction(); ok {
		t.Fatal("expected no action before the fade finishes")
	}

	tr.DeliverAnimFrames(100 * time.Millisecond)
	if got := fade.Opacity(); got != 0 {
		t.Fatalf("expected opacity 0 at the end, got %v", got)
	}
	if fade.Animating() {
		t.Fatal("expected the controller idle after finishing")
	}
	if tr.HasAnimFrameRequests() {
		t.Fatal("expected no further frame requests after finishing")
	}

	action, origin, ok := tr.PopAction()
	if !ok {
		t.Fatal("expected FadeFinished on completion")
	}
	finished, ok := action.(FadeFinished)
	if !ok {
		t.Fatalf("expected FadeFinished, got %T", action)
	}
	if finished.Opacity != 0 {
		t.Fatalf("expected the finished opacity 0, got %v", finished.Opacity)
	}
	if origin != fadeID {
		t.Fatalf("expected origin %d, got %d", fadeID, origin)
	}
}

func TestFade_PartialOpacityUsesLayer(t *testing.T) {
	tr, _, fadeID := newFadeTree(t)
	startFade(t, tr, fadeID, 0, 200*time.Millisecond)
	tr.DeliverAnimFrames(100 * time.Millisecond)

	var layer *graphics.SaveLayerAlphaOp
	restores := 0
	for _, op := range tr.FlushPaint().Ops() {
		switch o := op.(type) {
		case graphics.SaveLayerAlphaOp:
			layer = &o
		case graphics.RestoreOp:
			restores++
		}
	}
	if layer == nil {
		t.Fatal("expected a compositing layer at partial opacity")
	}
	if math.Abs(layer.Alpha-0.5) > 1e-3 {
		t.Fatalf("expected layer alpha near 0.5, got %v", layer.Alpha)
	}
	if restores == 0 {
		t.Fatal("expected the layer to be restored")
	}
}

func TestFade_ZeroOpacitySkipsChildren(t *testing.T) {
	tr, _, fadeID := newFadeTree(t)
	err := tr.Mutate(fadeID, func(m *tree.Mutation) error {
		fade, err := tree.WidgetAs[*Fade](m)
		if err != nil {
			return err
		}
		fade.SetOpacity(0)
		m.OnlyPaint()
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	for _, op := range tr.FlushPaint().Ops() {
		if text, ok := op.(graphics.TextOp); ok && text.Text == "content" {
			t.Fatal("expected hidden children left out of the scene")
		}
	}
}

func TestFade_SetOpacityJumpsWithoutFrames(t *testing.T) {
	tr, fade, fadeID := newFadeTree(t)
	err := tr.Mutate(fadeID, func(m *tree.Mutation) error {
		widget, err := tree.WidgetAs[*Fade](m)
		if err != nil {
			return err
		}
		widget.SetOpacity(0.25)
		m.OnlyPaint()
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	if fade.Opacity() != 0.25 {
		t.Fatalf("expected an immediate jump to 0.25, got %v", fade.Opacity())
	}
	if fade.Animating() {
		t.Fatal("expected no animation for a jump")
	}
	if tr.HasAnimFrameRequests() {
		t.Fatal("expected no frame requests for a jump")
	}
}
