package widgets

import (
	"testing"

	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
	"github.com/go-joist/joist/pkg/tree"
)

var testWindow = graphics.Size{Width: 300, Height: 200}

func pump(t *testing.T, tr *tree.Tree) *graphics.DisplayList {
	t.Helper()
	tr.FlushLayout(testWindow)
	return tr.FlushPaint()
}

func mustInsert(t *testing.T, tr *tree.Tree, parent tree.WidgetID, w tree.Widget) tree.WidgetID {
	t.Helper()
	id, err := tr.Insert(parent, w)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	return id
}

func nodeRef(t *testing.T, tr *tree.Tree, id tree.WidgetID) tree.NodeRef {
	t.Helper()
	ref, err := tr.Node(id)
	if err != nil {
		t.Fatalf("node %d: %v", id, err)
	}
	return ref
}

func click(tr *tree.Tree, x, y float64) {
	tr.Dispatch(input.PointerEvent{
		Phase:    input.PointerPhaseDown,
		Position: graphics.Offset{X: x, Y: y},
		Button:   input.ButtonPrimary,
	})
	tr.Dispatch(input.PointerEvent{
		Phase:    input.PointerPhaseUp,
		Position: graphics.Offset{X: x, Y: y},
		Button:   input.ButtonPrimary,
	})
}

func typeText(tr *tree.Tree, text string) {
	tr.Dispatch(input.TextEvent{Text: text})
}

func pressKey(tr *tree.Tree, key input.Key) {
	tr.Dispatch(input.KeyEvent{Phase: input.KeyPhaseDown, Key: key})
	tr.Dispatch(input.KeyEvent{Phase: input.KeyPhaseUp, Key: key})
}
