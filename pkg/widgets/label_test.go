package widgets

import (
	"testing"

	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

func TestLabel_SizesToText(t *testing.T) {
	tr := tree.New(NewStack())
	id := mustInsert(t, tr, tr.Root(), NewLabel("Hello"))
	pump(t, tr)

	want := graphics.Size{Width: 5 * 7, Height: 13}
	if got := nodeRef(t, tr, id).Size(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLabel_PaintsItsText(t *testing.T) {
	tr := tree.New(NewStack())
	mustInsert(t, tr, tr.Root(), NewLabel("Hello"))
	scene := pump(t, tr)

	var sawText bool
	for _, op := range scene.Ops() {
		if text, ok := op.(graphics.TextOp); ok && text.Text == "Hello" {
			sawText = true
		}
	}
	if !sawText {
		t.Fatal("expected the scene to contain the label text")
	}
}

func TestLabel_ColorOverride(t *testing.T) {
	tr := tree.New(NewStack())
	mustInsert(t, tr, tr.Root(), NewLabel("Hi").WithColor(graphics.ColorRed))
	scene := pump(t, tr)

	for _, op := range scene.Ops() {
		if text, ok := op.(graphics.TextOp); ok {
			if text.Style.Color != graphics.ColorRed {
				t.Fatalf("expected red text, got %v", text.Style.Color)
			}
			return
		}
	}
	t.Fatal("expected a text op in the scene")
}

func TestLabel_SetTextReflows(t *testing.T) {
	tr := tree.New(NewStack())
	id := mustInsert(t, tr, tr.Root(), NewLabel("Hi"))
	pump(t, tr)

	err := tr.Mutate(id, func(m *tree.Mutation) error {
		label, err := tree.WidgetAs[*Label](m)
		if err != nil {
			return err
		}
		label.SetText("Hello there")
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	pump(t, tr)

	want := graphics.Size{Width: 11 * 7, Height: 13}
	if got := nodeRef(t, tr, id).Size(); got != want {
		t.Fatalf("expected %v after the edit, got %v", want, got)
	}
}

func TestLabel_Describe(t *testing.T) {
	sem := NewLabel("Hello").Describe()
	if sem.Role != "label" || sem.Label != "Hello" {
		t.Fatalf("unexpected semantics %+v", sem)
	}
}
