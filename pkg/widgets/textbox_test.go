package widgets

import (
	"testing"

	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/input"
	"github.com/go-joist/joist/pkg/tree"
)

// newTextBoxTree builds a tree with a single text box filling the window
// width, laid out and painted once.
func newTextBoxTree(t *testing.T, box *TextBox) (*tree.Tree, tree.WidgetID) {
	t.Helper()
	tr := tree.New(NewStack())
	id := mustInsert(t, tr, tr.Root(), box)
	pump(t, tr)
	return tr, id
}

func popTextChanged(t *testing.T, tr *tree.Tree) TextChanged {
	t.Helper()
	action, _, ok := tr.PopAction()
	if !ok {
		t.Fatal("expected a pending action")
	}
	changed, ok := action.(TextChanged)
	if !ok {
		t.Fatalf("expected TextChanged, got %T", action)
	}
	return changed
}

func TestTextBox_ClaimsOfferedWidth(t *testing.T) {
	tr, id := newTextBoxTree(t, NewTextBox())

	// One 13px line plus 4px vertical padding each side; width stretches
	// to the bounded offer.
	want := graphics.Size{Width: testWindow.Width, Height: 13 + 8}
	if got := nodeRef(t, tr, id).Size(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTextBox_ClickFocusesAndPlacesCaret(t *testing.T) {
	box := NewTextBox()
	box.SetText("hello")
	tr, id := newTextBoxTree(t, box)

	// 6px left padding plus three 7px glyphs puts the boundary after
	// "hel" at x=27.
	click(tr, 27, 10)

	if tr.Focus() != id {
		t.Fatalf("expected focus on the text box, got %d", tr.Focus())
	}
	if box.Caret() != 3 {
		t.Fatalf("expected the caret after three runes, got %d", box.Caret())
	}
}

func TestTextBox_TypingEditsAndEmits(t *testing.T) {
	tr, id := newTextBoxTree(t, NewTextBox())
	click(tr, 10, 10)

	typeText(tr, "hi")
	typeText(tr, "!")

	first := popTextChanged(t, tr)
	if first.Text != "hi" {
		t.Fatalf("expected the first change to carry %q, got %q", "hi", first.Text)
	}
	second := popTextChanged(t, tr)
	if second.Text != "hi!" {
		t.Fatalf("expected the second change to carry %q, got %q", "hi!", second.Text)
	}
	if _, _, ok := tr.PopAction(); ok {
		t.Fatal("expected exactly one action per text event")
	}

	ref := nodeRef(t, tr, id)
	box := ref.Widget().(*TextBox)
	if box.Text() != "hi!" || box.Caret() != 3 {
		t.Fatalf("expected %q with the caret at the end, got %q at %d",
			"hi!", box.Text(), box.Caret())
	}
}

func TestTextBox_EditingKeys(t *testing.T) {
	box := NewTextBox()
	box.SetText("abc")
	tr, _ := newTextBoxTree(t, box)
	click(tr, 280, 10) // past the text, caret lands at the end
	if box.Caret() != 3 {
		t.Fatalf("expected the caret at the end, got %d", box.Caret())
	}

	pressKey(tr, input.KeyBackspace) // "ab", caret 2
	pressKey(tr, input.KeyArrowLeft) // caret 1
	pressKey(tr, input.KeyDelete)    // "a", caret 1
	pressKey(tr, input.KeyHome)      // caret 0
	typeText(tr, "z")                // "za", caret 1
	pressKey(tr, input.KeyEnd)       // caret 2

	if box.Text() != "za" || box.Caret() != 2 {
		t.Fatalf("expected %q with the caret at 2, got %q at %d",
			"za", box.Text(), box.Caret())
	}
	for _, want := range []string{"ab", "a", "za"} {
		if got := popTextChanged(t, tr); got.Text != want {
			t.Fatalf("expected TextChanged %q, got %q", want, got.Text)
		}
	}
	if _, _, ok := tr.PopAction(); ok {
		t.Fatal("expected no change actions for pure caret movement")
	}
}

func TestTextBox_EnterSubmits(t *testing.T) {
	tr, id := newTextBoxTree(t, NewTextBox())
	click(tr, 10, 10)
	typeText(tr, "go")
	if got := popTextChanged(t, tr); got.Text != "go" {
		t.Fatalf("expected TextChanged %q, got %q", "go", got.Text)
	}

	pressKey(tr, input.KeyEnter)

	action, origin, ok := tr.PopAction()
	if !ok {
		t.Fatal("expected an action after enter")
	}
	submitted, ok := action.(TextSubmitted)
	if !ok {
		t.Fatalf("expected TextSubmitted, got %T", action)
	}
	if submitted.Text != "go" {
		t.Fatalf("expected the submitted text %q, got %q", "go", submitted.Text)
	}
	if origin != id {
		t.Fatalf("expected origin %d, got %d", id, origin)
	}
}

func TestTextBox_EscapeReleasesFocus(t *testing.T) {
	box := NewTextBox()
	tr, _ := newTextBoxTree(t, box)
	click(tr, 10, 10)

	pressKey(tr, input.KeyEscape)

	if tr.Focus() != 0 {
		t.Fatalf("expected focus cleared, got %d", tr.Focus())
	}
	typeText(tr, "lost")
	if box.Text() != "" {
		t.Fatalf("expected text events dropped without focus, got %q", box.Text())
	}
}

func TestTextBox_PlaceholderWhileEmpty(t *testing.T) {
	tr, _ := newTextBoxTree(t, NewTextBox().WithPlaceholder("Search"))

	scene := tr.FlushPaint()
	var sawHint bool
	for _, op := range scene.Ops() {
		if text, ok := op.(graphics.TextOp); ok && text.Text == "Search" {
			sawHint = true
		}
	}
	if !sawHint {
		t.Fatal("expected the placeholder in the empty scene")
	}

	click(tr, 10, 10)
	typeText(tr, "x")
	tr.FlushLayout(testWindow)
	scene = tr.FlushPaint()
	for _, op := range scene.Ops() {
		if text, ok := op.(graphics.TextOp); ok && text.Text == "Search" {
			t.Fatal("expected the placeholder gone once content exists")
		}
	}
}

func TestTextBox_CaretDrawnOnlyWhenFocused(t *testing.T) {
	tr, _ := newTextBoxTree(t, NewTextBox())

	for _, op := range tr.FlushPaint().Ops() {
		if _, ok := op.(graphics.LineOp); ok {
			t.Fatal("expected no caret before focus")
		}
	}

	click(tr, 10, 10)
	var caret *graphics.LineOp
	for _, op := range tr.FlushPaint().Ops() {
		if line, ok := op.(graphics.LineOp); ok {
			caret = &line
		}
	}
	if caret == nil {
		t.Fatal("expected a caret line once focused")
	}
	if caret.From.X != 6 {
		t.Fatalf("expected the caret at the left padding, got x=%v", caret.From.X)
	}
}

func TestTextBox_FocusChangesBorderColor(t *testing.T) {
	tr, _ := newTextBoxTree(t, NewTextBox())
	focused := tr.Env().Color(env.TextBoxBorderFocused)

	click(tr, 10, 10)

	var sawFocusBorder bool
	for _, op := range tr.FlushPaint().Ops() {
		if rect, ok := op.(graphics.RectOp); ok {
			if rect.Paint.Style == graphics.PaintStyleStroke && rect.Paint.Color == focused {
				sawFocusBorder = true
			}
		}
	}
	if !sawFocusBorder {
		t.Fatal("expected the focused border color after the click")
	}
}

func TestTextBox_Describe(t *testing.T) {
	box := NewTextBox().WithPlaceholder("Name")
	box.SetText("Ada")
	sem := box.Describe()
	if sem.Role != "textbox" || sem.Label != "Name" || sem.Value != "Ada" {
		t.Fatalf("unexpected semantics %+v", sem)
	}
}
