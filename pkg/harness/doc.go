// Package harness drives a widget tree headlessly for tests.
//
// # Quick Start
//
// Create a harness, build a tree, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    h := harness.NewWithT(t, widgets.NewColumn())
//	    button, _ := h.Tree().Insert(h.Tree().Root(), widgets.NewButton("+1"))
//
//	    if err := h.MouseClickOn(button); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    action, origin, ok := h.PopAction()
//	    if !ok || origin != button {
//	        t.Fatalf("expected a press from %d, got %v from %d", button, action, origin)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the tree structure and scene, and compare against a golden file:
//
//	h.MatchSnapshot(t, "testdata/counter.snapshot.json")
//
// Update goldens with:
//
//	JOIST_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Time is fake and only moves when advanced, so animation tests are
// deterministic:
//
//	h.AdvanceTime(100 * time.Millisecond)
//
// Every accessor that inspects layout or paint first pumps the tree to
// quiescence, so tests rarely need to pump by hand.
package harness
