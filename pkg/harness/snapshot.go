package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/mod/semver"

	"github.com/go-joist/joist/pkg/graphics"
	"github.com/go-joist/joist/pkg/tree"
)

// SnapshotVersion is the format version stamped into stored snapshots.
// Stored files with a different major version fail the compatibility check
// instead of producing a misleading content diff.
const SnapshotVersion = "v1.0.0"

// TestingT is the subset of *testing.T used by MatchSnapshot, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree structure and the recorded scene.
type Snapshot struct {
	Version string     `json:"version"`
	Window  [2]float64 `json:"window"`
	Tree    *TreeNode  `json:"tree"`
	Ops     []SceneOp  `json:"ops,omitempty"`
}

// TreeNode is one widget in the serialized tree. Its ID is a type-ordinal
// label like "Button#0", stable across runs; arena ids never appear.
type TreeNode struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Size      [2]float64        `json:"size"`
	Origin    [2]float64        `json:"origin"`
	Semantics map[string]string `json:"semantics,omitempty"`
	Children  []*TreeNode       `json:"children,omitempty"`
}

// SceneOp is one serialized canvas operation.
type SceneOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Snapshot pumps to quiescence and captures the tree and scene.
func (h *Harness) Snapshot() *Snapshot {
	scene := h.Pump()
	snap := &Snapshot{
		Version: SnapshotVersion,
		Window:  [2]float64{round2(h.window.Width), round2(h.window.Height)},
		Ops:     serializeScene(scene),
	}
	counter := &typeCounter{}
	root, err := h.tree.Node(h.tree.Root())
	if err == nil {
		snap.Tree = captureTreeNode(h.tree, root, counter)
	}
	return snap
}

// TreeDump pumps to quiescence and returns an indented structural dump,
// one widget per line, stable and diff-friendly:
//
//	Stack#0 [0,0 300x200]
//	  Button#0 [10,0 52x25]
func (h *Harness) TreeDump() string {
	h.Pump()
	var buf bytes.Buffer
	counter := &typeCounter{}
	h.tree.Walk(func(ref tree.NodeRef, depth int) {
		for i := 0; i < depth; i++ {
			buf.WriteString("  ")
		}
		origin := ref.Origin()
		size := ref.Size()
		fmt.Fprintf(&buf, "%s [%g,%g %gx%g]\n",
			counter.next(widgetTypeName(ref.Widget())),
			round2(origin.X), round2(origin.Y),
			round2(size.Width), round2(size.Height))
	})
	return buf.String()
}

// MatchSnapshot compares the current snapshot against a golden file. On
// mismatch it reports a diff and instructions for updating. When
// JOIST_UPDATE_SNAPSHOTS=1 is set, the file is rewritten instead.
func (h *Harness) MatchSnapshot(t TestingT, path string) {
	t.Helper()
	snap := h.Snapshot()

	if os.Getenv("JOIST_UPDATE_SNAPSHOTS") == "1" {
		if err := snap.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: JOIST_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if !semver.IsValid(expected.Version) || semver.Major(expected.Version) != semver.Major(SnapshotVersion) {
		t.Fatalf("snapshot %s has incompatible version %q (current %s)\n\nTo regenerate: JOIST_UPDATE_SNAPSHOTS=1 go test -run %s",
			path, expected.Version, SnapshotVersion, t.Name())
		return
	}

	if diff := cmp.Diff(expected, snap); diff != "" {
		t.Errorf("snapshot mismatch: %s (-golden +current)\n%s\n\nTo update: JOIST_UPDATE_SNAPSHOTS=1 go test -run %s",
			path, diff, t.Name())
	}
}

// UpdateFile writes the snapshot to the given path, creating directories as
// needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// --- Internal ---

// typeCounter assigns stable labels like "Button#0", "Button#1" in visit
// order.
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func widgetTypeName(w tree.Widget) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func captureTreeNode(tr *tree.Tree, ref tree.NodeRef, counter *typeCounter) *TreeNode {
	typeName := widgetTypeName(ref.Widget())
	origin := ref.Origin()
	size := ref.Size()

	node := &TreeNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Size:   [2]float64{round2(size.Width), round2(size.Height)},
		Origin: [2]float64{round2(origin.X), round2(origin.Y)},
	}
	if describer, ok := ref.Widget().(tree.Describer); ok {
		sem := describer.Describe()
		props := make(map[string]string)
		if sem.Role != "" {
			props["role"] = sem.Role
		}
		if sem.Label != "" {
			props["label"] = sem.Label
		}
		if sem.Value != "" {
			props["value"] = sem.Value
		}
		if len(props) > 0 {
			node.Semantics = props
		}
	}

	for _, child := range ref.Children() {
		childRef, err := tr.Node(child)
		if err != nil {
			continue
		}
		node.Children = append(node.Children, captureTreeNode(tr, childRef, counter))
	}
	return node
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// serializeScene flattens a display list into data-only op records with
// deterministic parameter keys.
func serializeScene(dl *graphics.DisplayList) []SceneOp {
	if dl == nil {
		return nil
	}
	ops := make([]SceneOp, 0, dl.Len())
	for _, op := range dl.Ops() {
		record := SceneOp{Op: op.Name()}
		switch o := op.(type) {
		case graphics.SaveLayerAlphaOp:
			record.Params = map[string]any{
				"bounds": serializeRect(o.Bounds),
				"alpha":  round2(o.Alpha),
			}
		case graphics.TranslateOp:
			record.Params = map[string]any{"dx": round2(o.DX), "dy": round2(o.DY)}
		case graphics.ClipRectOp:
			record.Params = map[string]any{"rect": serializeRect(o.Rect)}
		case graphics.ClearOp:
			record.Params = map[string]any{"color": serializeColor(o.Color)}
		case graphics.RectOp:
			record.Params = map[string]any{"rect": serializeRect(o.Rect)}
			addPaint(record.Params, o.Paint)
		case graphics.RRectOp:
			record.Params = map[string]any{
				"rect":   serializeRect(o.RRect.Rect),
				"radius": round2(o.RRect.Radius),
			}
			addPaint(record.Params, o.Paint)
		case graphics.CircleOp:
			record.Params = map[string]any{
				"cx":     round2(o.Center.X),
				"cy":     round2(o.Center.Y),
				"radius": round2(o.Radius),
			}
			addPaint(record.Params, o.Paint)
		case graphics.LineOp:
			record.Params = map[string]any{
				"x1": round2(o.From.X), "y1": round2(o.From.Y),
				"x2": round2(o.To.X), "y2": round2(o.To.Y),
			}
			addPaint(record.Params, o.Paint)
		case graphics.TextOp:
			record.Params = map[string]any{
				"text":  o.Text,
				"x":     round2(o.Position.X),
				"y":     round2(o.Position.Y),
				"color": serializeColor(o.Style.Color),
				"scale": round2(o.Style.Scale),
			}
		}
		ops = append(ops, record)
	}
	return ops
}

func addPaint(params map[string]any, p graphics.Paint) {
	params["color"] = serializeColor(p.Color)
	if p.Style == graphics.PaintStyleStroke {
		params["style"] = "stroke"
		params["stroke_width"] = round2(p.StrokeWidth)
	}
}

func serializeRect(r graphics.Rect) map[string]any {
	return map[string]any{
		"left":   round2(r.Left),
		"top":    round2(r.Top),
		"right":  round2(r.Right),
		"bottom": round2(r.Bottom),
	}
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
