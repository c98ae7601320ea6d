package graphics

// Op is one recorded drawing operation. The set of operations is closed;
// renderers consume them with a type switch over the exported structs.
type Op interface {
	// Name returns the stable lowercase identifier of the operation,
	// used in serialized scene output.
	Name() string

	apply(canvas Canvas)
}

// SaveOp pushes transform and clip state.
type SaveOp struct{}

// SaveLayerAlphaOp opens a compositing layer with the given opacity.
type SaveLayerAlphaOp struct {
	Bounds Rect
	Alpha  float64
}

// RestoreOp pops the most recent saved state.
type RestoreOp struct{}

// TranslateOp moves the origin.
type TranslateOp struct {
	DX float64
	DY float64
}

// ClipRectOp restricts drawing to a rectangle.
type ClipRectOp struct {
	Rect Rect
}

// ClearOp fills the whole canvas with a color.
type ClearOp struct {
	Color Color
}

// RectOp draws a rectangle.
type RectOp struct {
	Rect  Rect
	Paint Paint
}

// RRectOp draws a rounded rectangle.
type RRectOp struct {
	RRect RRect
	Paint Paint
}

// CircleOp draws a circle.
type CircleOp struct {
	Center Offset
	Radius float64
	Paint  Paint
}

// LineOp draws a line segment.
type LineOp struct {
	From  Offset
	To    Offset
	Paint Paint
}

// TextOp draws a single line of text.
type TextOp struct {
	Text     string
	Position Offset
	Style    TextStyle
}

func (SaveOp) Name() string           { return "save" }
func (SaveLayerAlphaOp) Name() string { return "save_layer_alpha" }
func (RestoreOp) Name() string        { return "restore" }
func (TranslateOp) Name() string      { return "translate" }
func (ClipRectOp) Name() string       { return "clip_rect" }
func (ClearOp) Name() string          { return "clear" }
func (RectOp) Name() string           { return "rect" }
func (RRectOp) Name() string          { return "rrect" }
func (CircleOp) Name() string         { return "circle" }
func (LineOp) Name() string           { return "line" }
func (TextOp) Name() string           { return "text" }

func (SaveOp) apply(c Canvas) { c.Save() }
func (op SaveLayerAlphaOp) apply(c Canvas) {
	c.SaveLayerAlpha(op.Bounds, op.Alpha)
}
func (RestoreOp) apply(c Canvas)      { c.Restore() }
func (op TranslateOp) apply(c Canvas) { c.Translate(op.DX, op.DY) }
func (op ClipRectOp) apply(c Canvas)  { c.ClipRect(op.Rect) }
func (op ClearOp) apply(c Canvas)     { c.Clear(op.Color) }
func (op RectOp) apply(c Canvas)      { c.DrawRect(op.Rect, op.Paint) }
func (op RRectOp) apply(c Canvas)     { c.DrawRRect(op.RRect, op.Paint) }
func (op CircleOp) apply(c Canvas) {
	c.DrawCircle(op.Center, op.Radius, op.Paint)
}
func (op LineOp) apply(c Canvas) { c.DrawLine(op.From, op.To, op.Paint) }
func (op TextOp) apply(c Canvas) { c.DrawText(op.Text, op.Position, op.Style) }

// DisplayList is an immutable ordered list of drawing operations, the scene
// a paint pass produces. It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []Op
	size Size
}

// Ops returns the recorded operations in paint order. The returned slice
// must not be modified.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Replay applies the recorded operations onto the provided canvas in order.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.apply(canvas)
	}
}

// Recorder records drawing commands into a display list.
type Recorder struct {
	ops       []Op
	recording bool
	size      Size
}

// Begin starts a new recording session and returns the canvas to draw into.
func (r *Recorder) Begin(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// End finishes the recording and returns the display list.
func (r *Recorder) End() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *Recorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *Recorder
	size     Size
}

func (c *recordingCanvas) Save() { c.recorder.append(SaveOp{}) }

func (c *recordingCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.recorder.append(SaveLayerAlphaOp{Bounds: bounds, Alpha: alpha})
}

func (c *recordingCanvas) Restore() { c.recorder.append(RestoreOp{}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(TranslateOp{DX: dx, DY: dy})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(ClipRectOp{Rect: rect})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(ClearOp{Color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(RectOp{Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(RRectOp{RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(CircleOp{Center: center, Radius: radius, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(LineOp{From: start, To: end, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, style TextStyle) {
	c.recorder.append(TextOp{Text: text, Position: position, Style: style})
}

func (c *recordingCanvas) Size() Size { return c.size }
