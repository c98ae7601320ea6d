// Package tree implements the retained widget tree: an id-indexed arena of
// widget nodes, the mutation gateway that is the only sanctioned way to
// change them, the layout and paint passes that turn the hierarchy into a
// scene of drawing commands, and the event pipeline that routes input and
// collects application actions.
//
// A Tree is single-threaded and cooperative: every public operation runs to
// completion before the next is accepted, and exclusive access is enforced
// by scope bookkeeping rather than locks.
package tree

import (
	"fmt"

	"github.com/go-joist/joist/pkg/env"
	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
)

// Tree owns a hierarchy of widgets rooted at a single node.
type Tree struct {
	nodes map[WidgetID]*node
	root  WidgetID
	env   *env.Env

	// Explicit per-tree interaction state, cleared when the referenced
	// node is removed.
	focus   WidgetID
	hover   WidgetID
	capture WidgetID

	// held tracks mutation scopes currently outstanding, including the
	// implicit scope around a widget's own event handler.
	held []WidgetID

	actions  []actionRecord
	delegate Delegate
	draining bool

	// animRequests preserves request order for deterministic delivery.
	animRequests []WidgetID
	animSet      map[WidgetID]struct{}

	scene      *graphics.DisplayList
	semantics  *SemanticsNode
	lastWindow graphics.Size
}

// New creates a tree owning the given root widget, using the default
// environment.
func New(root Widget) *Tree {
	return NewWithEnv(root, env.Default())
}

// NewWithEnv creates a tree owning the given root widget, resolving
// environment reads against e.
func NewWithEnv(root Widget, e *env.Env) *Tree {
	t := &Tree{
		nodes:   make(map[WidgetID]*node),
		env:     e,
		animSet: make(map[WidgetID]struct{}),
	}
	id := nextID()
	t.nodes[id] = &node{
		id:     id,
		widget: root,
		dirty:  DirtyLayout | DirtyPaint | DirtySemantics,
	}
	t.root = id
	return t
}

// Root returns the id of the root node.
func (t *Tree) Root() WidgetID { return t.root }

// Env returns the environment widgets resolve keyed values against.
func (t *Tree) Env() *env.Env { return t.env }

// WindowSize returns the window size of the last layout pass.
func (t *Tree) WindowSize() graphics.Size { return t.lastWindow }

// Len returns the number of live nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Exists reports whether the id names a live node.
func (t *Tree) Exists(id WidgetID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Insert adds a widget as the last child of parent and returns its new id.
// It fails with InvalidParentError if parent is absent or cannot host
// children, and with BorrowConflictError while any mutation scope is open
// (structural edits inside a mutation go through the scope instead).
func (t *Tree) Insert(parent WidgetID, w Widget) (WidgetID, error) {
	if len(t.held) > 0 {
		return 0, &BorrowConflictError{Held: t.held[len(t.held)-1], Requested: parent}
	}
	return t.insert(parent, w)
}

func (t *Tree) insert(parent WidgetID, w Widget) (WidgetID, error) {
	pn, ok := t.nodes[parent]
	if !ok {
		return 0, &InvalidParentError{Parent: parent}
	}
	host, ok := pn.widget.(childHost)
	if !ok {
		return 0, &InvalidParentError{Parent: parent, Reason: "widget cannot host children"}
	}

	id := nextID()
	t.nodes[id] = &node{
		id:     id,
		widget: w,
		parent: parent,
		dirty:  DirtyLayout | DirtyPaint | DirtySemantics,
	}
	pn.children = append(pn.children, id)
	host.adoptChild(id)
	t.markDirty(parent, DirtyLayout)
	return id, nil
}

// Remove detaches the node and destroys its entire subtree. Every contained
// id stops resolving; focus, hover, and pointer capture pointing into the
// subtree are cleared. It fails with UnknownIDError if the id is absent and
// with BorrowConflictError while any mutation scope is open.
func (t *Tree) Remove(id WidgetID) error {
	if len(t.held) > 0 {
		return &BorrowConflictError{Held: t.held[len(t.held)-1], Requested: id}
	}
	return t.remove(id)
}

func (t *Tree) remove(id WidgetID) error {
	n, ok := t.nodes[id]
	if !ok {
		return &UnknownIDError{ID: id}
	}
	if id == t.root {
		return fmt.Errorf("tree: cannot remove the root widget")
	}

	parent := n.parent
	pn := t.nodes[parent]
	for i, c := range pn.children {
		if c == id {
			pn.children = append(pn.children[:i], pn.children[i+1:]...)
			break
		}
	}
	if host, ok := pn.widget.(childHost); ok {
		host.orphanChild(id)
	}

	t.destroySubtree(id)
	t.markDirty(parent, DirtyLayout)
	return nil
}

// destroySubtree deletes the node and all descendants post-order and clears
// interaction state referencing them.
func (t *Tree) destroySubtree(id WidgetID) {
	n := t.nodes[id]
	for _, c := range n.children {
		t.destroySubtree(c)
	}
	if t.focus == id {
		t.focus = 0
	}
	if t.hover == id {
		t.hover = 0
	}
	if t.capture == id {
		t.capture = 0
	}
	if _, ok := t.animSet[id]; ok {
		delete(t.animSet, id)
		for i, r := range t.animRequests {
			if r == id {
				t.animRequests = append(t.animRequests[:i], t.animRequests[i+1:]...)
				break
			}
		}
	}
	delete(t.nodes, id)
}

// Node returns a read-only view of the node.
func (t *Tree) Node(id WidgetID) (NodeRef, error) {
	if _, ok := t.nodes[id]; !ok {
		return NodeRef{}, &UnknownIDError{ID: id}
	}
	return NodeRef{tree: t, id: id}, nil
}

// Ancestors returns the chain of ancestor ids nearest-first, ending at the
// root. The root itself has no ancestors.
func (t *Tree) Ancestors(id WidgetID) ([]WidgetID, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, &UnknownIDError{ID: id}
	}
	var out []WidgetID
	for n.parent != 0 {
		out = append(out, n.parent)
		n = t.nodes[n.parent]
	}
	return out, nil
}

// MarkDirty sets invalidation bits on the node and propagates them upward:
// a layout-dirty node makes every ancestor layout-dirty and paint-dirty, a
// paint-dirty node makes every ancestor paint-dirty. Propagation never
// flows downward.
func (t *Tree) MarkDirty(id WidgetID, bits Dirty) error {
	if _, ok := t.nodes[id]; !ok {
		return &UnknownIDError{ID: id}
	}
	t.markDirty(id, bits)
	return nil
}

func (t *Tree) markDirty(id WidgetID, bits Dirty) {
	if bits == 0 {
		return
	}
	n := t.nodes[id]
	self := bits
	if bits.Has(DirtyLayout) {
		// A relaid node repaints.
		self |= DirtyPaint
	}
	n.dirty |= self

	up := self
	for p := n.parent; p != 0; {
		pn := t.nodes[p]
		if pn.dirty.Has(up) {
			break
		}
		pn.dirty |= up
		p = pn.parent
	}
}

// Walk visits every live node pre-order in structural order.
func (t *Tree) Walk(fn func(ref NodeRef, depth int)) {
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(id WidgetID, depth int, fn func(ref NodeRef, depth int)) {
	fn(NodeRef{tree: t, id: id}, depth)
	for _, c := range t.nodes[id].children {
		t.walk(c, depth+1, fn)
	}
}

// mustNode returns the node or panics; for internal paths where a missing
// id means the tree's own bookkeeping is broken.
func (t *Tree) mustNode(id WidgetID) *node {
	n, ok := t.nodes[id]
	if !ok {
		panic(&errors.JoistError{
			Op:   "tree.mustNode",
			Kind: errors.KindIntegrity,
			Err:  &UnknownIDError{ID: id},
		})
	}
	return n
}

// globalOrigin derives the node's position in root coordinates.
func (t *Tree) globalOrigin(id WidgetID) graphics.Offset {
	var out graphics.Offset
	for id != 0 {
		n := t.mustNode(id)
		out = out.Add(n.origin)
		id = n.parent
	}
	return out
}

// isAncestorOf reports whether a is a proper ancestor of b.
func (t *Tree) isAncestorOf(a, b WidgetID) bool {
	n := t.nodes[b]
	if n == nil {
		return false
	}
	for p := n.parent; p != 0; p = t.nodes[p].parent {
		if p == a {
			return true
		}
	}
	return false
}

// validate checks structural integrity: parent/child links agree, widget
// child declarations match the tree's bookkeeping, and every node is
// reachable from the root. Violations are invariant breaks, not
// recoverable errors.
func (t *Tree) validate() error {
	seen := 0
	var check func(id WidgetID) error
	check = func(id WidgetID) error {
		n, ok := t.nodes[id]
		if !ok {
			return fmt.Errorf("child %d is not in the arena", id)
		}
		seen++
		declared := n.widget.Children()
		if len(declared) != len(n.children) {
			return fmt.Errorf("widget %d declares %d children, tree has %d",
				id, len(declared), len(n.children))
		}
		for i, c := range n.children {
			if declared[i] != c {
				return fmt.Errorf("widget %d child %d: declares %d, tree has %d",
					id, i, declared[i], c)
			}
			cn, ok := t.nodes[c]
			if !ok {
				return fmt.Errorf("child %d of %d is not in the arena", c, id)
			}
			if cn.parent != id {
				return fmt.Errorf("child %d has parent %d, expected %d", c, cn.parent, id)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(t.root); err != nil {
		return err
	}
	if seen != len(t.nodes) {
		return fmt.Errorf("%d nodes unreachable from the root", len(t.nodes)-seen)
	}
	return nil
}

// checkIntegrity runs validation at a pass boundary. Fatal in debug mode;
// reported otherwise.
func (t *Tree) checkIntegrity(op string) {
	err := t.validate()
	if err == nil {
		return
	}
	je := &errors.JoistError{Op: op, Kind: errors.KindIntegrity, Err: err}
	if errors.DebugMode {
		panic(je)
	}
	errors.Report(je)
}
