package tree

import (
	"github.com/go-joist/joist/pkg/env"
)

// Action is an application-level message a widget emits in response to
// input, such as a button press. The tree never inspects actions; it
// queues them in submission order and hands them to the delegate.
type Action interface{}

type actionRecord struct {
	action Action
	origin WidgetID
}

// Delegate receives drained actions after each event cycle. The context
// allows structural edits and focus changes; every widget scope is free by
// the time the delegate runs.
type Delegate interface {
	OnAction(ctx *ActionContext, action Action, origin WidgetID)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(ctx *ActionContext, action Action, origin WidgetID)

func (f DelegateFunc) OnAction(ctx *ActionContext, action Action, origin WidgetID) {
	f(ctx, action, origin)
}

// ActionContext is the tree handle a delegate works through.
type ActionContext struct {
	tree *Tree
}

// Tree returns the tree the action came from.
func (ctx *ActionContext) Tree() *Tree { return ctx.tree }

// Root returns the root widget id.
func (ctx *ActionContext) Root() WidgetID { return ctx.tree.Root() }

// Env returns the tree's environment.
func (ctx *ActionContext) Env() *env.Env { return ctx.tree.Env() }

// Mutate opens a mutation scope, as Tree.Mutate.
func (ctx *ActionContext) Mutate(id WidgetID, fn func(m *Mutation) error) error {
	return ctx.tree.Mutate(id, fn)
}

// Insert adds a widget, as Tree.Insert.
func (ctx *ActionContext) Insert(parent WidgetID, w Widget) (WidgetID, error) {
	return ctx.tree.Insert(parent, w)
}

// Remove detaches and destroys a subtree, as Tree.Remove.
func (ctx *ActionContext) Remove(id WidgetID) error {
	return ctx.tree.Remove(id)
}

// SetFocus moves keyboard focus, as Tree.SetFocus.
func (ctx *ActionContext) SetFocus(id WidgetID) error {
	return ctx.tree.SetFocus(id)
}

// ClearFocus removes keyboard focus, as Tree.ClearFocus.
func (ctx *ActionContext) ClearFocus() {
	ctx.tree.ClearFocus()
}

// SetDelegate installs the action receiver. Passing nil detaches it, after
// which actions accumulate until popped manually.
func (t *Tree) SetDelegate(d Delegate) {
	t.delegate = d
}

// SubmitAction queues an action for the next drain. A zero origin marks an
// action submitted from outside any widget.
func (t *Tree) SubmitAction(action Action, origin WidgetID) {
	t.actions = append(t.actions, actionRecord{action: action, origin: origin})
}

// PopAction removes and returns the oldest queued action. It reports false
// when the queue is empty.
func (t *Tree) PopAction() (Action, WidgetID, bool) {
	if len(t.actions) == 0 {
		return nil, 0, false
	}
	rec := t.actions[0]
	t.actions = t.actions[1:]
	return rec.action, rec.origin, true
}

// FlushActions hands every queued action to the delegate in submission
// order, including actions the delegate's own handling enqueues. Without a
// delegate the queue is left alone.
func (t *Tree) FlushActions() {
	t.drainActions()
}

func (t *Tree) drainActions() {
	if t.delegate == nil || t.draining {
		return
	}
	t.draining = true
	defer func() { t.draining = false }()
	ctx := &ActionContext{tree: t}
	for len(t.actions) > 0 {
		rec := t.actions[0]
		t.actions = t.actions[1:]
		t.delegate.OnAction(ctx, rec.action, rec.origin)
	}
}
