package tree

import (
	stderrors "errors"
	"fmt"

	"github.com/go-joist/joist/pkg/graphics"
)

// errMissingLayout guards passes that need a laid-out tree.
var errMissingLayout = stderrors.New("paint requested before any layout pass")

// UnknownIDError reports an operation that referenced a dead or nonexistent
// widget id.
type UnknownIDError struct {
	ID WidgetID
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("widget %d does not exist", e.ID)
}

// InvalidParentError reports an insertion under a parent that is absent or
// cannot host children.
type InvalidParentError struct {
	Parent WidgetID
	Reason string
}

func (e *InvalidParentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "does not exist"
	}
	return fmt.Sprintf("invalid parent %d: %s", e.Parent, reason)
}

// BorrowConflictError reports a request for mutation access that overlaps a
// scope already held. The tree is left untouched.
type BorrowConflictError struct {
	Held      WidgetID
	Requested WidgetID
}

func (e *BorrowConflictError) Error() string {
	return fmt.Sprintf("mutation scope for widget %d conflicts with held scope for widget %d",
		e.Requested, e.Held)
}

// TypeMismatchError reports a mutation handle downcast to a widget variant
// the underlying widget is not.
type TypeMismatchError struct {
	ID   WidgetID
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("widget %d is %s, not %s", e.ID, e.Got, e.Want)
}

// ConstraintViolationError reports a widget whose Layout returned a size
// outside the constraints its parent handed it. This is a programming
// error: fatal in debug mode, clamped and reported otherwise.
type ConstraintViolationError struct {
	ID          WidgetID
	Constraints graphics.Constraints
	Size        graphics.Size
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("widget %d returned size %v outside %v", e.ID, e.Size, e.Constraints)
}

// UnplacedChildError reports a parent that laid out a child but never
// placed it, or skipped a child it declares.
type UnplacedChildError struct {
	ID     WidgetID
	Parent WidgetID
}

func (e *UnplacedChildError) Error() string {
	return fmt.Sprintf("widget %d was not laid out and placed by parent %d", e.ID, e.Parent)
}

// NotAChildError reports a layout call that named a widget the caller is
// not the parent of.
type NotAChildError struct {
	ID     WidgetID
	Parent WidgetID
}

func (e *NotAChildError) Error() string {
	return fmt.Sprintf("widget %d is not a child of widget %d", e.ID, e.Parent)
}
