// Package errors provides structured error reporting for the Joist runtime.
//
// The recoverable error taxonomy (unknown ids, borrow conflicts, type
// mismatches) lives with the tree package that produces it; this package
// carries the reporting side: the envelope for runtime failures that are
// clamped rather than returned, the global handler they are delivered to,
// and the debug-mode switch deciding between panicking and clamping.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a failure during the layout pass.
	KindLayout
	// KindPaint indicates a failure during the paint pass.
	KindPaint
	// KindDispatch indicates a failure while routing an event.
	KindDispatch
	// KindIntegrity indicates a broken tree invariant.
	KindIntegrity
	// KindConfig indicates a configuration or environment overlay error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindPaint:
		return "paint"
	case KindDispatch:
		return "dispatch"
	case KindIntegrity:
		return "integrity"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// JoistError represents a structured error in the Joist runtime.
type JoistError struct {
	// Op is the operation that failed (e.g., "tree.FlushLayout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *JoistError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *JoistError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Joist runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *JoistError)
}
