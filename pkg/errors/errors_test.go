package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestJoistErrorString(t *testing.T) {
	err := &JoistError{
		Op:   "tree.FlushLayout",
		Kind: KindLayout,
		Err:  fmt.Errorf("size out of bounds"),
	}
	got := err.Error()
	if !strings.Contains(got, "tree.FlushLayout") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "[layout]") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestJoistErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := &JoistError{Op: "op", Kind: KindIntegrity, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLayout, "layout"},
		{KindPaint, "paint"},
		{KindDispatch, "dispatch"},
		{KindIntegrity, "integrity"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

// captureHandler records reports for inspection.
type captureHandler struct {
	errs []*JoistError
}

func (h *captureHandler) HandleError(err *JoistError) { h.errs = append(h.errs, err) }

func TestReportReachesHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&JoistError{Op: "test.op", Kind: KindPaint, Err: fmt.Errorf("boom")})
	if len(h.errs) != 1 {
		t.Fatalf("handler saw %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero timestamp")
	}

	Report(nil)
	if len(h.errs) != 1 {
		t.Error("nil report should be ignored")
	}
}

func TestCaptureStackNamesCaller(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "TestCaptureStackNamesCaller") {
		t.Errorf("stack should name the calling function:\n%s", stack)
	}
}
