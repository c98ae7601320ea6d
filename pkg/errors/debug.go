package errors

// DebugMode controls how the runtime treats widget logic errors such as
// constraint violations or child bookkeeping divergence. When true they are
// fatal (panic); when false the runtime clamps the offending value and
// reports the error through the global handler.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the runtime.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
