// Package assert implements the precondition checks used across corekit.
//
// Checks are compiled in only when building with -tags corekit_debug. In
// release builds That is a no-op and callers fall back on Go's runtime
// bounds checks, which do not cover indices between a container's length
// and its capacity.
package assert

import "fmt"

// That panics with a formatted message when Enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(Violation(fmt.Sprintf(format, args...)))
	}
}

// Violation is the panic value raised by a failed check.
type Violation string

func (v Violation) Error() string { return "corekit: precondition violated: " + string(v) }
