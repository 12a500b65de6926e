//go:build !corekit_debug

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = false
