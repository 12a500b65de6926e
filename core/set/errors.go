package set

import "errors"

// ErrKeyNotFound is the panic value (wrapped with the key) raised by
// Map.MustGet.
var ErrKeyNotFound = errors.New("set: key not found")
