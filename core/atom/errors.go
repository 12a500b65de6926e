package atom

import "errors"

var (
	// ErrTooLong indicates a string longer than Options.MaxStringLen.
	ErrTooLong = errors.New("atom: string too long")

	// ErrClosed indicates use of a closed Table.
	ErrClosed = errors.New("atom: table closed")
)
