package alloc

import "errors"

var (
	// ErrInlineStorage indicates an Inline allocator whose storage type is not [N]T.
	ErrInlineStorage = errors.New("alloc: inline storage must be an array of the element type")

	// ErrMapFailed indicates the operating system refused a Mapped block.
	ErrMapFailed = errors.New("alloc: mapping failed")
)
