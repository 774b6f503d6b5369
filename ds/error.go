package ds

import (
	"fmt"
)

type (
	// ErrMagicNotFound means no aligned occurrence of Magic exists in the scanned window.
	ErrMagicNotFound struct {
		Magic      uint32
		WindowSize int
	}
	// ErrOutOfBounds means a read of Length bytes at Offset does not fit into Limit bytes.
	ErrOutOfBounds struct {
		Caller string
		Offset int
		Length int
		Limit  int
	}
	ErrIO struct {
		Op  string
		Err error
	}
	ErrUsage struct {
		Reason string
	}
)

func (r ErrMagicNotFound) Error() string {
	return fmt.Sprintf("magic 0x%08X not found in the first %d bytes", r.Magic, r.WindowSize)
}

func (r ErrOutOfBounds) Error() string {
	return fmt.Sprintf(
		"%s: %d bytes at offset %d exceed the %d available bytes",
		r.Caller, r.Length, r.Offset, r.Limit,
	)
}

func (r ErrIO) Error() string {
	return fmt.Sprintf("%s: %v", r.Op, r.Err)
}

func (r ErrIO) Unwrap() error {
	return r.Err
}

// Cause lets github.com/pkg/errors.Cause see through the failure.
func (r ErrIO) Cause() error {
	return r.Err
}

func (r ErrUsage) Error() string {
	return r.Reason
}
