// errors.go - Structured error types for NXMock

package main

import "fmt"

// BoundsError reports a bulk memory operation that would exceed a fixed
// buffer's capacity. No partial write occurs when it is returned.
type BoundsError struct {
	Op      string // What operation was being attempted
	Address int    // Start of the write
	Size    int    // Number of bytes requested
	Limit   int    // Capacity of the target buffer
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %d bytes at %d exceed %d byte limit",
		e.Op, e.Size, e.Address, e.Limit)
}

// AllocError reports a failed codec destination creation or flush. The
// encode is abandoned and no file is written.
type AllocError struct {
	Op   string
	Path string
	Err  error
}

func (e *AllocError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q failed: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %q failed", e.Op, e.Path)
}

func (e *AllocError) Unwrap() error {
	return e.Err
}
