package splash

import (
	"errors"
	"fmt"
)

// Configuration and input errors.
var (
	// ErrDegenerateTile is returned when the source image has zero width or
	// height. Such a tile would never advance across the canvas.
	ErrDegenerateTile = errors.New("splash: source image has zero width or height")

	// ErrInvalidSize is returned when the target width or height is not positive.
	ErrInvalidSize = errors.New("splash: invalid target size")

	// ErrMissingPath is returned when the source or output path is empty.
	ErrMissingPath = errors.New("splash: missing path")
)

// LoadError reports a source image that could not be opened or decoded.
// No canvas has been allocated when it is returned.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("splash: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports an output image that could not be encoded or written.
// The canvas was fully composed, but the file at Path was left unchanged.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("splash: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
