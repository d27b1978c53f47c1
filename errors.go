package easychart

import (
	"errors"
	"fmt"
)

// ErrImageLoad is returned when a background or annotation image cannot be read or decoded.
var ErrImageLoad = errors.New("image load failed")

// ErrAlphaRange is returned when a blend alpha falls outside [0,1].
var ErrAlphaRange = errors.New("alpha must be within [0,1]")

type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("%v: %q: %v", ErrImageLoad, e.Path, e.Err)
}

func (e *ImageError) Unwrap() []error {
	return []error{ErrImageLoad, e.Err}
}

func indexPanic(i, n int) {
	panic(fmt.Sprintf("easychart: series index %d out of range [0:%d]", i, n))
}
