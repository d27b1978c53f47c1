//go:build !arm

package main

import (
	"image"

	"github.com/kbinani/screenshot"
)

// displayBounds returns the primary display size used to size the window.
func displayBounds() image.Rectangle {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}
	}
	return screenshot.GetDisplayBounds(0)
}
