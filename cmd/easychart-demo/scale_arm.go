//go:build arm

package main

import "image"

// displayBounds has no display query on arm boards, the window starts full screen.
func displayBounds() image.Rectangle {
	return image.Rectangle{}
}
