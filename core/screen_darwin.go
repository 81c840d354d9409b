//go:build darwin

package core

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

int getMainScreenWidth() {
	return (int)CGDisplayPixelsWide(CGMainDisplayID());
}

int getMainScreenHeight() {
	return (int)CGDisplayPixelsHigh(CGMainDisplayID());
}
*/
import "C"

// screenSize returns the dimensions of the main display. CoreGraphics
// reports points on retina displays, which line up with logical units.
func screenSize() (int, int) {
	return int(C.getMainScreenWidth()), int(C.getMainScreenHeight())
}
