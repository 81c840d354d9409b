package core

import "fyne.io/fyne/v2"

// DisplaySource reports the size of the active display or window in
// logical units. ok is false when no display is available, in which case
// the engine falls back to its baseline viewport.
type DisplaySource interface {
	Size() (size fyne.Size, ok bool)
}

// SystemDisplay reads the first Fyne window's canvas size when an app is
// running, and falls back to a native screen query on platforms that
// support one.
type SystemDisplay struct{}

func (SystemDisplay) Size() (fyne.Size, bool) {
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		if wins := app.Driver().AllWindows(); len(wins) > 0 {
			size := wins[0].Canvas().Size()
			if size.Width > 0 && size.Height > 0 {
				return size, true
			}
		}
	}
	if w, h := screenSize(); w > 0 && h > 0 {
		return fyne.NewSize(float32(w), float32(h)), true
	}
	return fyne.Size{}, false
}

// FixedDisplay always reports the same size, for tests and for hosts that
// measure the viewport themselves.
type FixedDisplay fyne.Size

func (d FixedDisplay) Size() (fyne.Size, bool) {
	size := fyne.Size(d)
	return size, size.Width > 0 && size.Height > 0
}
