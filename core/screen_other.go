//go:build !darwin

package core

// screenSize reports no display on platforms without a native screen
// query; the engine falls back to its baseline viewport instead.
func screenSize() (int, int) {
	return 0, 0
}
