package model

import "golang.org/x/exp/constraints"

// Alignment is a 2D alignment coordinate, conventionally in [-1, 1]
// on both axes with (0, 0) at the center.
type Alignment struct {
	X float32
	Y float32
}

// Padding holds per-edge inset values in logical units.
type Padding struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// NewPadding returns a Padding with the same value on all four edges.
func NewPadding(uniform float32) Padding {
	return Padding{Left: uniform, Top: uniform, Right: uniform, Bottom: uniform}
}

// Add returns the edge-wise sum of two paddings.
func (p Padding) Add(o Padding) Padding {
	return Padding{
		Left:   p.Left + o.Left,
		Top:    p.Top + o.Top,
		Right:  p.Right + o.Right,
		Bottom: p.Bottom + o.Bottom,
	}
}

// Horizontal returns the combined left and right insets.
func (p Padding) Horizontal() float32 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom insets.
func (p Padding) Vertical() float32 {
	return p.Top + p.Bottom
}

// Clamp limits v to the [lo, hi] range.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
