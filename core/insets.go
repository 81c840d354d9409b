package core

import "github.com/hamidzr/gscale/model"

// InsetsSource supplies safe-area and visible-region insets from the host
// layout context. The engine reads these at call time and never caches
// them.
type InsetsSource interface {
	// SafeArea returns the padding imposed by device chrome: notches,
	// system bars, home indicators.
	SafeArea() model.Padding
	// VisibleInsets returns the padding of the currently visible region,
	// e.g. the part covered by an onscreen keyboard.
	VisibleInsets() model.Padding
}

// ZeroInsets reports no insets. It is the default source; desktop
// windows have no device chrome to avoid.
type ZeroInsets struct{}

func (ZeroInsets) SafeArea() model.Padding      { return model.Padding{} }
func (ZeroInsets) VisibleInsets() model.Padding { return model.Padding{} }

// StaticInsets reports fixed insets supplied by the host.
type StaticInsets struct {
	Safe    model.Padding
	Visible model.Padding
}

func (s StaticInsets) SafeArea() model.Padding      { return s.Safe }
func (s StaticInsets) VisibleInsets() model.Padding { return s.Visible }
