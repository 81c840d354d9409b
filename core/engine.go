package core

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/hamidzr/gscale/model"
	"github.com/sirupsen/logrus"
)

const (
	// tabletRatioThreshold classifies unusually large viewports as
	// tablets even below tabletMinWidth.
	tabletRatioThreshold = 1.2
	// tabletMinWidth is the shorter-edge width (logical units) at which
	// a viewport is always classified as a tablet.
	tabletMinWidth = 600
	// tabletDeflation counteracts oversizing on tablets. Applied once to
	// the scale factor, before any per-category multiplier.
	tabletDeflation = 0.95
)

// Engine converts logical design values into device-scaled values based on
// a baseline viewport. It owns a viewport snapshot (shorter edge as width,
// longer edge as height) and recomputes its scale factor synchronously on
// every refresh or reconfiguration, so derived values are never stale.
type Engine struct {
	mu  sync.RWMutex
	cfg model.Config

	// last supplied raw viewport edges, before normalization.
	lastW, lastH float32

	width  float32
	height float32
	factor float32
	tablet bool

	display  DisplaySource
	platform Platform
	insets   InsetsSource

	newWatcher func() MetricsWatcher
	watcher    MetricsWatcher
}

// NewEngine creates an engine with default configuration and an initial
// viewport read from the display source, falling back to the baseline when
// no display is available (e.g. headless test environments).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cfg:        model.DefaultConfig(),
		display:    SystemDisplay{},
		platform:   RuntimePlatform{},
		insets:     ZeroInsets{},
		newWatcher: func() MetricsWatcher { return newSettingsWatcher() },
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cfg.AlignTabletBias = model.Clamp(e.cfg.AlignTabletBias, 0, 1)
	e.refreshFromDisplayLocked()
	e.syncWatch()
	return e
}

// Configure applies partial overrides to the engine configuration and
// recomputes the viewport snapshot from the last known viewport. Toggling
// the metrics watch is idempotent in both directions.
func (e *Engine) Configure(opts ...Option) {
	e.mu.Lock()
	for _, opt := range opts {
		opt(e)
	}
	e.cfg.AlignTabletBias = model.Clamp(e.cfg.AlignTabletBias, 0, 1)
	e.recompute()
	e.mu.Unlock()
	e.syncWatch()
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() model.Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Refresh recomputes the snapshot from an explicitly supplied viewport.
// The pair is normalized into portrait orientation first, so callers may
// pass the size in either rotation.
func (e *Engine) Refresh(size fyne.Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastW, e.lastH = size.Width, size.Height
	e.recompute()
}

// RefreshFromDisplay recomputes the snapshot from the display source,
// falling back to the baseline viewport when no display is available.
func (e *Engine) RefreshFromDisplay() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refreshFromDisplayLocked()
}

func (e *Engine) refreshFromDisplayLocked() {
	if size, ok := e.display.Size(); ok {
		e.lastW, e.lastH = size.Width, size.Height
	} else {
		e.lastW, e.lastH = e.cfg.BaseWidth, e.cfg.BaseHeight
	}
	e.recompute()
}

// recompute derives width/height, the scale factor and the tablet flag
// from the last supplied viewport. Callers must hold e.mu.
func (e *Engine) recompute() {
	w, h := e.lastW, e.lastH
	if w > h {
		w, h = h, w
	}
	e.width, e.height = w, h

	avg := (w/e.cfg.BaseWidth + h/e.cfg.BaseHeight) / 2
	e.tablet = avg > tabletRatioThreshold || w >= tabletMinWidth
	e.factor = avg
	if e.tablet {
		e.factor = avg * tabletDeflation
	}
	logrus.Tracef("gscale: viewport %.1fx%.1f factor=%.4f tablet=%v", w, h, e.factor, e.tablet)
}

// Width returns the shorter edge of the current viewport in logical units.
func (e *Engine) Width() float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width
}

// Height returns the longer edge of the current viewport in logical units.
func (e *Engine) Height() float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.height
}

// Factor returns the current scale factor.
func (e *Engine) Factor() float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.factor
}

// IsTablet reports whether the current viewport is classified as a tablet.
func (e *Engine) IsTablet() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tablet
}

// Scale converts a logical value into a device-scaled one.
func (e *Engine) Scale(v float32) float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return v * e.factor
}

// ScaleFont scales a font size, applying the per-device-class font
// multiplier before the general scale factor.
func (e *Engine) ScaleFont(v float32) float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	mult := e.cfg.FontScalePhone
	if e.tablet {
		mult = e.cfg.FontScaleTablet
	}
	return v * mult * e.factor
}

// ScaleIcon scales an icon size, applying the per-device-class icon
// multiplier before the general scale factor.
func (e *Engine) ScaleIcon(v float32) float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	mult := e.cfg.IconScalePhone
	if e.tablet {
		mult = e.cfg.IconScaleTablet
	}
	return v * mult * e.factor
}

// ScaleOffset scales both components of a 2D offset.
func (e *Engine) ScaleOffset(o fyne.Position) fyne.Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fyne.NewPos(o.X*e.factor, o.Y*e.factor)
}

// ScaleSize scales both dimensions of a size.
func (e *Engine) ScaleSize(s fyne.Size) fyne.Size {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fyne.NewSize(s.Width*e.factor, s.Height*e.factor)
}

// ScaleAlignment pulls an alignment coordinate toward the center on
// tablets; on phones it is returned unchanged.
func (e *Engine) ScaleAlignment(a model.Alignment) model.Alignment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.tablet {
		return a
	}
	bias := e.cfg.AlignTabletBias
	return model.Alignment{X: a.X * bias, Y: a.Y * bias}
}

// ScalePadding scales all four edges of a padding.
func (e *Engine) ScalePadding(p model.Padding) model.Padding {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return model.Padding{
		Left:   p.Left * e.factor,
		Top:    p.Top * e.factor,
		Right:  p.Right * e.factor,
		Bottom: p.Bottom * e.factor,
	}
}

// PercentWidth returns the given fraction of the viewport width.
// pct is clamped to [0, 1].
func (e *Engine) PercentWidth(pct float32) float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width * model.Clamp(pct, 0, 1)
}

// PercentHeight returns the given fraction of the viewport height.
// pct is clamped to [0, 1].
func (e *Engine) PercentHeight(pct float32) float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.height * model.Clamp(pct, 0, 1)
}

// IsWeb reports whether the engine runs under a browser.
func (e *Engine) IsWeb() bool { return e.os() == OSWeb }

// IsAndroid reports whether the engine runs on Android.
func (e *Engine) IsAndroid() bool { return e.os() == OSAndroid }

// IsIOS reports whether the engine runs on iOS.
func (e *Engine) IsIOS() bool { return e.os() == OSIOS }

// IsPad reports whether the engine runs on a tablet-classified iOS device.
func (e *Engine) IsPad() bool { return e.IsIOS() && e.IsTablet() }

// IsTV always reports false; no platform signal is available.
func (e *Engine) IsTV() bool { return false }

func (e *Engine) os() OS {
	e.mu.RLock()
	p := e.platform
	e.mu.RUnlock()
	return p.OS()
}

// SafeArea returns the current safe-area insets from the insets source.
// Values are read at call time and never cached.
func (e *Engine) SafeArea() model.Padding {
	return e.insetsSource().SafeArea()
}

// VisibleInsets returns the insets of the currently visible region, e.g.
// the area covered by an onscreen keyboard.
func (e *Engine) VisibleInsets() model.Padding {
	return e.insetsSource().VisibleInsets()
}

// PadWithSafeArea scales a padding and extends it by the current
// safe-area insets.
func (e *Engine) PadWithSafeArea(p model.Padding) model.Padding {
	return e.ScalePadding(p).Add(e.SafeArea())
}

func (e *Engine) insetsSource() InsetsSource {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.insets
}

// syncWatch reconciles the watcher with cfg.WatchMetrics. Enabling twice
// does not double-register; disabling when not registered is a no-op.
func (e *Engine) syncWatch() {
	e.mu.Lock()
	want := e.cfg.WatchMetrics
	have := e.watcher != nil
	var w MetricsWatcher
	switch {
	case want && !have:
		w = e.newWatcher()
		e.watcher = w
	case !want && have:
		w = e.watcher
		e.watcher = nil
	default:
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	if want {
		w.Start(e.RefreshFromDisplay)
		logrus.Debug("gscale: metrics watch enabled")
	} else {
		w.Stop()
		logrus.Debug("gscale: metrics watch disabled")
	}
}
