package core

import "github.com/hamidzr/gscale/model"

// Option mutates engine configuration. Fields not touched by any option
// keep their previous value.
type Option func(*Engine)

// WithConfig replaces the whole configuration.
func WithConfig(cfg model.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithBaseSize sets the baseline viewport the design targets.
func WithBaseSize(width, height float32) Option {
	return func(e *Engine) {
		e.cfg.BaseWidth = width
		e.cfg.BaseHeight = height
	}
}

// WithFontScale sets the phone and tablet font multipliers.
func WithFontScale(phone, tablet float32) Option {
	return func(e *Engine) {
		e.cfg.FontScalePhone = phone
		e.cfg.FontScaleTablet = tablet
	}
}

// WithIconScale sets the phone and tablet icon multipliers.
func WithIconScale(phone, tablet float32) Option {
	return func(e *Engine) {
		e.cfg.IconScalePhone = phone
		e.cfg.IconScaleTablet = tablet
	}
}

// WithAlignTabletBias sets the tablet alignment bias. The value is
// clamped to [0, 1] when applied.
func WithAlignTabletBias(bias float32) Option {
	return func(e *Engine) { e.cfg.AlignTabletBias = bias }
}

// WithMetricsWatch subscribes to or unsubscribes from platform
// metrics-change notifications.
func WithMetricsWatch(enabled bool) Option {
	return func(e *Engine) { e.cfg.WatchMetrics = enabled }
}

// WithDisplaySource overrides where the engine reads viewport sizes from.
func WithDisplaySource(d DisplaySource) Option {
	return func(e *Engine) { e.display = d }
}

// WithPlatform overrides platform identification.
func WithPlatform(p Platform) Option {
	return func(e *Engine) { e.platform = p }
}

// WithInsetsSource overrides where safe-area insets are read from.
func WithInsetsSource(s InsetsSource) Option {
	return func(e *Engine) { e.insets = s }
}

// withWatcherFactory swaps the metrics watcher implementation, for tests.
func withWatcherFactory(f func() MetricsWatcher) Option {
	return func(e *Engine) { e.newWatcher = f }
}
