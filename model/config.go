package model

// Config holds the scaling parameters of an engine. Numeric fields are
// accepted as given; only AlignTabletBias is clamped (to [0, 1]) on apply.
type Config struct {
	// BaseWidth and BaseHeight are the reference viewport the design
	// targets, in logical units, portrait orientation.
	BaseWidth  float32 `mapstructure:"base_width" yaml:"base_width"`
	BaseHeight float32 `mapstructure:"base_height" yaml:"base_height"`

	// Font and icon multipliers per device class, applied before the
	// general scale factor.
	FontScalePhone  float32 `mapstructure:"font_scale_phone" yaml:"font_scale_phone"`
	FontScaleTablet float32 `mapstructure:"font_scale_tablet" yaml:"font_scale_tablet"`
	IconScalePhone  float32 `mapstructure:"icon_scale_phone" yaml:"icon_scale_phone"`
	IconScaleTablet float32 `mapstructure:"icon_scale_tablet" yaml:"icon_scale_tablet"`

	// AlignTabletBias pulls alignment coordinates toward the center on
	// tablet-classified viewports.
	AlignTabletBias float32 `mapstructure:"align_tablet_bias" yaml:"align_tablet_bias"`

	// WatchMetrics subscribes the engine to platform metrics-change
	// notifications while true.
	WatchMetrics bool `mapstructure:"watch_metrics" yaml:"watch_metrics"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() Config {
	return Config{
		BaseWidth:       360,
		BaseHeight:      640,
		FontScalePhone:  1.0,
		FontScaleTablet: 0.9,
		IconScalePhone:  1.0,
		IconScaleTablet: 1.1,
		AlignTabletBias: 0.85,
		WatchMetrics:    false,
	}
}
