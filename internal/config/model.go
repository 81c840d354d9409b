package config

import (
	"strings"

	"github.com/hamidzr/gscale/constant"
	"github.com/hamidzr/gscale/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all configuration for the inspector CLI: the scaling
// parameters plus the viewport and output controls.
type Config struct {
	// viewport, in logical units; 0 means measure from the display
	Width  float32 `mapstructure:"width" yaml:"width"`
	Height float32 `mapstructure:"height" yaml:"height"`

	// scaling parameters
	BaseWidth       float32 `mapstructure:"base_width" yaml:"base_width"`
	BaseHeight      float32 `mapstructure:"base_height" yaml:"base_height"`
	FontScalePhone  float32 `mapstructure:"font_scale_phone" yaml:"font_scale_phone"`
	FontScaleTablet float32 `mapstructure:"font_scale_tablet" yaml:"font_scale_tablet"`
	IconScalePhone  float32 `mapstructure:"icon_scale_phone" yaml:"icon_scale_phone"`
	IconScaleTablet float32 `mapstructure:"icon_scale_tablet" yaml:"icon_scale_tablet"`
	AlignTabletBias float32 `mapstructure:"align_tablet_bias" yaml:"align_tablet_bias"`

	// output settings
	Profile  string `mapstructure:"profile" yaml:"profile"`
	Output   string `mapstructure:"output" yaml:"output"`
	Metric   string `mapstructure:"metric" yaml:"metric"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// ScaleConfig converts the CLI config into engine configuration.
func (c *Config) ScaleConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.BaseWidth = c.BaseWidth
	cfg.BaseHeight = c.BaseHeight
	cfg.FontScalePhone = c.FontScalePhone
	cfg.FontScaleTablet = c.FontScaleTablet
	cfg.IconScalePhone = c.IconScalePhone
	cfg.IconScaleTablet = c.IconScaleTablet
	cfg.AlignTabletBias = c.AlignTabletBias
	return cfg
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	scale := model.DefaultConfig()
	return &Config{
		Width:           0,
		Height:          0,
		BaseWidth:       scale.BaseWidth,
		BaseHeight:      scale.BaseHeight,
		FontScalePhone:  scale.FontScalePhone,
		FontScaleTablet: scale.FontScaleTablet,
		IconScalePhone:  scale.IconScalePhone,
		IconScaleTablet: scale.IconScaleTablet,
		AlignTabletBias: scale.AlignTabletBias,
		Profile:         "",
		Output:          "table",
		Metric:          "",
		LogLevel:        "info",
	}
}

// BindFlags binds CLI flags to the cobra command.
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().Float32P("width", "W", defaults.Width, "Viewport width in logical units (0 to measure from the display)")
	cmd.PersistentFlags().Float32P("height", "H", defaults.Height, "Viewport height in logical units (0 to measure from the display)")
	cmd.PersistentFlags().Float32("base-width", defaults.BaseWidth, "Baseline viewport width")
	cmd.PersistentFlags().Float32("base-height", defaults.BaseHeight, "Baseline viewport height")
	cmd.PersistentFlags().Float32("font-scale-phone", defaults.FontScalePhone, "Font multiplier on phones")
	cmd.PersistentFlags().Float32("font-scale-tablet", defaults.FontScaleTablet, "Font multiplier on tablets")
	cmd.PersistentFlags().Float32("icon-scale-phone", defaults.IconScalePhone, "Icon multiplier on phones")
	cmd.PersistentFlags().Float32("icon-scale-tablet", defaults.IconScaleTablet, "Icon multiplier on tablets")
	cmd.PersistentFlags().Float32("align-tablet-bias", defaults.AlignTabletBias, "Alignment bias on tablets, clamped to [0,1]")
	cmd.PersistentFlags().StringP("profile", "P", defaults.Profile, "Named device profile to load or save the viewport under")
	cmd.PersistentFlags().StringP("output", "o", defaults.Output, "Output format: table, plain or yaml")
	cmd.PersistentFlags().StringP("metric", "m", defaults.Metric, "Print a single metric (fuzzy matched by name)")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// SetViperDefaults sets default values in viper configuration.
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("base_width", defaults.BaseWidth)
	v.SetDefault("base_height", defaults.BaseHeight)
	v.SetDefault("font_scale_phone", defaults.FontScalePhone)
	v.SetDefault("font_scale_tablet", defaults.FontScaleTablet)
	v.SetDefault("icon_scale_phone", defaults.IconScalePhone)
	v.SetDefault("icon_scale_tablet", defaults.IconScaleTablet)
	v.SetDefault("align_tablet_bias", defaults.AlignTabletBias)
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("metric", defaults.Metric)
	v.SetDefault("log_level", defaults.LogLevel)
}

// SetViperEnvSettings configures viper environment variable settings.
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
