package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "gscale"}
	BindFlags(cmd)
	return cmd
}

func TestInitConfigDefaults(t *testing.T) {
	cfg, err := InitConfig(newTestCmd())
	require.NoError(t, err)

	assert.Equal(t, float32(360), cfg.BaseWidth)
	assert.Equal(t, float32(640), cfg.BaseHeight)
	assert.Equal(t, float32(1.0), cfg.FontScalePhone)
	assert.Equal(t, float32(0.9), cfg.FontScaleTablet)
	assert.Equal(t, float32(1.0), cfg.IconScalePhone)
	assert.Equal(t, float32(1.1), cfg.IconScaleTablet)
	assert.Equal(t, float32(0.85), cfg.AlignTabletBias)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("GSCALE_BASE_WIDTH", "411")
	t.Setenv("GSCALE_FONT_SCALE_TABLET", "0.8")

	cfg, err := InitConfig(newTestCmd())
	require.NoError(t, err)

	assert.Equal(t, float32(411), cfg.BaseWidth)
	assert.Equal(t, float32(0.8), cfg.FontScaleTablet)
}

func TestInitConfigFlagOverride(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.PersistentFlags().Set("base-width", "500"))

	cfg, err := InitConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, float32(500), cfg.BaseWidth)
}

func TestScaleConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseWidth = 411
	cfg.FontScaleTablet = 0.8

	scale := cfg.ScaleConfig()
	assert.Equal(t, float32(411), scale.BaseWidth)
	assert.Equal(t, float32(0.8), scale.FontScaleTablet)
	assert.Equal(t, float32(640), scale.BaseHeight)
	assert.False(t, scale.WatchMetrics)
}
