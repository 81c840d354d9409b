package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/hamidzr/gscale/core"
)

// ResponsiveTheme wraps a base theme and routes its size table through a
// scale engine: text sizes get the font multiplier, the inline icon size
// the icon multiplier, everything else the plain scale factor.
type ResponsiveTheme struct {
	fyne.Theme
	Engine *core.Engine
}

// NewResponsiveTheme builds a theme scaled by the given engine. A nil base
// falls back to the Fyne default theme; a nil engine to the default engine.
func NewResponsiveTheme(base fyne.Theme, engine *core.Engine) *ResponsiveTheme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	if engine == nil {
		engine = core.Default()
	}
	return &ResponsiveTheme{Theme: base, Engine: engine}
}

func baseThemeSizes() map[fyne.ThemeSizeName]float32 {
	sizes := map[fyne.ThemeSizeName]float32{
		theme.SizeNameInlineIcon:         float32(18),
		theme.SizeNameInnerPadding:       float32(6),
		theme.SizeNameLineSpacing:        float32(4),
		theme.SizeNamePadding:            float32(4),
		theme.SizeNameScrollBar:          float32(10),
		theme.SizeNameScrollBarSmall:     float32(2),
		theme.SizeNameSeparatorThickness: float32(1),
		theme.SizeNameText:               float32(16),
		theme.SizeNameHeadingText:        float32(30.6),
		theme.SizeNameSubHeadingText:     float32(24),
		theme.SizeNameCaptionText:        float32(14),
		theme.SizeNameInputBorder:        float32(2),
	}
	return sizes
}

func (t *ResponsiveTheme) Size(name fyne.ThemeSizeName) float32 {
	base, ok := baseThemeSizes()[name]
	if !ok {
		base = t.Theme.Size(name)
	}
	switch name {
	case theme.SizeNameText, theme.SizeNameHeadingText,
		theme.SizeNameSubHeadingText, theme.SizeNameCaptionText:
		return t.Engine.ScaleFont(base)
	case theme.SizeNameInlineIcon:
		return t.Engine.ScaleIcon(base)
	default:
		return t.Engine.Scale(base)
	}
}
