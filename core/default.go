package core

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/hamidzr/gscale/model"
)

var (
	defaultEngine *Engine
	onceDefault   sync.Once
)

// Default returns the process-wide engine, creating it with default
// configuration on first use. Prefer an explicit NewEngine where the
// composition allows it; Default exists for app-wide convenience.
func Default() *Engine {
	onceDefault.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Configure applies options to the default engine.
func Configure(opts ...Option) { Default().Configure(opts...) }

// Refresh refreshes the default engine with an explicit viewport.
func Refresh(size fyne.Size) { Default().Refresh(size) }

// Scale scales a logical value through the default engine.
func Scale(v float32) float32 { return Default().Scale(v) }

// ScaleFont scales a font size through the default engine.
func ScaleFont(v float32) float32 { return Default().ScaleFont(v) }

// ScaleIcon scales an icon size through the default engine.
func ScaleIcon(v float32) float32 { return Default().ScaleIcon(v) }

// ScaleOffset scales an offset through the default engine.
func ScaleOffset(o fyne.Position) fyne.Position { return Default().ScaleOffset(o) }

// ScaleAlignment scales an alignment through the default engine.
func ScaleAlignment(a model.Alignment) model.Alignment { return Default().ScaleAlignment(a) }

// ScalePadding scales a padding through the default engine.
func ScalePadding(p model.Padding) model.Padding { return Default().ScalePadding(p) }

// PercentWidth returns a fraction of the default engine's viewport width.
func PercentWidth(pct float32) float32 { return Default().PercentWidth(pct) }

// PercentHeight returns a fraction of the default engine's viewport height.
func PercentHeight(pct float32) float32 { return Default().PercentHeight(pct) }
