package cogent

import (
	"fmt"

	"cogentcore.org/core/core"

	engine "github.com/hamidzr/gscale/core"
)

// RunExample launches a Cogent Core window listing the derived scale
// metrics, as a toolkit-independent sanity check of the engine.
func RunExample(e *engine.Engine) {
	body := core.NewBody("gscale metrics")
	body.SetTitle("gscale metrics")

	root := core.NewFrame(body)
	core.NewText(root).SetText(fmt.Sprintf("viewport: %.0f x %.0f", e.Width(), e.Height()))
	core.NewText(root).SetText(fmt.Sprintf("scale factor: %.4f", e.Factor()))
	core.NewText(root).SetText(fmt.Sprintf("tablet: %v", e.IsTablet()))
	core.NewText(root).SetText(fmt.Sprintf("font 16 -> %.1f, icon 24 -> %.1f", e.ScaleFont(16), e.ScaleIcon(24)))

	body.RunMainWindow()
}
