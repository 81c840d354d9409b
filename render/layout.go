package render

import (
	"fyne.io/fyne/v2"
	"github.com/hamidzr/gscale/core"
	"github.com/hamidzr/gscale/model"
)

// InsetLayout insets its objects by an engine-scaled padding, optionally
// extended by the current safe-area insets. Objects are stacked over each
// other in the remaining space.
type InsetLayout struct {
	engine   *core.Engine
	pad      model.Padding
	safeArea bool
}

// NewInsetLayout creates a layout with the given logical padding.
func NewInsetLayout(engine *core.Engine, pad model.Padding) *InsetLayout {
	return &InsetLayout{engine: engine, pad: pad}
}

// NewSafeAreaLayout creates a layout whose scaled padding is extended by
// the engine's safe-area insets at layout time.
func NewSafeAreaLayout(engine *core.Engine, pad model.Padding) *InsetLayout {
	return &InsetLayout{engine: engine, pad: pad, safeArea: true}
}

func (l *InsetLayout) insets() model.Padding {
	if l.safeArea {
		return l.engine.PadWithSafeArea(l.pad)
	}
	return l.engine.ScalePadding(l.pad)
}

// Layout positions the contained objects within the specified size.
func (l *InsetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	in := l.insets()
	inner := fyne.NewSize(size.Width-in.Horizontal(), size.Height-in.Vertical())
	pos := fyne.NewPos(in.Left, in.Top)
	for _, o := range objects {
		o.Resize(inner)
		o.Move(pos)
	}
}

// MinSize calculates the minimum size of a container that uses this layout.
func (l *InsetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minWidth, minHeight float32
	for _, o := range objects {
		min := o.MinSize()
		if min.Width > minWidth {
			minWidth = min.Width
		}
		if min.Height > minHeight {
			minHeight = min.Height
		}
	}

	in := l.insets()
	return fyne.NewSize(minWidth+in.Horizontal(), minHeight+in.Vertical())
}
