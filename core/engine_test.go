package core

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/hamidzr/gscale/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine returns an engine pinned to a known viewport so tests do
// not depend on the machine's display.
func newTestEngine(w, h float32, opts ...Option) *Engine {
	opts = append([]Option{WithDisplaySource(FixedDisplay(fyne.NewSize(w, h)))}, opts...)
	return NewEngine(opts...)
}

func TestBaselineIdentity(t *testing.T) {
	e := newTestEngine(360, 640)

	assert.False(t, e.IsTablet())
	assert.InDelta(t, 1.0, e.Factor(), 1e-6)
	assert.InDelta(t, 10.0, e.Scale(10), 1e-6)
	assert.InDelta(t, 16.0, e.ScaleFont(16), 1e-6)
	assert.InDelta(t, 24.0, e.ScaleIcon(24), 1e-6)
}

func TestTabletClassification(t *testing.T) {
	type testCase struct {
		name       string
		w, h       float32
		base       *fyne.Size
		wantTablet bool
		wantFactor float32
	}

	testCases := []testCase{
		{
			name: "baseline phone",
			w:    360, h: 640,
			wantTablet: false,
			wantFactor: 1.0,
		},
		{
			name: "small phone upscale",
			w:    400, h: 700,
			wantTablet: false,
			wantFactor: (400.0/360 + 700.0/640) / 2,
		},
		{
			name: "tablet by ratio and width",
			w:    800, h: 1280,
			wantTablet: true,
			wantFactor: (800.0/360 + 1280.0/640) / 2 * 0.95,
		},
		{
			name: "tablet by width despite modest ratio",
			w:    600, h: 700,
			base:       &fyne.Size{Width: 800, Height: 1422},
			wantTablet: true,
			wantFactor: (600.0/800 + 700.0/1422) / 2 * 0.95,
		},
		{
			name: "tablet just over the ratio threshold",
			w:    390, h: 844,
			wantTablet: true,
			wantFactor: (390.0/360 + 844.0/640) / 2 * 0.95,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(tc.w, tc.h)
			if tc.base != nil {
				e.Configure(WithBaseSize(tc.base.Width, tc.base.Height))
			}
			assert.Equal(t, tc.wantTablet, e.IsTablet())
			assert.InDelta(t, tc.wantFactor, e.Factor(), 1e-4)
		})
	}
}

func TestOrientationNormalization(t *testing.T) {
	e := newTestEngine(360, 640)
	e.Refresh(fyne.NewSize(640, 360)) // landscape

	assert.InDelta(t, 360.0, e.Width(), 1e-6)
	assert.InDelta(t, 640.0, e.Height(), 1e-6)
	assert.InDelta(t, 1.0, e.Factor(), 1e-6)
}

func TestFontAndIconMultipliers(t *testing.T) {
	phone := newTestEngine(360, 640)
	assert.InDelta(t, phone.Scale(20)*1.0, phone.ScaleFont(20), 1e-6)
	assert.InDelta(t, phone.Scale(20)*1.0, phone.ScaleIcon(20), 1e-6)

	tablet := newTestEngine(800, 1280)
	require.True(t, tablet.IsTablet())
	assert.InDelta(t, tablet.Scale(20)*0.9, tablet.ScaleFont(20), 1e-4)
	assert.InDelta(t, tablet.Scale(20)*1.1, tablet.ScaleIcon(20), 1e-4)
	// 800x1280 against the 360x640 baseline
	assert.InDelta(t, 2.0056, tablet.Factor(), 1e-3)
	assert.InDelta(t, 36.1, tablet.ScaleFont(20), 0.05)
}

func TestCustomMultipliers(t *testing.T) {
	e := newTestEngine(800, 1280, WithFontScale(1.2, 0.8), WithIconScale(0.9, 1.3))
	require.True(t, e.IsTablet())

	assert.InDelta(t, e.Scale(10)*0.8, e.ScaleFont(10), 1e-4)
	assert.InDelta(t, e.Scale(10)*1.3, e.ScaleIcon(10), 1e-4)
}

func TestScaleAlignment(t *testing.T) {
	phone := newTestEngine(360, 640)
	a := model.Alignment{X: -1, Y: 0.5}
	assert.Equal(t, a, phone.ScaleAlignment(a))

	tablet := newTestEngine(800, 1280)
	require.True(t, tablet.IsTablet())
	scaled := tablet.ScaleAlignment(a)
	assert.InDelta(t, -0.85, scaled.X, 1e-6)
	assert.InDelta(t, 0.425, scaled.Y, 1e-6)
}

func TestAlignBiasClamped(t *testing.T) {
	e := newTestEngine(800, 1280, WithAlignTabletBias(1.5))
	assert.InDelta(t, 1.0, e.Config().AlignTabletBias, 1e-6)

	e.Configure(WithAlignTabletBias(-0.2))
	assert.InDelta(t, 0.0, e.Config().AlignTabletBias, 1e-6)
	assert.Equal(t, model.Alignment{}, e.ScaleAlignment(model.Alignment{X: 1, Y: 1}))
}

func TestScaleOffsetAndSizeAndPadding(t *testing.T) {
	e := newTestEngine(720, 1280)
	require.True(t, e.IsTablet())
	factor := e.Factor()

	off := e.ScaleOffset(fyne.NewPos(3, -4))
	assert.InDelta(t, 3*factor, off.X, 1e-4)
	assert.InDelta(t, -4*factor, off.Y, 1e-4)

	size := e.ScaleSize(fyne.NewSize(100, 50))
	assert.InDelta(t, 100*factor, size.Width, 1e-4)
	assert.InDelta(t, 50*factor, size.Height, 1e-4)

	pad := e.ScalePadding(model.Padding{Left: 1, Top: 2, Right: 3, Bottom: 4})
	assert.InDelta(t, 1*factor, pad.Left, 1e-4)
	assert.InDelta(t, 2*factor, pad.Top, 1e-4)
	assert.InDelta(t, 3*factor, pad.Right, 1e-4)
	assert.InDelta(t, 4*factor, pad.Bottom, 1e-4)
}

func TestPercentClamping(t *testing.T) {
	e := newTestEngine(400, 800)

	assert.InDelta(t, 200.0, e.PercentWidth(0.5), 1e-4)
	assert.InDelta(t, 0.0, e.PercentWidth(-0.5), 1e-6)
	assert.InDelta(t, 400.0, e.PercentWidth(1.5), 1e-4)
	assert.InDelta(t, 200.0, e.PercentHeight(0.25), 1e-4)
	assert.InDelta(t, 800.0, e.PercentHeight(2), 1e-4)
}

func TestReconfigureBaselineIsDeterministic(t *testing.T) {
	e := newTestEngine(720, 1280)
	require.True(t, e.IsTablet())
	assert.InDelta(t, 1.9, e.Factor(), 1e-4) // avg 2.0 deflated

	// same viewport against its own size as baseline: ratio 1, still a
	// tablet by width, no residue from the previous configuration.
	e.Configure(WithBaseSize(720, 1280))
	assert.True(t, e.IsTablet())
	assert.InDelta(t, 0.95, e.Factor(), 1e-4)

	e.Configure(WithBaseSize(360, 640))
	assert.InDelta(t, 1.9, e.Factor(), 1e-4)
}

func TestPadWithSafeArea(t *testing.T) {
	e := newTestEngine(390, 844, WithInsetsSource(StaticInsets{
		Safe: model.Padding{Top: 24, Bottom: 34},
	}))

	pad := e.PadWithSafeArea(model.NewPadding(16))
	assert.InDelta(t, e.Scale(16)+24, pad.Top, 1e-4)
	assert.InDelta(t, e.Scale(16)+34, pad.Bottom, 1e-4)
	assert.InDelta(t, e.Scale(16), pad.Left, 1e-4)
	assert.InDelta(t, e.Scale(16), pad.Right, 1e-4)
}

func TestInsetsReadAtCallTime(t *testing.T) {
	src := &mutableInsets{}
	e := newTestEngine(360, 640, WithInsetsSource(src))

	assert.Equal(t, model.Padding{}, e.SafeArea())
	src.safe = model.Padding{Top: 44}
	assert.Equal(t, model.Padding{Top: 44}, e.SafeArea())

	src.visible = model.Padding{Bottom: 300} // keyboard up
	assert.Equal(t, model.Padding{Bottom: 300}, e.VisibleInsets())
}

type mutableInsets struct {
	safe    model.Padding
	visible model.Padding
}

func (m *mutableInsets) SafeArea() model.Padding      { return m.safe }
func (m *mutableInsets) VisibleInsets() model.Padding { return m.visible }

func TestPlatformFlags(t *testing.T) {
	tablet := newTestEngine(800, 1280, WithPlatform(StaticPlatform(OSIOS)))
	assert.True(t, tablet.IsIOS())
	assert.True(t, tablet.IsPad())
	assert.False(t, tablet.IsWeb())
	assert.False(t, tablet.IsAndroid())
	assert.False(t, tablet.IsTV())

	phone := newTestEngine(360, 640, WithPlatform(StaticPlatform(OSIOS)))
	assert.True(t, phone.IsIOS())
	assert.False(t, phone.IsPad())

	web := newTestEngine(360, 640, WithPlatform(StaticPlatform(OSWeb)))
	assert.True(t, web.IsWeb())
	assert.False(t, web.IsIOS())
}

func TestHeadlessFallsBackToBaseline(t *testing.T) {
	e := NewEngine(WithDisplaySource(FixedDisplay{}), WithBaseSize(411, 731))

	assert.InDelta(t, 411.0, e.Width(), 1e-4)
	assert.InDelta(t, 731.0, e.Height(), 1e-4)
	assert.InDelta(t, 1.0, e.Factor(), 1e-4)
}

func TestDefaultEngineIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
