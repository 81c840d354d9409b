package cli

import (
	"fmt"

	"github.com/hamidzr/gscale/core"
	"github.com/sahilm/fuzzy"
)

// Metric is one derived value in the inspector output.
type Metric struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// collectMetrics derives the full metric set from an engine: the viewport
// snapshot, platform flags and a few representative scaled values.
func collectMetrics(e *core.Engine) []Metric {
	f := func(v float32) string { return fmt.Sprintf("%.2f", v) }
	return []Metric{
		{Name: "width", Value: f(e.Width())},
		{Name: "height", Value: f(e.Height())},
		{Name: "scale_factor", Value: fmt.Sprintf("%.4f", e.Factor())},
		{Name: "is_tablet", Value: fmt.Sprintf("%v", e.IsTablet())},
		{Name: "is_web", Value: fmt.Sprintf("%v", e.IsWeb())},
		{Name: "is_android", Value: fmt.Sprintf("%v", e.IsAndroid())},
		{Name: "is_ios", Value: fmt.Sprintf("%v", e.IsIOS())},
		{Name: "is_pad", Value: fmt.Sprintf("%v", e.IsPad())},
		{Name: "is_tv", Value: fmt.Sprintf("%v", e.IsTV())},
		{Name: "scale_10", Value: f(e.Scale(10))},
		{Name: "font_16", Value: f(e.ScaleFont(16))},
		{Name: "icon_24", Value: f(e.ScaleIcon(24))},
		{Name: "percent_width_50", Value: f(e.PercentWidth(0.5))},
		{Name: "percent_height_50", Value: f(e.PercentHeight(0.5))},
		{Name: "safe_area_top", Value: f(e.SafeArea().Top)},
		{Name: "safe_area_bottom", Value: f(e.SafeArea().Bottom)},
	}
}

// selectMetric fuzzy-matches a metric by name, e.g. "factor" finds
// scale_factor.
func selectMetric(metrics []Metric, query string) (Metric, bool) {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return Metric{}, false
	}
	return metrics[matches[0].Index], true
}
