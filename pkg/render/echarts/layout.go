package echarts

import (
	"github.com/matzehuels/chartbridge/pkg/chart"
)

// Grid margins in pixels.
const (
	MarginMinimal      = 10 // every edge when the legend is hidden
	MarginDefault      = 30 // non-legend edges when the legend is shown
	MarginLegend       = 60 // the edge the legend is anchored to
	MarginTitle        = 30 // added to the top edge when a title is set
	MarginHeatmapScale = 60 // added to the bottom edge for the heatmap value scale
	MarginZoomSlider   = 40 // added to the bottom edge for the zoom slider
)

func buildTooltip(b *build) Object {
	if !b.cfg.Tooltip.Visible() {
		return Object{"show": false}
	}
	t := Object{
		"show":            true,
		"backgroundColor": b.theme.Background,
		"borderColor":     b.theme.AxisColor,
		"textStyle":       Object{"color": b.theme.TextColor},
	}
	if b.theme.Background == "" || b.theme.Background == "transparent" {
		delete(t, "backgroundColor")
	}
	if itemTrigger(b.typ) {
		t["trigger"] = "item"
	} else {
		t["trigger"] = "axis"
		pointer := "line"
		if b.typ == chart.Bar {
			pointer = "shadow"
		}
		t["axisPointer"] = Object{"type": pointer}
	}
	if b.cfg.Tooltip != nil && b.cfg.Tooltip.Format != "" {
		t["formatter"] = b.cfg.Tooltip.Format
	}
	return t
}

func buildLegend(b *build) Object {
	if !b.cfg.Legend.Visible() {
		return Object{"show": false}
	}
	names := make([]string, len(b.cfg.Series))
	for i, s := range b.cfg.Series {
		names[i] = s.Name
	}
	l := Object{
		"show":      true,
		"type":      "scroll",
		"data":      names,
		"textStyle": Object{"color": b.theme.TextColor},
	}
	switch b.cfg.Legend.Anchor() {
	case chart.LegendBottom:
		l["bottom"] = 0
		l["left"] = "center"
		l["orient"] = "horizontal"
	case chart.LegendLeft:
		l["left"] = 0
		l["top"] = "middle"
		l["orient"] = "vertical"
	case chart.LegendRight:
		l["right"] = 0
		l["top"] = "middle"
		l["orient"] = "vertical"
	default:
		top := 0
		if b.cfg.Title != "" {
			top = MarginTitle
		}
		l["top"] = top
		l["left"] = "center"
		l["orient"] = "horizontal"
	}
	return l
}

// margins is the computed plot-area inset.
type margins struct {
	top, right, bottom, left int
}

func computeMargins(b *build) margins {
	var m margins
	if b.cfg.Legend.Visible() {
		m = margins{MarginDefault, MarginDefault, MarginDefault, MarginDefault}
		switch b.cfg.Legend.Anchor() {
		case chart.LegendBottom:
			m.bottom = MarginLegend
		case chart.LegendLeft:
			m.left = MarginLegend
		case chart.LegendRight:
			m.right = MarginLegend
		default:
			m.top = MarginLegend
		}
	} else {
		m = margins{MarginMinimal, MarginMinimal, MarginMinimal, MarginMinimal}
	}
	if b.cfg.Title != "" {
		m.top += MarginTitle
	}
	m.bottom += b.shape.bottomReserve
	if b.cfg.Zoom {
		m.bottom += MarginZoomSlider
	}
	return m
}

func buildGrid(b *build) Object {
	m := computeMargins(b)
	if g := b.cfg.Grid; g != nil {
		if g.Top != nil {
			m.top = *g.Top
		}
		if g.Right != nil {
			m.right = *g.Right
		}
		if g.Bottom != nil {
			m.bottom = *g.Bottom
		}
		if g.Left != nil {
			m.left = *g.Left
		}
	}
	return Object{
		"top":          m.top,
		"right":        m.right,
		"bottom":       m.bottom,
		"left":         m.left,
		"containLabel": true,
	}
}

var axisTypes = map[chart.AxisType]string{
	chart.AxisCategory: "category",
	chart.AxisNumeric:  "value",
	chart.AxisDatetime: "time",
}

// buildAxis renders one axis descriptor. fallback applies when the
// descriptor is absent or declares no type.
func buildAxis(b *build, a *chart.Axis, fallback chart.AxisType) Object {
	kind := fallback
	if a != nil && a.Type != "" {
		kind = a.Type
	}
	typ, ok := axisTypes[kind]
	if !ok {
		typ = axisTypes[fallback]
	}

	out := Object{
		"type":      typ,
		"show":      a.Visible(),
		"axisLine":  Object{"lineStyle": Object{"color": b.theme.AxisColor}},
		"axisLabel": Object{"color": b.theme.TextColor},
		"splitLine": Object{
			"show":      typ == "value" || (b.cfg.Grid != nil && b.cfg.Grid.ShowLines),
			"lineStyle": Object{"color": b.theme.SplitLineColor},
		},
	}
	if typ == "category" {
		out["boundaryGap"] = b.typ == chart.Bar || b.typ == chart.Heatmap
	}
	if a == nil {
		return out
	}

	if len(a.Categories) > 0 {
		out["data"] = append([]string(nil), a.Categories...)
	}
	if a.Title != "" {
		out["name"] = a.Title
		out["nameLocation"] = "middle"
		out["nameGap"] = MarginDefault
		out["nameTextStyle"] = Object{"color": b.theme.TextColor}
	}
	if a.Min != nil {
		out["min"] = *a.Min
	}
	if a.Max != nil {
		out["max"] = *a.Max
	}
	if a.Format != "" {
		out["axisLabel"].(Object)["formatter"] = a.Format
	}
	return out
}

func buildToolbox(b *build) Object {
	features := Object{
		"saveAsImage": Object{"title": "Save"},
		"restore":     Object{"title": "Reset"},
		"dataView":    Object{"title": "Data", "readOnly": true},
	}
	if b.shape.coordinates {
		features["dataZoom"] = Object{"yAxisIndex": "none"}
		features["brush"] = Object{"type": []string{"rect", "polygon", "clear"}}
	}
	if b.shape == cartesianShape {
		features["magicType"] = Object{"type": []string{"line", "bar"}}
	}
	return Object{
		"show":      true,
		"right":     MarginMinimal,
		"top":       0,
		"feature":   features,
		"iconStyle": Object{"borderColor": b.theme.AxisColor},
	}
}

// buildDataZoom adds an inside and a slider zoom bound to the category axis.
func buildDataZoom(b *build) []any {
	axis := "xAxisIndex"
	if b.cfg.Horizontal && b.shape == cartesianShape {
		axis = "yAxisIndex"
	}
	return []any{
		Object{"type": "inside", axis: 0, "start": 0, "end": 100},
		Object{
			"type":   "slider",
			axis:     0,
			"start":  0,
			"end":    100,
			"bottom": MarginMinimal,
			"height": MarginZoomSlider - 2*MarginMinimal,
		},
	}
}
