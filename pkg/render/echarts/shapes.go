package echarts

import (
	"fmt"

	"github.com/matzehuels/chartbridge/pkg/chart"
)

// shape owns everything that differs between chart families. One shape is
// selected per transform and passed to every builder.
type shape struct {
	name          string
	coordinates   bool // draws a cartesian grid with x/y axes
	bottomReserve int  // extra bottom margin, independent of the legend
	series        func(b *build) []any
	axes          func(b *build) (x, y Object)
	extras        func(b *build, o Options)
}

var (
	cartesianShape = &shape{
		name:        "cartesian",
		coordinates: true,
		series:      cartesianSeries,
		axes:        cartesianAxes,
	}
	pieShape = &shape{
		name:   "pie",
		series: pieSeries,
	}
	scatterShape = &shape{
		name:        "scatter",
		coordinates: true,
		series:      scatterSeries,
		axes:        scatterAxes,
	}
	radarShape = &shape{
		name:   "radar",
		series: radarSeries,
		extras: radarIndicators,
	}
	heatmapShape = &shape{
		name:          "heatmap",
		coordinates:   true,
		bottomReserve: MarginHeatmapScale,
		series:        heatmapSeries,
		axes:          heatmapAxes,
		extras:        heatmapVisualMap,
	}
)

var shapes = map[chart.Type]*shape{
	chart.Line:    cartesianShape,
	chart.Bar:     cartesianShape,
	chart.Area:    cartesianShape,
	chart.Mixed:   cartesianShape,
	chart.Pie:     pieShape,
	chart.Donut:   pieShape,
	chart.Scatter: scatterShape,
	chart.Radar:   radarShape,
	chart.Heatmap: heatmapShape,
}

func shapeFor(typ chart.Type) (*shape, bool) {
	sh, ok := shapes[typ]
	return sh, ok
}

// seriesKind resolves the effective type of a series in a cartesian chart.
func (b *build) seriesKind(s chart.Series) chart.Type {
	if s.Type != "" && s.Type != b.typ {
		switch s.Type {
		case chart.Line, chart.Bar, chart.Area, chart.Scatter:
			return s.Type
		default:
			b.warn(WarnIgnoredSeriesType, "series %q: type %q cannot be mixed into a %s chart", s.Name, s.Type, b.typ)
		}
	}
	if b.typ == chart.Mixed {
		return chart.Line
	}
	return b.typ
}

func stackable(kind chart.Type) bool {
	return kind == chart.Bar || kind == chart.Line || kind == chart.Area
}

func cartesianSeries(b *build) []any {
	out := make([]any, 0, len(b.cfg.Series))
	for i, s := range b.cfg.Series {
		kind := b.seriesKind(s)
		entry := Object{"name": s.Name}

		switch kind {
		case chart.Scatter:
			entry["type"] = "scatter"
			entry["data"] = scatterData(s.Data)
		case chart.Bar:
			entry["type"] = "bar"
			entry["data"] = plainData(s.Data)
		default:
			entry["type"] = "line"
			entry["data"] = plainData(s.Data)
			applyStroke(entry, b.cfg.Stroke)
			if kind == chart.Area {
				entry["areaStyle"] = Object{"opacity": 0.3}
			}
		}

		if c := b.seriesColor(i, s); c != "" {
			entry["itemStyle"] = Object{"color": c}
		}
		if b.cfg.Stacked && stackable(kind) {
			entry["stack"] = StackID
		}
		out = append(out, entry)
	}
	return out
}

func applyStroke(entry Object, st *chart.Stroke) {
	if st == nil {
		return
	}
	line := Object{}
	if st.Width > 0 {
		line["width"] = st.Width
	}
	if len(st.Dash) > 0 {
		line["type"] = append([]int(nil), st.Dash...)
	}
	if len(line) > 0 {
		entry["lineStyle"] = line
	}
	switch st.Curve {
	case chart.CurveSmooth:
		entry["smooth"] = true
	case chart.CurveStepline:
		entry["step"] = "middle"
	}
}

func cartesianAxes(b *build) (Object, Object) {
	if b.cfg.Horizontal {
		// The x descriptor still describes the category dimension; it is
		// drawn vertically.
		return buildAxis(b, b.cfg.YAxis, chart.AxisNumeric), buildAxis(b, b.cfg.XAxis, chart.AxisCategory)
	}
	return buildAxis(b, b.cfg.XAxis, chart.AxisCategory), buildAxis(b, b.cfg.YAxis, chart.AxisNumeric)
}

// plainData keeps numbers as numbers, gaps as nil and points/tuples as
// positional arrays.
func plainData(d chart.Data) []any {
	out := make([]any, len(d))
	for i, e := range d {
		switch e.Kind {
		case chart.DatumNumber:
			out[i] = e.Value
		case chart.DatumPoint:
			out[i] = []float64{e.X, e.Y}
		case chart.DatumTuple:
			out[i] = append([]float64(nil), e.Tuple...)
		default:
			out[i] = nil
		}
	}
	return out
}

// Pie radii as [inner, outer] percentages.
var (
	pieRadius   = []string{"0%", "70%"}
	donutRadius = []string{"40%", "70%"}
)

func pieSeries(b *build) []any {
	slices := make([]any, 0, len(b.cfg.Series))
	for i, s := range b.cfg.Series {
		slice := Object{"name": s.Name, "value": sliceValue(s.Data)}
		if c := b.seriesColor(i, s); c != "" {
			slice["itemStyle"] = Object{"color": c}
		}
		slices = append(slices, slice)
	}

	radius := pieRadius
	if b.typ == chart.Donut {
		radius = donutRadius
	}
	return []any{Object{
		"type":              "pie",
		"radius":            append([]string(nil), radius...),
		"center":            []string{"50%", "50%"},
		"avoidLabelOverlap": true,
		"label":             Object{"color": b.theme.TextColor},
		"data":              slices,
	}}
}

// sliceValue reads a slice's scalar; multi-entry data is summed.
func sliceValue(d chart.Data) float64 {
	if len(d) == 1 {
		return d[0].Number()
	}
	return d.Sum()
}

func scatterSeries(b *build) []any {
	out := make([]any, 0, len(b.cfg.Series))
	for i, s := range b.cfg.Series {
		entry := Object{
			"name":       s.Name,
			"type":       "scatter",
			"symbolSize": 10,
			"data":       scatterData(s.Data),
		}
		if c := b.seriesColor(i, s); c != "" {
			entry["itemStyle"] = Object{"color": c}
		}
		out = append(out, entry)
	}
	return out
}

// scatterData flattens {x, y} points to [x, y]; tuples pass through and bare
// numbers are positioned by index.
func scatterData(d chart.Data) []any {
	out := make([]any, 0, len(d))
	for i, e := range d {
		switch e.Kind {
		case chart.DatumPoint:
			out = append(out, []float64{e.X, e.Y})
		case chart.DatumTuple:
			out = append(out, append([]float64(nil), e.Tuple...))
		case chart.DatumNumber:
			out = append(out, []float64{float64(i), e.Value})
		default:
			out = append(out, nil)
		}
	}
	return out
}

func scatterAxes(b *build) (Object, Object) {
	return buildAxis(b, b.cfg.XAxis, chart.AxisNumeric), buildAxis(b, b.cfg.YAxis, chart.AxisNumeric)
}

func radarSeries(b *build) []any {
	out := make([]any, 0, len(b.cfg.Series))
	for i, s := range b.cfg.Series {
		values := make([]float64, len(s.Data))
		for j, e := range s.Data {
			values[j] = e.Number()
		}
		entry := Object{"name": s.Name, "value": values}
		if c := b.seriesColor(i, s); c != "" {
			entry["itemStyle"] = Object{"color": c}
			entry["areaStyle"] = Object{"opacity": 0.15}
		}
		// The entry carries the name; the wrapper must not.
		out = append(out, Object{"type": "radar", "data": []any{entry}})
	}
	return out
}

// radarIndicators derives one indicator per category, in category order.
func radarIndicators(b *build, o Options) {
	var categories []string
	if b.cfg.XAxis != nil {
		categories = b.cfg.XAxis.Categories
	}
	n := len(categories)
	peak := 0.0
	for _, s := range b.cfg.Series {
		n = max(n, len(s.Data))
		for _, e := range s.Data {
			peak = max(peak, e.Number())
		}
	}
	if b.cfg.YAxis != nil && b.cfg.YAxis.Max != nil {
		peak = *b.cfg.YAxis.Max
	}

	indicators := make([]any, n)
	for i := range indicators {
		name := fmt.Sprintf("%d", i+1)
		if i < len(categories) {
			name = categories[i]
		}
		ind := Object{"name": name}
		if peak > 0 {
			ind["max"] = peak
		}
		indicators[i] = ind
	}

	o["radar"] = Object{
		"indicator": indicators,
		"shape":     "polygon",
		"axisName":  Object{"color": b.theme.TextColor},
		"splitLine": Object{"lineStyle": Object{"color": b.theme.SplitLineColor}},
	}
}

// heatmapSeries shapes every series as a row of [xIndex, yIndex, value]
// cells, where yIndex is the series index. Three-element tuples are already
// cells and pass through.
func heatmapSeries(b *build) []any {
	out := make([]any, 0, len(b.cfg.Series))
	for i, s := range b.cfg.Series {
		cells := make([]any, 0, len(s.Data))
		for j, e := range s.Data {
			switch {
			case e.Kind == chart.DatumTuple && len(e.Tuple) == 3:
				cells = append(cells, []any{e.Tuple[0], e.Tuple[1], e.Tuple[2]})
			case e.Kind == chart.DatumNull:
				cells = append(cells, []any{j, i, "-"})
			default:
				cells = append(cells, []any{j, i, e.Number()})
			}
		}
		out = append(out, Object{
			"name":     s.Name,
			"type":     "heatmap",
			"data":     cells,
			"label":    Object{"show": false},
			"emphasis": Object{"itemStyle": Object{"shadowBlur": 10}},
		})
	}
	return out
}

// heatmapAxes forces both axes to categories, whatever the config declares.
func heatmapAxes(b *build) (Object, Object) {
	x := buildAxis(b, b.cfg.XAxis, chart.AxisCategory)
	y := buildAxis(b, b.cfg.YAxis, chart.AxisCategory)
	x["type"], y["type"] = "category", "category"

	if _, ok := x["data"]; !ok {
		width := 0
		for _, s := range b.cfg.Series {
			width = max(width, len(s.Data))
		}
		labels := make([]string, width)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i)
		}
		x["data"] = labels
	}
	if _, ok := y["data"]; !ok {
		names := make([]string, len(b.cfg.Series))
		for i, s := range b.cfg.Series {
			names[i] = s.Name
		}
		y["data"] = names
	}
	x["splitArea"] = Object{"show": true}
	y["splitArea"] = Object{"show": true}
	return x, y
}

// heatmapVisualMap adds the value-scale legend heatmaps always need.
func heatmapVisualMap(b *build, o Options) {
	lo, hi, seen := 0.0, 0.0, false
	for _, s := range b.cfg.Series {
		for _, e := range s.Data {
			if e.Kind == chart.DatumNull {
				continue
			}
			v := e.Number()
			if !seen {
				lo, hi, seen = v, v, true
				continue
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}

	var scale []string
	switch len(b.colors) {
	case 0:
		scale = []string{b.theme.SplitLineColor, b.theme.AxisColor}
	case 1:
		scale = []string{b.theme.SplitLineColor, b.colors[0]}
	default:
		scale = []string{b.colors[0], b.colors[len(b.colors)-1]}
	}

	o["visualMap"] = Object{
		"min":        lo,
		"max":        hi,
		"calculable": true,
		"orient":     "horizontal",
		"left":       "center",
		"bottom":     MarginMinimal,
		"inRange":    Object{"color": scale},
		"textStyle":  Object{"color": b.theme.TextColor},
	}
}
