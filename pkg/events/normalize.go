package events

import (
	"github.com/matzehuels/chartbridge/pkg/errors"
)

// Normalize projects a native payload from channel into its record type:
// [Click], [Hover], [MouseOut], [LegendSelect], [DataZoom] or [BrushSelect].
func Normalize(channel Channel, p Payload) (any, error) {
	switch channel {
	case ChannelClick:
		return NormalizeClick(p), nil
	case ChannelMouseOver:
		return NormalizeHover(p), nil
	case ChannelMouseOut:
		return NormalizeMouseOut(p), nil
	case ChannelLegendSelect:
		return NormalizeLegendSelect(p), nil
	case ChannelDataZoom:
		return NormalizeDataZoom(p), nil
	case ChannelBrushSelected:
		return NormalizeBrushSelect(p), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidChannel, "unknown event channel %q", channel)
}

// NormalizeClick projects a click payload.
func NormalizeClick(p Payload) Click {
	return Click{
		ComponentType: componentType(p),
		SeriesName:    str(p, "seriesName"),
		SeriesIndex:   index(p, "seriesIndex"),
		DataIndex:     index(p, "dataIndex"),
		Name:          str(p, "name"),
		Value:         NormalizeValue(p["value"]),
		Raw:           p,
	}
}

// NormalizeHover projects a mouseover payload.
func NormalizeHover(p Payload) Hover {
	return Hover{
		SeriesName:  str(p, "seriesName"),
		SeriesIndex: index(p, "seriesIndex"),
		DataIndex:   index(p, "dataIndex"),
		Name:        str(p, "name"),
		Value:       NormalizeValue(p["value"]),
		Raw:         p,
	}
}

// NormalizeMouseOut projects a mouseout payload.
func NormalizeMouseOut(p Payload) MouseOut {
	return MouseOut{
		SeriesName:  str(p, "seriesName"),
		SeriesIndex: index(p, "seriesIndex"),
		DataIndex:   index(p, "dataIndex"),
		Raw:         p,
	}
}

// NormalizeLegendSelect projects a legend toggle payload.
func NormalizeLegendSelect(p Payload) LegendSelect {
	selected := map[string]bool{}
	if m, ok := object(p["selected"]); ok {
		for k, v := range m {
			b, _ := v.(bool)
			selected[k] = b
		}
	}
	return LegendSelect{
		Name:     str(p, "name"),
		Selected: selected,
		Raw:      p,
	}
}

// NormalizeDataZoom projects a zoom payload. When the payload carries a
// batch, its first entry wins over the top-level fields.
func NormalizeDataZoom(p Payload) DataZoom {
	src := p
	if batch, ok := list(p["batch"]); ok && len(batch) > 0 {
		if first, ok := object(batch[0]); ok {
			src = first
		}
	}
	z := DataZoom{Raw: p}
	z.Start, _ = number(src["start"])
	z.End, _ = number(src["end"])
	if v, ok := number(src["startValue"]); ok {
		z.StartValue = &v
	}
	if v, ok := number(src["endValue"]); ok {
		z.EndValue = &v
	}
	return z
}

// NormalizeBrushSelect projects a brush payload. Areas and selections are
// collected from every batch entry; without a batch the top-level fields
// are read instead.
func NormalizeBrushSelect(p Payload) BrushSelect {
	b := BrushSelect{Areas: []BrushArea{}, Batch: []BrushBatch{}, Raw: p}

	sources := []map[string]any{p}
	if batch, ok := list(p["batch"]); ok {
		sources = sources[:0]
		for _, entry := range batch {
			if m, ok := object(entry); ok {
				sources = append(sources, m)
			}
		}
	}

	for _, src := range sources {
		for _, a := range objects(src["areas"]) {
			area := BrushArea{
				BrushType:  str(a, "brushType"),
				CoordRange: a["coordRange"],
			}
			if rs, ok := list(a["coordRanges"]); ok {
				area.CoordRanges = rs
			}
			b.Areas = append(b.Areas, area)
		}
		for _, sel := range objects(src["selected"]) {
			b.Batch = append(b.Batch, BrushBatch{
				SeriesIndex: index(sel, "seriesIndex"),
				DataIndex:   indices(sel["dataIndex"]),
			})
		}
	}
	return b
}

func componentType(p Payload) ComponentType {
	switch ct := ComponentType(str(p, "componentType")); ct {
	case ComponentMarkPoint, ComponentMarkLine, ComponentMarkArea:
		return ct
	}
	return ComponentSeries
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func index(m map[string]any, key string) int {
	f, ok := number(m[key])
	if !ok {
		return NoIndex
	}
	return int(f)
}

func indices(v any) []int {
	out := []int{}
	items, _ := list(v)
	for _, it := range items {
		if f, ok := number(it); ok {
			out = append(out, int(f))
		}
	}
	return out
}

func objects(v any) []map[string]any {
	items, _ := list(v)
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := object(it); ok {
			out = append(out, m)
		}
	}
	return out
}
