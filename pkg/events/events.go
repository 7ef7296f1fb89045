package events

// Channel names a native renderer event channel.
type Channel string

// Native channels.
const (
	ChannelClick         Channel = "click"
	ChannelMouseOver     Channel = "mouseover"
	ChannelMouseOut      Channel = "mouseout"
	ChannelLegendSelect  Channel = "legendselectchanged"
	ChannelDataZoom      Channel = "datazoom"
	ChannelBrushSelected Channel = "brushselected"
)

// Channels returns every subscribed channel in a stable order.
func Channels() []Channel {
	return []Channel{
		ChannelClick,
		ChannelMouseOver,
		ChannelMouseOut,
		ChannelLegendSelect,
		ChannelDataZoom,
		ChannelBrushSelected,
	}
}

// ParseChannel reports whether s names a known channel.
func ParseChannel(s string) (Channel, bool) {
	for _, c := range Channels() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Payload is a native event payload. Decoded JSON and typed Go values
// (map[string]bool, []int, []map[string]any) are both accepted.
type Payload = map[string]any

// NativeHandler receives native payloads from a renderer instance.
type NativeHandler func(Payload)

// ListenerID identifies one registration on an [Instance].
type ListenerID uint64

// Instance is a live renderer instance that emits native events.
// Implementations must be comparable, typically pointers.
type Instance interface {
	On(channel Channel, h NativeHandler) ListenerID
	Off(channel Channel, id ListenerID)
}

// NoIndex marks a series or data index absent from the native payload.
const NoIndex = -1

// ComponentType is the kind of element a click landed on.
type ComponentType string

// Clickable components.
const (
	ComponentSeries    ComponentType = "series"
	ComponentMarkPoint ComponentType = "markPoint"
	ComponentMarkLine  ComponentType = "markLine"
	ComponentMarkArea  ComponentType = "markArea"
)

// Click is a normalized click.
type Click struct {
	ComponentType ComponentType `json:"componentType"`
	SeriesName    string        `json:"seriesName"`
	SeriesIndex   int           `json:"seriesIndex"`
	DataIndex     int           `json:"dataIndex"`
	Name          string        `json:"name"`
	Value         Value         `json:"value"`
	Raw           Payload       `json:"raw"`
}

// Hover is a normalized mouseover.
type Hover struct {
	SeriesName  string  `json:"seriesName"`
	SeriesIndex int     `json:"seriesIndex"`
	DataIndex   int     `json:"dataIndex"`
	Name        string  `json:"name"`
	Value       Value   `json:"value"`
	Raw         Payload `json:"raw"`
}

// MouseOut is a normalized mouseout.
type MouseOut struct {
	SeriesName  string  `json:"seriesName"`
	SeriesIndex int     `json:"seriesIndex"`
	DataIndex   int     `json:"dataIndex"`
	Raw         Payload `json:"raw"`
}

// LegendSelect is a normalized legend toggle.
type LegendSelect struct {
	Name     string          `json:"name"`
	Selected map[string]bool `json:"selected"`
	Raw      Payload         `json:"raw"`
}

// DataZoom is a normalized zoom. Start and End are percentages; the value
// bounds are only set when the renderer reports them.
type DataZoom struct {
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	StartValue *float64 `json:"startValue,omitempty"`
	EndValue   *float64 `json:"endValue,omitempty"`
	Raw        Payload  `json:"raw"`
}

// BrushArea is one brushed region.
type BrushArea struct {
	BrushType   string `json:"brushType"`
	CoordRange  any    `json:"coordRange"`
	CoordRanges []any  `json:"coordRanges,omitempty"`
}

// BrushBatch lists the data items selected in one series.
type BrushBatch struct {
	SeriesIndex int   `json:"seriesIndex"`
	DataIndex   []int `json:"dataIndex"`
}

// BrushSelect is a normalized brush selection.
type BrushSelect struct {
	Areas []BrushArea  `json:"areas"`
	Batch []BrushBatch `json:"batch"`
	Raw   Payload      `json:"raw"`
}
