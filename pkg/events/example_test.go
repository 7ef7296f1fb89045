package events_test

import (
	"fmt"

	"github.com/matzehuels/chartbridge/pkg/events"
)

func ExampleNormalizer() {
	n := events.NewNormalizer(events.Handlers{
		OnClick: func(e events.Click) {
			fmt.Println(e.SeriesName, e.DataIndex, e.Value.Float())
		},
	})

	inst := events.NewLocalInstance()
	sub := n.Attach(inst)
	n.Attach(inst) // already attached, no duplicate forwarding

	inst.Emit(events.ChannelClick, events.Payload{
		"seriesName": "revenue",
		"dataIndex":  2.0,
		"value":      []any{2.0, 41.5},
	})
	sub.Dispose()
	inst.Emit(events.ChannelClick, events.Payload{"seriesName": "ignored"})
	// Output: revenue 2 41.5
}
