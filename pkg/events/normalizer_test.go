package events

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingHooks struct {
	attached, detached, forwarded atomic.Int32
}

func (h *countingHooks) OnAttach(string)         { h.attached.Add(1) }
func (h *countingHooks) OnDetach(string)         { h.detached.Add(1) }
func (h *countingHooks) OnEventForwarded(string) { h.forwarded.Add(1) }

func clickCounter() (*Normalizer, *int) {
	n := 0
	return NewNormalizer(Handlers{OnClick: func(Click) { n++ }}), &n
}

func TestDoubleAttachForwardsOnce(t *testing.T) {
	norm, clicks := clickCounter()
	inst := NewLocalInstance()

	first := norm.Attach(inst)
	second := norm.Attach(inst)
	require.Same(t, first, second)
	require.Equal(t, len(Channels()), inst.Listeners())

	inst.Emit(ChannelClick, Payload{"seriesName": "a"})
	require.Equal(t, 1, *clicks)
}

func TestAttachReplacesInstance(t *testing.T) {
	norm, clicks := clickCounter()
	old, replacement := NewLocalInstance(), NewLocalInstance()

	s1 := norm.Attach(old)
	s2 := norm.Attach(replacement)
	require.NotSame(t, s1, s2)
	require.NotEqual(t, s1.ID(), s2.ID())
	require.False(t, s1.Active())
	require.True(t, s2.Active())

	require.Zero(t, old.Listeners())
	require.Equal(t, len(Channels()), replacement.Listeners())

	old.Emit(ChannelClick, Payload{})
	require.Zero(t, *clicks)
	replacement.Emit(ChannelClick, Payload{})
	require.Equal(t, 1, *clicks)
}

func TestDisposeRemovesAllListeners(t *testing.T) {
	norm, clicks := clickCounter()
	inst := NewLocalInstance()

	s := norm.Attach(inst)
	for _, ch := range Channels() {
		require.Equal(t, 1, inst.ListenerCount(ch), ch)
	}
	s.Dispose()
	s.Dispose()
	require.Zero(t, inst.Listeners())
	require.Nil(t, norm.Current())

	inst.Emit(ChannelClick, Payload{})
	require.Zero(t, *clicks)

	// A fresh attach after dispose creates a new subscription.
	again := norm.Attach(inst)
	require.NotSame(t, s, again)
	inst.Emit(ChannelClick, Payload{})
	require.Equal(t, 1, *clicks)
}

func TestAttachNil(t *testing.T) {
	norm, _ := clickCounter()
	s := norm.Attach(nil)
	require.Nil(t, s)
	require.NotPanics(t, s.Dispose)
	require.False(t, s.Active())
	require.Empty(t, s.ID())
}

func TestHandlersReceiveRecords(t *testing.T) {
	var (
		click  Click
		hover  Hover
		out    MouseOut
		legend LegendSelect
		zoom   DataZoom
		brush  BrushSelect
	)
	norm := NewNormalizer(Handlers{
		OnClick:        func(e Click) { click = e },
		OnHover:        func(e Hover) { hover = e },
		OnMouseOut:     func(e MouseOut) { out = e },
		OnLegendSelect: func(e LegendSelect) { legend = e },
		OnDataZoom:     func(e DataZoom) { zoom = e },
		OnBrushSelect:  func(e BrushSelect) { brush = e },
	})
	inst := NewLocalInstance()
	norm.Attach(inst)

	inst.Emit(ChannelClick, Payload{"seriesName": "s", "value": 3.0})
	inst.Emit(ChannelMouseOver, Payload{"name": "Q1", "value": []any{1.0, 2.0}})
	inst.Emit(ChannelMouseOut, Payload{"dataIndex": 4.0})
	inst.Emit(ChannelLegendSelect, Payload{"name": "s", "selected": map[string]any{"s": false}})
	inst.Emit(ChannelDataZoom, Payload{"start": 10.0, "end": 90.0})
	inst.Emit(ChannelBrushSelected, Payload{"batch": []any{}})

	require.Equal(t, "s", click.SeriesName)
	require.Equal(t, 3.0, click.Value.Float())
	require.Equal(t, ValuePair, hover.Value.Kind)
	require.Equal(t, 4, out.DataIndex)
	require.Equal(t, map[string]bool{"s": false}, legend.Selected)
	require.Equal(t, 90.0, zoom.End)
	require.NotNil(t, brush.Raw)
}

func TestNilHandlersAreSkipped(t *testing.T) {
	hooks := &countingHooks{}
	norm := NewNormalizer(Handlers{}, WithHooks(hooks))
	inst := NewLocalInstance()

	s := norm.Attach(inst)
	for _, ch := range Channels() {
		require.Equal(t, 1, inst.Emit(ch, Payload{}))
	}
	s.Dispose()

	require.EqualValues(t, 1, hooks.attached.Load())
	require.EqualValues(t, 1, hooks.detached.Load())
	require.Zero(t, hooks.forwarded.Load())
}

func TestHooksCountForwardedEvents(t *testing.T) {
	hooks := &countingHooks{}
	norm := NewNormalizer(Handlers{OnHover: func(Hover) {}}, WithHooks(hooks))
	inst := NewLocalInstance()
	norm.Attach(inst)
	norm.Attach(inst)

	inst.Emit(ChannelMouseOver, Payload{})
	inst.Emit(ChannelMouseOver, Payload{})
	require.EqualValues(t, 2, hooks.forwarded.Load())
	require.EqualValues(t, 1, hooks.attached.Load())
}

func TestBinderLifecycle(t *testing.T) {
	norm, clicks := clickCounter()
	b := NewBinder(norm)

	light := NewLocalInstance()
	dark := NewLocalInstance()

	b.Bind(light)
	light.Emit(ChannelClick, Payload{})

	// Theme switch recreates the renderer.
	b.Bind(dark)
	require.Zero(t, light.Listeners())
	dark.Emit(ChannelClick, Payload{})
	light.Emit(ChannelClick, Payload{})
	require.Equal(t, 2, *clicks)

	require.Nil(t, b.Bind(nil))
	require.Zero(t, dark.Listeners())

	b.Bind(dark)
	require.NoError(t, b.Close())
	require.Zero(t, dark.Listeners())
	require.Nil(t, norm.Current())
}

func TestConcurrentAttachDetach(t *testing.T) {
	var forwarded atomic.Int32
	norm := NewNormalizer(Handlers{OnClick: func(Click) { forwarded.Add(1) }})
	instances := []*LocalInstance{NewLocalInstance(), NewLocalInstance(), NewLocalInstance()}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inst := instances[i%len(instances)]
			norm.Attach(inst)
			inst.Emit(ChannelClick, Payload{})
			if i%7 == 0 {
				norm.Detach()
			}
		}(i)
	}
	wg.Wait()
	norm.Detach()

	for _, inst := range instances {
		require.Zero(t, inst.Listeners())
	}
}
