// Package events normalizes the native callbacks of a rendering engine into
// a small, renderer-independent event contract.
//
// A [Normalizer] subscribes to the six native channels of a live renderer
// [Instance] and forwards each payload, projected into a stable record, to
// the matching callback in [Handlers]:
//
//	n := events.NewNormalizer(events.Handlers{
//	    OnClick: func(e events.Click) { fmt.Println(e.SeriesName, e.Value) },
//	})
//	sub := n.Attach(instance)
//	defer sub.Dispose()
//
// Attaching the same live instance twice returns the existing subscription,
// so every native event is forwarded exactly once. Attaching a different
// instance disposes the previous subscription first. [Binder] wraps this
// lifecycle for hosts that recreate the renderer, for example on a theme
// switch.
//
// Every record keeps the native payload in its Raw field.
package events
