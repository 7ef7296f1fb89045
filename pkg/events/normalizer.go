package events

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartbridge/pkg/observability"
)

// Handlers receives normalized events. Nil callbacks are skipped; their
// channels are still subscribed.
type Handlers struct {
	OnClick        func(Click)
	OnHover        func(Hover)
	OnMouseOut     func(MouseOut)
	OnLegendSelect func(LegendSelect)
	OnDataZoom     func(DataZoom)
	OnBrushSelect  func(BrushSelect)
}

// Normalizer forwards normalized events from at most one live renderer
// instance. Attach and detach are serialized.
type Normalizer struct {
	handlers Handlers
	logger   *log.Logger
	hooks    observability.EventHooks

	mu      sync.Mutex
	current *Subscription
}

// Option configures a [Normalizer].
type Option func(*Normalizer)

// WithLogger routes attach and detach diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithHooks overrides the globally registered event hooks.
func WithHooks(h observability.EventHooks) Option {
	return func(n *Normalizer) { n.hooks = h }
}

// NewNormalizer creates a normalizer delivering to h.
func NewNormalizer(h Handlers, opts ...Option) *Normalizer {
	n := &Normalizer{
		handlers: h,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) eventHooks() observability.EventHooks {
	if n.hooks != nil {
		return n.hooks
	}
	return observability.Events()
}

// Subscription is the handle of one attachment. Dispose removes every
// native listener it registered.
type Subscription struct {
	id        string
	owner     *Normalizer
	instance  Instance
	listeners map[Channel]ListenerID
	disposed  bool // guarded by owner.mu
}

// ID returns the unique subscription id.
func (s *Subscription) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Instance returns the subscribed renderer instance.
func (s *Subscription) Instance() Instance {
	if s == nil {
		return nil
	}
	return s.instance
}

// Dispose detaches from the instance. It is safe to call more than once and
// on a nil subscription.
func (s *Subscription) Dispose() {
	if s == nil {
		return
	}
	n := s.owner
	n.mu.Lock()
	defer n.mu.Unlock()
	n.release(s)
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	if s == nil {
		return false
	}
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return !s.disposed
}

// Attach subscribes to the six native channels of inst.
//
// Attaching the instance that is already attached returns the existing
// subscription. Attaching a different instance disposes the previous
// subscription first. A nil instance attaches nothing and returns nil.
func (n *Normalizer) Attach(inst Instance) *Subscription {
	if inst == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if cur := n.current; cur != nil {
		if cur.instance == inst {
			return cur
		}
		n.release(cur)
	}

	s := &Subscription{
		id:        uuid.NewString(),
		owner:     n,
		instance:  inst,
		listeners: make(map[Channel]ListenerID, len(Channels())),
	}
	for _, ch := range Channels() {
		s.listeners[ch] = inst.On(ch, n.forwarder(ch))
	}
	n.current = s

	n.logger.Debug("attached renderer instance", "subscription", s.id)
	n.eventHooks().OnAttach(s.id)
	return s
}

// Detach disposes the current subscription, if any.
func (n *Normalizer) Detach() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil {
		n.release(n.current)
	}
}

// Current returns the live subscription or nil.
func (n *Normalizer) Current() *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// release must be called with n.mu held.
func (n *Normalizer) release(s *Subscription) {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, ch := range Channels() {
		if id, ok := s.listeners[ch]; ok {
			s.instance.Off(ch, id)
		}
	}
	if n.current == s {
		n.current = nil
	}
	n.logger.Debug("detached renderer instance", "subscription", s.id)
	n.eventHooks().OnDetach(s.id)
}

// forwarder builds the native handler for ch. It runs inside the
// renderer's dispatch and returns as soon as the callback does.
func (n *Normalizer) forwarder(ch Channel) NativeHandler {
	h := n.handlers
	var deliver func(Payload) bool
	switch ch {
	case ChannelClick:
		deliver = func(p Payload) bool { return call(h.OnClick, NormalizeClick, p) }
	case ChannelMouseOver:
		deliver = func(p Payload) bool { return call(h.OnHover, NormalizeHover, p) }
	case ChannelMouseOut:
		deliver = func(p Payload) bool { return call(h.OnMouseOut, NormalizeMouseOut, p) }
	case ChannelLegendSelect:
		deliver = func(p Payload) bool { return call(h.OnLegendSelect, NormalizeLegendSelect, p) }
	case ChannelDataZoom:
		deliver = func(p Payload) bool { return call(h.OnDataZoom, NormalizeDataZoom, p) }
	case ChannelBrushSelected:
		deliver = func(p Payload) bool { return call(h.OnBrushSelect, NormalizeBrushSelect, p) }
	default:
		deliver = func(Payload) bool { return false }
	}
	return func(p Payload) {
		if deliver(p) {
			n.eventHooks().OnEventForwarded(string(ch))
		}
	}
}

func call[T any](fn func(T), project func(Payload) T, p Payload) bool {
	if fn == nil {
		return false
	}
	fn(project(p))
	return true
}
