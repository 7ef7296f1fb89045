package events

import (
	"sort"
	"sync"
)

// LocalInstance is an in-memory renderer instance. It dispatches emitted
// payloads synchronously to its listeners in registration order and is safe
// for concurrent use.
type LocalInstance struct {
	mu        sync.RWMutex
	next      ListenerID
	listeners map[Channel]map[ListenerID]NativeHandler
}

// NewLocalInstance returns an instance with no listeners.
func NewLocalInstance() *LocalInstance {
	return &LocalInstance{listeners: make(map[Channel]map[ListenerID]NativeHandler)}
}

// On registers h for channel.
func (l *LocalInstance) On(channel Channel, h NativeHandler) ListenerID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	if l.listeners[channel] == nil {
		l.listeners[channel] = make(map[ListenerID]NativeHandler)
	}
	l.listeners[channel][l.next] = h
	return l.next
}

// Off removes a registration. Unknown ids are ignored.
func (l *LocalInstance) Off(channel Channel, id ListenerID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.listeners[channel], id)
	if len(l.listeners[channel]) == 0 {
		delete(l.listeners, channel)
	}
}

// Emit dispatches p to every listener of channel and returns how many were
// called. Listeners run outside the lock and may call On or Off.
func (l *LocalInstance) Emit(channel Channel, p Payload) int {
	l.mu.RLock()
	ids := make([]ListenerID, 0, len(l.listeners[channel]))
	for id := range l.listeners[channel] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	handlers := make([]NativeHandler, len(ids))
	for i, id := range ids {
		handlers[i] = l.listeners[channel][id]
	}
	l.mu.RUnlock()

	for _, h := range handlers {
		h(p)
	}
	return len(handlers)
}

// ListenerCount returns the number of listeners on channel.
func (l *LocalInstance) ListenerCount(channel Channel) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.listeners[channel])
}

// Listeners returns the total number of registrations across channels.
func (l *LocalInstance) Listeners() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, m := range l.listeners {
		n += len(m)
	}
	return n
}
