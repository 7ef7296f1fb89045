package events

// Binder ties a normalizer to the lifecycle of a host that may recreate its
// renderer instance.
type Binder struct {
	n *Normalizer
}

// NewBinder returns a binder driving n.
func NewBinder(n *Normalizer) *Binder {
	return &Binder{n: n}
}

// Bind is called whenever the host's renderer instance becomes available or
// changes. A replacement is attached only after the old instance has been
// detached; a nil instance just detaches.
func (b *Binder) Bind(inst Instance) *Subscription {
	if inst == nil {
		b.n.Detach()
		return nil
	}
	return b.n.Attach(inst)
}

// Close detaches unconditionally. Call it on host teardown.
func (b *Binder) Close() error {
	b.n.Detach()
	return nil
}
