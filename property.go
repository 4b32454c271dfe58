package drum

// Property is a bindable scalar value that notifies listeners on every
// assignment. It is the widget's boundary to its host: the host assigns,
// listeners run synchronously on the assigning goroutine.
//
// Set always notifies, even when the new value equals the old one. The
// rolling-digit transition policy depends on this: re-assigning the current
// digit restarts the in-flight animation with identical endpoints.
type Property[T any] struct {
	value     T
	listeners []func(old, new T)
}

// NewProperty creates a property with an initial value. No notification
// is sent for the initial value.
func NewProperty[T any](v T) *Property[T] {
	return &Property[T]{value: v}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set assigns a new value and notifies all listeners with the old and new
// values.
func (p *Property[T]) Set(v T) {
	old := p.value
	p.value = v
	for _, fn := range p.listeners {
		if fn != nil {
			fn(old, v)
		}
	}
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (p *Property[T]) Subscribe(fn func(old, new T)) func() {
	p.listeners = append(p.listeners, fn)
	idx := len(p.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		p.listeners[idx] = nil
	}
}
