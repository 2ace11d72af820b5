package tui

// Signal is an append-only list of handlers. Handlers run in the order they
// were connected and there is no way to disconnect one.
type Signal[T any] struct {
	slots []func(T)
}

// Connect appends fn. Connecting the same function twice runs it twice.
func (s *Signal[T]) Connect(fn func(T)) {
	if fn == nil {
		return
	}
	s.slots = append(s.slots, fn)
}

// Emit calls every handler with v.
func (s *Signal[T]) Emit(v T) {
	// handlers connected during emission wait for the next one
	slots := s.slots
	for _, fn := range slots {
		fn(v)
	}
}

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// Notify is a signal without a payload.
type Notify = Signal[struct{}]
