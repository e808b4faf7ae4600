// Package observe provides a minimal in-process publish/subscribe
// primitive used to fan out timeline state to interested views.
package observe

import "sync"

// Subject broadcasts values of T to its current subscribers. The zero
// value is ready to use. Emit and Subscribe are safe for concurrent
// use; handlers run synchronously on the emitting goroutine.
type Subject[T any] struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(T)
}

// Subscribe registers fn and returns a function that removes the
// subscription. Unsubscribing twice is a no-op.
func (s *Subject[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handlers == nil {
		s.handlers = make(map[int]func(T))
	}
	id := s.nextID
	s.nextID++
	s.handlers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}
}

// Emit delivers value to every subscriber registered at call time.
func (s *Subject[T]) Emit(value T) {
	s.mu.Lock()
	handlers := make([]func(T), 0, len(s.handlers))
	for _, fn := range s.handlers {
		handlers = append(handlers, fn)
	}
	s.mu.Unlock()
	for _, fn := range handlers {
		fn(value)
	}
}

// Len reports the number of active subscriptions.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}
