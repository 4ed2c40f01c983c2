package vstick

// streamHandler pairs a subscriber with its registration id.
type streamHandler[T any] struct {
	id uint32
	fn func(T)
}

// Stream fans a single producer's values out to any number of subscribers.
// The producer computes each value once; subscribers only observe it. The most
// recent value is cached and replayed to subscribers that attach later.
//
// A Stream is not safe for concurrent use.
type Stream[T any] struct {
	handlers []streamHandler[T]
	nextID   uint32
	last     T
	hasLast  bool
}

// remover is implemented by every Stream instantiation so that CallbackHandle
// does not need a type parameter.
type remover interface {
	remove(id uint32)
}

// CallbackHandle allows removing a registered subscriber.
type CallbackHandle struct {
	id  uint32
	reg remover
}

// Remove unsubscribes the callback so it no longer fires. Calling Remove more
// than once, or on a zero CallbackHandle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

// Subscribe registers fn and, if the stream has already emitted, immediately
// calls it with the latest value.
func (s *Stream[T]) Subscribe(fn func(T)) CallbackHandle {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, streamHandler[T]{id: id, fn: fn})
	if s.hasLast {
		fn(s.last)
	}
	return CallbackHandle{id: id, reg: s}
}

// Last returns the most recently emitted value, if any.
func (s *Stream[T]) Last() (T, bool) {
	return s.last, s.hasLast
}

// Len returns the number of subscribers.
func (s *Stream[T]) Len() int {
	return len(s.handlers)
}

// publish caches v and delivers it to subscribers in registration order.
func (s *Stream[T]) publish(v T) {
	s.last = v
	s.hasLast = true
	for _, h := range s.handlers {
		h.fn(v)
	}
}

// remove drops the handler with the given id. The backing array is never
// shifted in place; publish may still be ranging over it.
func (s *Stream[T]) remove(id uint32) {
	for i := range s.handlers {
		if s.handlers[i].id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// reset drops all subscribers. The cached value is kept.
func (s *Stream[T]) reset() {
	s.handlers = nil
}
