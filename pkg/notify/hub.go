// Package notify is a small synchronous observer used instead of ambient
// page-wide events: publishers own a Hub and listeners subscribe explicitly.
package notify

import "sync"

// Hub fans a value out to its listeners in subscription order.
// Listeners run synchronously on the publishing goroutine.
type Hub[T any] struct {
	mu        sync.Mutex
	next      int
	order     []int
	listeners map[int]func(T)
}

// Subscribe registers fn and returns an id for Unsubscribe.
func (h *Hub[T]) Subscribe(fn func(T)) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners == nil {
		h.listeners = make(map[int]func(T))
	}
	h.next++
	h.listeners[h.next] = fn
	h.order = append(h.order, h.next)
	return h.next
}

// Unsubscribe removes a listener; unknown ids are ignored.
func (h *Hub[T]) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.listeners[id]; !ok {
		return
	}
	delete(h.listeners, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Publish calls every listener registered at the time of the call.
// The lock is not held while listeners run, so they may subscribe or publish.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	fns := make([]func(T), 0, len(h.order))
	for _, id := range h.order {
		fns = append(fns, h.listeners[id])
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

// Len reports the number of active listeners.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.order)
}
