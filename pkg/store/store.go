// Package store is the single source of truth for the resume records known to
// the dashboard and for the view currently drawn into the card container.
package store

import (
	"sync"

	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/notify"
	"github.com/artem13815/resumeboard/pkg/resume"
)

// Renderer turns one record into a card view.
type Renderer interface {
	Render(r resume.Record) card.View
}

// Container is the render target. Reset clears it and appends views in order.
type Container interface {
	Reset(views []card.View)
}

// Event is the "collection changed" notification.
type Event struct {
	Count int `json:"count"`
}

type Store struct {
	mu    sync.RWMutex
	items []resume.Record

	// serializes renders so the container always ends with the latest one
	renderMu  sync.Mutex
	container Container
	renderer  Renderer

	hub notify.Hub[Event]
}

type Option func(*Store)

func WithContainer(c Container) Option { return func(s *Store) { s.container = c } }

func WithRenderer(r Renderer) Option { return func(s *Store) { s.renderer = r } }

func New(opts ...Option) *Store {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SetItems replaces the whole collection, keeping the given order.
func (s *Store) SetItems(items []resume.Record) {
	s.mu.Lock()
	s.items = cloneAll(items)
	n := len(s.items)
	s.mu.Unlock()
	s.changed(n)
}

// AddItem appends one record. Duplicate ids are allowed to coexist.
func (s *Store) AddItem(item resume.Record) {
	s.mu.Lock()
	s.items = append(s.items, item.Clone())
	n := len(s.items)
	s.mu.Unlock()
	s.changed(n)
}

// Update atomically replaces the collection with fn(current). fn receives a copy.
// It is the goroutine-safe form of reading the items, mapping them and setting them back.
func (s *Store) Update(fn func(items []resume.Record) []resume.Record) {
	s.mu.Lock()
	s.items = cloneAll(fn(cloneAll(s.items)))
	n := len(s.items)
	s.mu.Unlock()
	s.changed(n)
}

// Items returns a copy of the collection; mutating it does not affect the store.
func (s *Store) Items() []resume.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.items)
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Visible returns the filtered and sorted subset without rendering it.
func (s *Store) Visible(f Filter) []resume.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Apply(s.items, f)
}

// RenderCurrent redraws the container with the records that pass f.
// Without a container or renderer this is a no-op.
func (s *Store) RenderCurrent(f Filter) {
	if s.container == nil || s.renderer == nil {
		return
	}
	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	list := s.Visible(f)
	views := make([]card.View, 0, len(list))
	for _, r := range list {
		views = append(views, s.renderer.Render(r))
	}
	s.container.Reset(views)
}

// Categories returns distinct category tags in order of first appearance.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	out := []string{}
	for _, it := range s.items {
		for _, c := range it.Categories {
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// Positions returns distinct positions in order of first appearance.
func (s *Store) Positions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	out := []string{}
	for _, it := range s.items {
		if !it.HasPosition() {
			continue
		}
		if _, ok := seen[*it.Position]; ok {
			continue
		}
		seen[*it.Position] = struct{}{}
		out = append(out, *it.Position)
	}
	return out
}

// Subscribe registers a collection-changed listener.
func (s *Store) Subscribe(fn func(Event)) int { return s.hub.Subscribe(fn) }

func (s *Store) Unsubscribe(id int) { s.hub.Unsubscribe(id) }

func (s *Store) changed(n int) {
	s.RenderCurrent(Filter{})
	s.hub.Publish(Event{Count: n})
}

func cloneAll(items []resume.Record) []resume.Record {
	if items == nil {
		return []resume.Record{}
	}
	out := make([]resume.Record, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
