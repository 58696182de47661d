// Package board holds the rendered cards of the #resume-container.
package board

import (
	"sync"

	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/settings"
)

// Board implements store.Container. It is safe for concurrent use.
type Board struct {
	mu    sync.RWMutex
	views []card.View
	// renders counts Reset calls; Recolor leaves it alone.
	renders int
}

func New() *Board { return &Board{} }

func (b *Board) Reset(views []card.View) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.views = append([]card.View(nil), views...)
	b.renders++
}

// Views returns a snapshot of the cards in display order.
func (b *Board) Views() []card.View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]card.View(nil), b.views...)
}

// Renders reports how many times the list has been redrawn.
func (b *Board) Renders() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.renders
}

// Recolor re-applies badge styles to the cards already on the board.
func (b *Board) Recolor(th settings.Thresholds) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.views {
		b.views[i].Recolor(th)
	}
}

// Watch recolors the board whenever settings are saved. It returns the subscription id.
func (b *Board) Watch(m *settings.Manager) int {
	return m.Subscribe(func(s settings.Settings) { b.Recolor(s.ScoreThresholds) })
}
