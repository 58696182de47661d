package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/resumeboard/pkg/notify"
	"github.com/artem13815/resumeboard/pkg/storage"
)

// Manager owns the process-wide settings: defaults at start, persisted overlay,
// explicit save and a synchronous "settings changed" broadcast.
type Manager struct {
	mu      sync.RWMutex
	current Settings
	kv      storage.KV
	log     logrus.FieldLogger
	hub     notify.Hub[Settings]
}

func NewManager(kv storage.KV, log logrus.FieldLogger) *Manager {
	return &Manager{
		current: Defaults(),
		kv:      kv,
		log:     log.WithField("component", "settings"),
	}
}

// Load overlays previously persisted values onto the defaults.
// A missing or malformed blob is logged and the defaults are kept.
func (m *Manager) Load(ctx context.Context) Settings {
	if m.kv == nil {
		return m.Current()
	}
	data, err := m.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WithError(err).Error("failed to read persisted settings")
		}
		return m.Current()
	}
	if err := validatePersisted(data); err != nil {
		m.log.WithError(err).Error("failed to load settings")
		return m.Current()
	}
	m.mu.Lock()
	next := m.current
	if err := json.Unmarshal(data, &next); err != nil {
		m.mu.Unlock()
		m.log.WithError(err).Error("failed to load settings")
		return m.Current()
	}
	m.current = next
	m.mu.Unlock()
	m.log.WithField("itemsPerPage", next.ItemsPerPage).Info("settings loaded")
	return next
}

// Current returns a copy of the active settings.
func (m *Manager) Current() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Thresholds is read on every card render so badge colors follow the latest save.
func (m *Manager) Thresholds() Thresholds {
	return m.Current().ScoreThresholds
}

// Apply validates a user edit and, when valid, commits, persists and broadcasts it.
// Validation errors leave the settings untouched.
func (m *Manager) Apply(ctx context.Context, e Edit) (Settings, error) {
	m.mu.Lock()
	next, err := e.applyTo(m.current)
	if err != nil {
		m.mu.Unlock()
		return m.Current(), err
	}
	m.current = next
	m.mu.Unlock()
	return next, m.Save(ctx)
}

// Save persists the current settings and notifies listeners.
// Listeners are notified even if persisting fails: the in-memory value is already active.
func (m *Manager) Save(ctx context.Context) error {
	cur := m.Current()
	var saveErr error
	if m.kv != nil {
		data, err := json.Marshal(cur)
		if err != nil {
			saveErr = fmt.Errorf("encode settings: %w", err)
		} else if err := m.kv.Set(ctx, StorageKey, data); err != nil {
			saveErr = fmt.Errorf("persist settings: %w", err)
		}
	}
	if saveErr != nil {
		m.log.WithError(saveErr).Warn("settings not persisted")
	}
	m.hub.Publish(cur)
	return saveErr
}

func (m *Manager) Subscribe(fn func(Settings)) int { return m.hub.Subscribe(fn) }

func (m *Manager) Unsubscribe(id int) { m.hub.Unsubscribe(id) }
