// Package amqp republishes dashboard notifications to a RabbitMQ topic exchange.
package amqp

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

const (
	Exchange          = "resumeboard_events"
	KeyResumesUpdated = "resumes.updated"
	KeySettingsUpdate = "settings.updated"
)

// Channel is the part of *amqp.Channel the bridge publishes through.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Bridge struct {
	mu   sync.Mutex
	ch   Channel
	conn *amqp.Connection
	log  logrus.FieldLogger

	detach []func()
}

// Dial connects, opens a channel and declares the exchange.
func Dial(url string, log logrus.FieldLogger) (*Bridge, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	b := New(ch, log)
	b.conn = conn
	return b, nil
}

func New(ch Channel, log logrus.FieldLogger) *Bridge {
	return &Bridge{ch: ch, log: log.WithField("component", "amqp")}
}

// Attach forwards store and settings notifications until Close.
func (b *Bridge) Attach(st *store.Store, sm *settings.Manager) {
	if st != nil {
		id := st.Subscribe(func(e store.Event) { b.publish(KeyResumesUpdated, e) })
		b.detach = append(b.detach, func() { st.Unsubscribe(id) })
	}
	if sm != nil {
		id := sm.Subscribe(func(s settings.Settings) {
			// the backend token never leaves the process
			s.APIToken = ""
			b.publish(KeySettingsUpdate, s)
		})
		b.detach = append(b.detach, func() { sm.Unsubscribe(id) })
	}
}

func (b *Bridge) publish(key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		b.log.WithError(err).WithField("key", key).Error("encode event")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	err = b.ch.Publish(Exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		b.log.WithError(err).WithField("key", key).Warn("publish event")
	}
}

func (b *Bridge) Close() error {
	for _, d := range b.detach {
		d()
	}
	b.detach = nil
	b.mu.Lock()
	defer b.mu.Unlock()
	err := b.ch.Close()
	if b.conn != nil {
		if cerr := b.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
