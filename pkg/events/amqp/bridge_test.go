package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
	"github.com/artem13815/resumeboard/pkg/store"
)

type published struct {
	key  string
	body string
}

type fakeChannel struct {
	msgs   []published
	err    error
	closed bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if exchange != Exchange {
		return errors.New("wrong exchange")
	}
	f.msgs = append(f.msgs, published{key: key, body: string(msg.Body)})
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestBridgeForwardsNotifications(t *testing.T) {
	ch := &fakeChannel{}
	st := store.New()
	sm := settings.NewManager(memory.New(), quiet())
	b := New(ch, quiet())
	b.Attach(st, sm)

	st.SetItems([]resume.Record{{ID: "a"}, {ID: "b"}})
	token := "secret"
	_, err := sm.Apply(context.Background(), settings.Edit{APIToken: &token})
	require.NoError(t, err)

	require.Len(t, ch.msgs, 2)
	assert.Equal(t, KeyResumesUpdated, ch.msgs[0].key)
	assert.JSONEq(t, `{"count":2}`, ch.msgs[0].body)

	assert.Equal(t, KeySettingsUpdate, ch.msgs[1].key)
	var s settings.Settings
	require.NoError(t, json.Unmarshal([]byte(ch.msgs[1].body), &s))
	assert.Equal(t, 12, s.ItemsPerPage)
	assert.Empty(t, s.APIToken)

	require.NoError(t, b.Close())
	assert.True(t, ch.closed)
	st.AddItem(resume.Record{ID: "c"})
	assert.Len(t, ch.msgs, 2)
}

func TestPublishFailureIsNotFatal(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	st := store.New()
	New(ch, quiet()).Attach(st, nil)
	assert.NotPanics(t, func() { st.AddItem(resume.Record{ID: "x"}) })
	assert.Equal(t, 1, st.Len())
}
