package settings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboard/pkg/storage"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestLoadOverlaysPersistedValues(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`{"itemsPerPage":24,"scoreThresholds":{"excellent":90}}`)))

	m := NewManager(kv, quietLogger())
	got := m.Load(ctx)

	assert.Equal(t, 24, got.ItemsPerPage)
	assert.Equal(t, "date-desc", got.DefaultSort)
	assert.Equal(t, Thresholds{Excellent: 90, Good: 70}, got.ScoreThresholds)
	assert.True(t, got.DemoUpload)
}

func TestLoadKeepsDefaultsOnMalformedBlob(t *testing.T) {
	ctx := context.Background()
	for _, blob := range []string{`{not json`, `{"itemsPerPage":"many"}`, `[]`} {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, StorageKey, []byte(blob)))
		m := NewManager(kv, quietLogger())
		assert.Equal(t, Defaults(), m.Load(ctx), blob)
	}
}

func TestLoadWithoutPersistedValue(t *testing.T) {
	m := NewManager(memory.New(), quietLogger())
	assert.Equal(t, Defaults(), m.Load(context.Background()))
}

func TestApplyRejectsThresholdOrder(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	m := NewManager(kv, quietLogger())
	calls := 0
	m.Subscribe(func(Settings) { calls++ })

	_, err := m.Apply(ctx, Edit{Excellent: intp(70), Good: intp(70)})
	require.ErrorIs(t, err, ErrThresholdOrder)
	assert.Equal(t, Defaults(), m.Current())
	assert.Zero(t, calls)

	_, err = kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = m.Apply(ctx, Edit{ItemsPerPage: intp(0)})
	assert.ErrorIs(t, err, ErrItemsPerPage)
}

func TestApplyPersistsAndBroadcasts(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	m := NewManager(kv, quietLogger())
	var seen []Settings
	m.Subscribe(func(s Settings) { seen = append(seen, s) })

	next, err := m.Apply(ctx, Edit{Excellent: intp(95), Good: intp(80), DefaultSort: strp("score-desc")})
	require.NoError(t, err)
	assert.Equal(t, Thresholds{Excellent: 95, Good: 80}, next.ScoreThresholds)
	require.Len(t, seen, 1)
	assert.Equal(t, next, seen[0])
	assert.Equal(t, next.ScoreThresholds, m.Thresholds())

	data, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	var persisted Settings
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, next, persisted)
}

type failingKV struct{ *memory.Store }

func (failingKV) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestSaveBroadcastsEvenWhenPersistFails(t *testing.T) {
	m := NewManager(failingKV{memory.New()}, quietLogger())
	calls := 0
	m.Subscribe(func(Settings) { calls++ })
	err := m.Save(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSortOption(t *testing.T) {
	cases := map[string]struct {
		want string
		ok   bool
	}{
		"date-desc": {"date DESC", true},
		"score-asc": {"score ASC", true},
		"name":      {"", false},
		"a-b-c":     {"", false},
		"":          {"", false},
	}
	for in, tc := range cases {
		got, ok := Settings{DefaultSort: in}.SortOption()
		assert.Equal(t, tc.ok, ok, in)
		assert.Equal(t, tc.want, got, in)
	}
}
