package board

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
	"github.com/artem13815/resumeboard/pkg/store"
)

func TestSettingsChangeRecolorsWithoutRerender(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	sm := settings.NewManager(memory.New(), log)
	b := New()
	b.Watch(sm)

	st := store.New(store.WithContainer(b), store.WithRenderer(card.NewRenderer(sm)))
	st.SetItems([]resume.Record{{ID: "a", Score: resume.IntPtr(75)}})

	require.Len(t, b.Views(), 1)
	assert.Equal(t, card.LevelGood, b.Views()[0].Badge.Level)
	before := b.Renders()

	excellent, good := 95, 80
	_, err := sm.Apply(context.Background(), settings.Edit{Excellent: &excellent, Good: &good})
	require.NoError(t, err)

	assert.Equal(t, before, b.Renders())
	assert.Equal(t, card.LevelFair, b.Views()[0].Badge.Level)
}

func TestViewsIsSnapshot(t *testing.T) {
	b := New()
	b.Reset([]card.View{{ID: "a"}})
	v := b.Views()
	v[0].ID = "changed"
	assert.Equal(t, "a", b.Views()[0].ID)
}
