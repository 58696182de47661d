package filterbar

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboard/pkg/board"
	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
	"github.com/artem13815/resumeboard/pkg/store"
)

func setup(t *testing.T) (*Bar, *store.Store, *board.Board, *settings.Manager) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	sm := settings.NewManager(memory.New(), log)
	b := board.New()
	st := store.New(store.WithContainer(b), store.WithRenderer(card.NewRenderer(sm)))
	bar := New(st, sm)
	t.Cleanup(bar.Close)
	return bar, st, b, sm
}

func shownIDs(b *board.Board) []string {
	var out []string
	for _, v := range b.Views() {
		out = append(out, v.ID)
	}
	return out
}

func values(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

func TestDefaultSortWaitsForSettingsSave(t *testing.T) {
	bar, st, b, sm := setup(t)
	state := bar.State()
	assert.Equal(t, "", state.Sort.Selected)
	assert.Equal(t, []Option{{Value: "", Label: AllPositionsLabel}}, state.Category.Options)

	st.SetItems([]resume.Record{
		{ID: "old", Date: "2024-01-01"},
		{ID: "new", Date: "2024-03-01"},
		{ID: "mid", Date: "2024-02-01"},
	})
	assert.Equal(t, []string{"old", "new", "mid"}, shownIDs(b))

	require.NoError(t, sm.Save(context.Background()))
	assert.Equal(t, "date DESC", bar.State().Sort.Selected)
	assert.Equal(t, []string{"new", "mid", "old"}, shownIDs(b))
}

func TestCollectionChangeReappliesCurrentFilter(t *testing.T) {
	bar, st, b, _ := setup(t)
	bar.SetSort("score DESC")
	st.SetItems([]resume.Record{
		{ID: "low", Score: resume.IntPtr(10)},
		{ID: "none"},
		{ID: "high", Score: resume.IntPtr(90)},
	})
	assert.Equal(t, []string{"high", "low", "none"}, shownIDs(b))

	bar.SetSearch("nothing matches")
	assert.Empty(t, shownIDs(b))
	assert.Equal(t, 3, st.Len())
}

func TestPopulatePrefersPositions(t *testing.T) {
	bar, st, _, _ := setup(t)
	st.SetItems([]resume.Record{
		{ID: "1", Categories: resume.Categories{"Go"}},
		{ID: "2", Categories: resume.Categories{"SQL"}},
	})
	assert.Equal(t, []string{"", "Go", "SQL"}, values(bar.State().Category.Options))

	st.AddItem(resume.Record{ID: "3", Position: resume.StringPtr("Engineer")})
	assert.Equal(t, []string{"", "Engineer"}, values(bar.State().Category.Options))
}

func TestPopulateKeepsValidSelection(t *testing.T) {
	bar, st, b, _ := setup(t)
	st.SetItems([]resume.Record{
		{ID: "1", Position: resume.StringPtr("Engineer")},
		{ID: "2", Position: resume.StringPtr("Analyst")},
	})
	bar.SetCategory("Analyst")
	assert.Equal(t, []string{"2"}, shownIDs(b))

	st.AddItem(resume.Record{ID: "3", Position: resume.StringPtr("Analyst")})
	assert.Equal(t, "Analyst", bar.State().Category.Selected)
	assert.Equal(t, []string{"2", "3"}, shownIDs(b))

	st.SetItems([]resume.Record{{ID: "4", Position: resume.StringPtr("Engineer")}})
	assert.Equal(t, "", bar.State().Category.Selected)
	assert.Equal(t, []string{"4"}, shownIDs(b))
}

func TestUnknownValuesResetControls(t *testing.T) {
	bar, _, _, _ := setup(t)
	bar.Set(store.Filter{Search: "x", Category: "Ghost", Sort: "height ASC"})
	f := bar.Filter()
	assert.Equal(t, store.Filter{Search: "x"}, f)
}

func TestSettingsChangeSelectsSort(t *testing.T) {
	bar, _, _, sm := setup(t)
	sort := "Score-Asc"
	_, err := sm.Apply(context.Background(), settings.Edit{DefaultSort: &sort})
	require.NoError(t, err)
	assert.Equal(t, "score ASC", bar.State().Sort.Selected)

	sort = "height-asc"
	_, err = sm.Apply(context.Background(), settings.Edit{DefaultSort: &sort})
	require.NoError(t, err)
	assert.Equal(t, "score ASC", bar.State().Sort.Selected)
}

func TestStateIsSnapshot(t *testing.T) {
	bar, _, _, _ := setup(t)
	s := bar.State()
	s.Sort.Options[0].Label = "mutated"
	assert.Equal(t, "Default", bar.State().Sort.Options[0].Label)
}

func TestCloseDetaches(t *testing.T) {
	bar, st, _, _ := setup(t)
	bar.Close()
	st.SetItems([]resume.Record{{ID: "1", Position: resume.StringPtr("Engineer")}})
	assert.Len(t, bar.State().Category.Options, 1)
}
