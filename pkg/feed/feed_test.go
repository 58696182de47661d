package feed

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
	"github.com/artem13815/resumeboard/pkg/store"
)

type fakeLister struct {
	got   resumeapi.ListParams
	items []resume.Record
	err   error
}

func (f *fakeLister) ListResumes(_ context.Context, p resumeapi.ListParams) ([]resume.Record, error) {
	f.got = p
	return f.items, f.err
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRefreshReplacesStore(t *testing.T) {
	st := store.New()
	st.AddItem(resume.Record{ID: "old"})
	sm := settings.NewManager(memory.New(), quiet())
	api := &fakeLister{items: []resume.Record{{ID: "a"}, {ID: "b"}}}

	n, err := New(api, st, sm, quiet()).Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 12, api.got.PerPage)
	assert.Equal(t, api.items, st.Items())
}

func TestRefreshFailureKeepsStore(t *testing.T) {
	st := store.New()
	st.AddItem(resume.Record{ID: "old"})
	api := &fakeLister{err: &resumeapi.Error{Status: 502}}

	_, err := New(api, st, nil, quiet()).Refresh(context.Background())
	var apiErr *resumeapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, 1, st.Len())
	assert.Zero(t, api.got.PerPage)
}

func TestRefreshNoContentEmptiesStore(t *testing.T) {
	st := store.New()
	st.AddItem(resume.Record{ID: "old"})
	api := &fakeLister{}

	n, err := New(api, st, nil, quiet()).Refresh(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, st.Len())
	assert.NotNil(t, st.Items())
}
