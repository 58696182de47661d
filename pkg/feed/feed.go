// Package feed loads the resume list from the backend into the store.
package feed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

// Lister is the part of the API client the feed needs.
type Lister interface {
	ListResumes(ctx context.Context, p resumeapi.ListParams) ([]resume.Record, error)
}

type Feed struct {
	api      Lister
	store    *store.Store
	settings *settings.Manager
	log      logrus.FieldLogger
}

func New(api Lister, st *store.Store, sm *settings.Manager, log logrus.FieldLogger) *Feed {
	return &Feed{api: api, store: st, settings: sm, log: log.WithField("component", "feed")}
}

// Refresh replaces the store with the backend's first page.
// On failure the store keeps its previous content. Overlapping refreshes are not
// sequenced: the last one to complete wins.
func (f *Feed) Refresh(ctx context.Context) (int, error) {
	p := resumeapi.ListParams{}
	if f.settings != nil {
		p.PerPage = f.settings.Current().ItemsPerPage
	}
	items, err := f.api.ListResumes(ctx, p)
	if err != nil {
		f.log.WithError(err).Warn("failed to load resumes")
		return 0, fmt.Errorf("list resumes: %w", err)
	}
	if items == nil {
		// 204: the backend has nothing to list
		items = []resume.Record{}
	}
	f.store.SetItems(items)
	f.log.WithField("count", len(items)).Info("resumes loaded")
	return len(items), nil
}
