package checkers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
)

type fakeLister struct {
	base  string
	calls int
	err   error
}

func (f *fakeLister) BaseURL() string { return f.base }

func (f *fakeLister) ListResumes(_ context.Context, p resumeapi.ListParams) ([]resume.Record, error) {
	f.calls++
	return nil, f.err
}

func TestStorageChecker(t *testing.T) {
	c := NewStorageChecker("memory", memory.New())
	assert.Equal(t, "storage:memory", c.Name())
	assert.NoError(t, c.Check(context.Background()))
}

func TestBackendChecker(t *testing.T) {
	off := &fakeLister{}
	assert.NoError(t, NewBackendChecker(off).Check(context.Background()))
	assert.Zero(t, off.calls)

	down := &fakeLister{base: "http://backend", err: errors.New("refused")}
	assert.Error(t, NewBackendChecker(down).Check(context.Background()))
	assert.Equal(t, 1, down.calls)
}
