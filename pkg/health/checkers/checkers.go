package checkers

import (
	"context"
	"time"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
)

// Pinger is anything with a connectivity check, e.g. a storage.KV.
type Pinger interface {
	Ping(ctx context.Context) error
}

type StorageChecker struct {
	name string
	p    Pinger
}

// NewStorageChecker names the check after the settings driver ("sqlite", "redis", ...).
func NewStorageChecker(driver string, p Pinger) *StorageChecker {
	return &StorageChecker{name: "storage:" + driver, p: p}
}

func (c *StorageChecker) Name() string { return c.name }

func (c *StorageChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.p.Ping(ctx)
}

// Lister is the part of the resumes client used to probe the backend.
type Lister interface {
	ListResumes(ctx context.Context, p resumeapi.ListParams) ([]resume.Record, error)
	BaseURL() string
}

type BackendChecker struct {
	api Lister
}

func NewBackendChecker(api Lister) *BackendChecker { return &BackendChecker{api: api} }

func (c *BackendChecker) Name() string { return "backend" }

// Check asks for a single record. Without a configured base URL it always passes.
func (c *BackendChecker) Check(ctx context.Context) error {
	if c.api.BaseURL() == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err := c.api.ListResumes(ctx, resumeapi.ListParams{PerPage: 1})
	return err
}
