// Package upload turns user-selected resume files into store records:
// a placeholder appears at once and is replaced by id when processing finishes.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/resumeboard/pkg/nlp"
	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

const (
	placeholderImage = "https://placehold.co/400x250/E5E7EB/4B5563?text="
	defaultPosition  = "General"
	demoOverview     = "Demo parsed resume: auto-generated tags and score."
)

var (
	ErrTooLarge = errors.New("file is too large")
	ErrEmpty    = errors.New("file is empty")
)

// File is one selected upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) isPDF() bool {
	return f.ContentType == "application/pdf" || strings.HasSuffix(strings.ToLower(f.Name), ".pdf")
}

// API is the part of the backend client used by the non-demo flow.
type API interface {
	PresignUpload(ctx context.Context, filename, contentType string) (*resumeapi.Presigned, error)
	PutPresigned(ctx context.Context, uploadURL, contentType string, body io.Reader) error
	CreateResume(ctx context.Context, metadata any) (*resume.Record, error)
	UploadPDF(ctx context.Context, filename, contentType string, file io.Reader) (*resume.Record, error)
}

// Summarizer writes an overview for extracted resume text.
type Summarizer interface {
	Overview(ctx context.Context, resumeText string) (string, error)
}

// Inspector checks a PDF before it is processed and reports its page count.
type Inspector interface {
	PageCount(data []byte) (int, error)
}

type Config struct {
	Workers  int
	MaxBytes int64
	DelayMin time.Duration
	DelayMax time.Duration
}

type Uploader struct {
	store    *store.Store
	settings *settings.Manager
	api      API
	log      logrus.FieldLogger
	cfg      Config

	summarizer Summarizer
	inspector  Inspector
	position   func() string
	extract    func(filename string, data []byte) (string, error)
	now        func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	wg sync.WaitGroup
}

type Option func(*Uploader)

func WithSummarizer(s Summarizer) Option { return func(u *Uploader) { u.summarizer = s } }

func WithInspector(i Inspector) Option { return func(u *Uploader) { u.inspector = i } }

// WithPosition supplies the position given to demo records, usually the selected category.
func WithPosition(fn func() string) Option { return func(u *Uploader) { u.position = fn } }

func WithExtractor(fn func(filename string, data []byte) (string, error)) Option {
	return func(u *Uploader) { u.extract = fn }
}

func WithRand(r *rand.Rand) Option { return func(u *Uploader) { u.rng = r } }

func WithClock(fn func() time.Time) Option { return func(u *Uploader) { u.now = fn } }

func New(st *store.Store, sm *settings.Manager, api API, cfg Config, log logrus.FieldLogger, opts ...Option) *Uploader {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.DelayMax < cfg.DelayMin {
		cfg.DelayMax = cfg.DelayMin
	}
	u := &Uploader{
		store:    st,
		settings: sm,
		api:      api,
		cfg:      cfg,
		log:      log.WithField("component", "upload"),
		position: func() string { return "" },
		extract:  resume.ParseResumeText,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Upload adds one placeholder per file and processes the files in the background,
// at most cfg.Workers at a time. It returns the placeholders in file order.
// Processing is detached from ctx cancellation; use Wait to block until it ends.
func (u *Uploader) Upload(ctx context.Context, files []File) []resume.Record {
	placeholders := make([]resume.Record, 0, len(files))
	for _, f := range files {
		ph := u.placeholder(f)
		u.store.AddItem(ph)
		placeholders = append(placeholders, ph)
	}
	if len(files) == 0 {
		return placeholders
	}

	demo := u.settings == nil || u.settings.Current().DemoUpload
	bg := context.WithoutCancel(ctx)
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		var g errgroup.Group
		g.SetLimit(u.cfg.Workers)
		for i, f := range files {
			ph := placeholders[i]
			g.Go(func() error {
				return u.processOne(bg, ph, f, demo)
			})
		}
		if err := g.Wait(); err != nil {
			u.log.WithError(err).Warn("some uploads were not processed")
		}
	}()
	return placeholders
}

// Wait blocks until every background batch has finished.
func (u *Uploader) Wait() { u.wg.Wait() }

func (u *Uploader) processOne(ctx context.Context, ph resume.Record, f File, demo bool) error {
	log := u.log.WithFields(logrus.Fields{"placeholder": ph.ID, "file": f.Name})
	final, err := u.process(ctx, ph, f, demo)
	if err != nil {
		// the placeholder stays on the board
		log.WithError(err).Error("upload failed")
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	u.replace(ph.ID, final)
	log.WithField("id", final.ID).Info("upload processed")
	return nil
}

func (u *Uploader) process(ctx context.Context, ph resume.Record, f File, demo bool) (resume.Record, error) {
	if len(f.Data) == 0 {
		return resume.Record{}, ErrEmpty
	}
	if u.cfg.MaxBytes > 0 && int64(len(f.Data)) > u.cfg.MaxBytes {
		return resume.Record{}, ErrTooLarge
	}
	if u.inspector != nil && f.isPDF() {
		pages, err := u.inspector.PageCount(f.Data)
		if err != nil {
			return resume.Record{}, fmt.Errorf("invalid pdf: %w", err)
		}
		u.log.WithFields(logrus.Fields{"file": f.Name, "pages": pages}).Debug("pdf inspected")
	}
	if demo {
		return u.demo(ctx, ph, f)
	}
	return u.remote(ctx, f)
}

// demo simulates backend processing locally: tags come from the resume text,
// topped up from the tag pool, and the score is random.
func (u *Uploader) demo(ctx context.Context, ph resume.Record, f File) (resume.Record, error) {
	if err := sleep(ctx, u.delay()); err != nil {
		return resume.Record{}, err
	}

	text, err := u.extract(f.Name, f.Data)
	if err != nil {
		u.log.WithError(err).WithField("file", f.Name).Warn("text extraction failed")
		text = ""
	}

	position := strings.TrimSpace(u.position())
	if position == "" {
		position = defaultPosition
	}

	overview := demoOverview
	if u.summarizer != nil && text != "" {
		if s, err := u.summarizer.Overview(ctx, text); err != nil {
			u.log.WithError(err).WithField("file", f.Name).Warn("overview generation failed")
		} else {
			overview = s
		}
	}

	u.rngMu.Lock()
	n := 2 + u.rng.IntN(3)
	tags := nlp.PickTags(nlp.DetectTags(text, nlp.TagPool), nlp.TagPool, n, u.rng)
	score := 55 + u.rng.IntN(45)
	u.rngMu.Unlock()

	name := resume.DisplayName(f.Name)
	return resume.Record{
		ID:         ph.ID,
		Name:       name,
		Score:      resume.IntPtr(score),
		Date:       u.now().UTC().Format(time.RFC3339),
		Position:   resume.StringPtr(position),
		Overview:   overview,
		Categories: tags,
		Image:      placeholderImage + url.PathEscape(name),
		ImageAlt:   name,
		Status:     resume.StatusReady,
	}, nil
}

// remote stores the file through a presigned URL and registers it; when presign
// is unavailable it falls back to the multipart upload endpoint.
func (u *Uploader) remote(ctx context.Context, f File) (resume.Record, error) {
	if u.api == nil {
		return resume.Record{}, errors.New("backend is not configured")
	}
	ct := f.ContentType
	if ct == "" {
		ct = "application/pdf"
	}
	var created *resume.Record
	p, err := u.api.PresignUpload(ctx, f.Name, ct)
	if err != nil {
		u.log.WithError(err).WithField("file", f.Name).Warn("presign failed, using direct upload")
		created, err = u.api.UploadPDF(ctx, f.Name, ct, bytes.NewReader(f.Data))
		if err != nil {
			return resume.Record{}, fmt.Errorf("upload: %w", err)
		}
	} else {
		if err := u.api.PutPresigned(ctx, p.UploadURL, ct, bytes.NewReader(f.Data)); err != nil {
			return resume.Record{}, fmt.Errorf("put presigned: %w", err)
		}
		created, err = u.api.CreateResume(ctx, map[string]any{
			"name":        resume.DisplayName(f.Name),
			"fileKey":     p.FileKey,
			"fileUrl":     p.PublicURL,
			"contentType": ct,
			"date":        u.now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return resume.Record{}, fmt.Errorf("create resume: %w", err)
		}
	}
	if created == nil {
		return resume.Record{}, errors.New("backend returned no resume")
	}
	rec := *created
	if rec.Status == "" {
		rec.Status = resume.StatusReady
	}
	return rec, nil
}

// replace swaps the placeholder for final, or appends final if neither is present.
func (u *Uploader) replace(placeholderID string, final resume.Record) {
	u.store.Update(func(items []resume.Record) []resume.Record {
		found := false
		for i := range items {
			if items[i].ID == placeholderID {
				items[i] = final
			}
			if items[i].ID == final.ID {
				found = true
			}
		}
		if !found {
			items = append(items, final)
		}
		return items
	})
}

func (u *Uploader) placeholder(f File) resume.Record {
	return resume.Record{
		ID:         "local-" + uuid.NewString(),
		Name:       resume.DisplayName(f.Name),
		Date:       u.now().UTC().Format(time.RFC3339),
		Position:   resume.StringPtr(""),
		Overview:   "Uploading...",
		Categories: resume.Categories{"Uploaded"},
		Image:      placeholderImage + "Uploading",
		ImageAlt:   "Uploading",
		Status:     resume.StatusUploading,
	}
}

func (u *Uploader) delay() time.Duration {
	span := u.cfg.DelayMax - u.cfg.DelayMin
	if span <= 0 {
		return u.cfg.DelayMin
	}
	u.rngMu.Lock()
	defer u.rngMu.Unlock()
	return u.cfg.DelayMin + time.Duration(u.rng.Int64N(int64(span)+1))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
