package upload

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/storage/memory"
	"github.com/artem13815/resumeboard/pkg/store"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeAPI struct {
	mu          sync.Mutex
	presignErr  error
	put         []string
	created     []map[string]any
	directNames []string
}

func (f *fakeAPI) PresignUpload(_ context.Context, filename, _ string) (*resumeapi.Presigned, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return &resumeapi.Presigned{UploadURL: "https://bucket/" + filename, FileKey: "k/" + filename, PublicURL: "https://cdn/" + filename}, nil
}

func (f *fakeAPI) PutPresigned(_ context.Context, uploadURL, _ string, body io.Reader) error {
	b, _ := io.ReadAll(body)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put = append(f.put, uploadURL+"="+string(b))
	return nil
}

func (f *fakeAPI) CreateResume(_ context.Context, metadata any) (*resume.Record, error) {
	m := metadata.(map[string]any)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, m)
	return &resume.Record{ID: "srv-" + m["name"].(string), Name: m["name"].(string), Score: resume.IntPtr(80)}, nil
}

func (f *fakeAPI) UploadPDF(_ context.Context, filename, _ string, _ io.Reader) (*resume.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.directNames = append(f.directNames, filename)
	return &resume.Record{ID: "direct-1", Name: resume.DisplayName(filename), Status: resume.StatusReady}, nil
}

type inspectorFunc func([]byte) (int, error)

func (f inspectorFunc) PageCount(b []byte) (int, error) { return f(b) }

type summaryFunc func(string) (string, error)

func (f summaryFunc) Overview(_ context.Context, text string) (string, error) { return f(text) }

func newManager(t *testing.T, demo bool) *settings.Manager {
	t.Helper()
	sm := settings.NewManager(memory.New(), quiet())
	_, err := sm.Apply(context.Background(), settings.Edit{DemoUpload: &demo})
	require.NoError(t, err)
	return sm
}

func newUploader(st *store.Store, sm *settings.Manager, api API, opts ...Option) *Uploader {
	base := []Option{
		WithRand(rand.New(rand.NewPCG(7, 7))),
		WithClock(func() time.Time { return fixedNow }),
		WithExtractor(func(string, []byte) (string, error) { return "Python and SQL developer", nil }),
	}
	return New(st, sm, api, Config{Workers: 2, DelayMin: time.Millisecond, DelayMax: 3 * time.Millisecond}, quiet(), append(base, opts...)...)
}

func pdf(name string) File {
	return File{Name: name, ContentType: "application/pdf", Data: []byte("%PDF-1.4 " + name)}
}

func TestDemoUploadReplacesPlaceholderInPlace(t *testing.T) {
	st := store.New()
	st.AddItem(resume.Record{ID: "A"})
	u := newUploader(st, newManager(t, true), nil, WithPosition(func() string { return "Engineer" }))

	phs := u.Upload(context.Background(), []File{pdf("alice.pdf")})
	require.Len(t, phs, 1)
	ph := phs[0]
	assert.True(t, strings.HasPrefix(ph.ID, "local-"))
	assert.Equal(t, resume.StatusUploading, ph.Status)
	assert.Nil(t, ph.Score)
	assert.Equal(t, "alice", ph.Name)
	assert.Equal(t, resume.Categories{"Uploaded"}, ph.Categories)

	st.AddItem(resume.Record{ID: "B"})
	u.Wait()

	items := st.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "B", items[2].ID)

	got := items[1]
	assert.Equal(t, ph.ID, got.ID)
	assert.Equal(t, resume.StatusReady, got.Status)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "Engineer", *got.Position)
	require.NotNil(t, got.Score)
	assert.GreaterOrEqual(t, *got.Score, 55)
	assert.Less(t, *got.Score, 100)
	assert.GreaterOrEqual(t, len(got.Categories), 2)
	assert.LessOrEqual(t, len(got.Categories), 4)
	assert.Equal(t, []string{"Python", "SQL"}, []string(got.Categories[:2]))
	assert.Equal(t, demoOverview, got.Overview)
	assert.Equal(t, fixedNow.Format(time.RFC3339), got.Date)
}

func TestDemoUploadDefaultsAndSummary(t *testing.T) {
	st := store.New()
	u := newUploader(st, newManager(t, true), nil,
		WithSummarizer(summaryFunc(func(text string) (string, error) { return "Summary of: " + text, nil })))

	u.Upload(context.Background(), []File{pdf("one.pdf"), pdf("two.pdf"), pdf("three.pdf")})
	u.Wait()

	items := st.Items()
	require.Len(t, items, 3)
	for i, name := range []string{"one", "two", "three"} {
		assert.Equal(t, name, items[i].Name)
		assert.Equal(t, "General", *items[i].Position)
		assert.Equal(t, "Summary of: Python and SQL developer", items[i].Overview)
		assert.Equal(t, resume.StatusReady, items[i].Status)
	}
}

func TestBackendUploadUsesPresign(t *testing.T) {
	st := store.New()
	api := &fakeAPI{}
	u := newUploader(st, newManager(t, false), api)

	phs := u.Upload(context.Background(), []File{pdf("cv.pdf")})
	u.Wait()

	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "srv-cv", items[0].ID)
	assert.NotEqual(t, phs[0].ID, items[0].ID)
	assert.Equal(t, resume.StatusReady, items[0].Status)
	assert.Equal(t, []string{"https://bucket/cv.pdf=%PDF-1.4 cv.pdf"}, api.put)
	require.Len(t, api.created, 1)
	assert.Equal(t, "k/cv.pdf", api.created[0]["fileKey"])
}

func TestBackendUploadFallsBackToMultipart(t *testing.T) {
	st := store.New()
	api := &fakeAPI{presignErr: &resumeapi.Error{Status: 404}}
	u := newUploader(st, newManager(t, false), api)

	u.Upload(context.Background(), []File{pdf("cv.pdf")})
	u.Wait()

	assert.Equal(t, []string{"cv.pdf"}, api.directNames)
	assert.Empty(t, api.put)
	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "direct-1", items[0].ID)
}

func TestFailedUploadKeepsPlaceholder(t *testing.T) {
	st := store.New()
	u := newUploader(st, newManager(t, true), nil,
		WithInspector(inspectorFunc(func([]byte) (int, error) { return 0, errors.New("not a pdf") })))

	phs := u.Upload(context.Background(), []File{pdf("broken.pdf"), {Name: "empty.pdf"}})
	u.Wait()

	items := st.Items()
	require.Len(t, items, 2)
	for i := range items {
		assert.Equal(t, phs[i].ID, items[i].ID)
		assert.Equal(t, resume.StatusUploading, items[i].Status)
	}
}

func TestSizeLimit(t *testing.T) {
	st := store.New()
	u := New(st, nil, nil, Config{MaxBytes: 4}, quiet(),
		WithExtractor(func(string, []byte) (string, error) { return "", nil }))
	_, err := u.process(context.Background(), resume.Record{}, pdf("big.pdf"), true)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestAppendSamplesKeepsExisting(t *testing.T) {
	st := store.New()
	st.AddItem(resume.Record{ID: "mine"})
	u := newUploader(st, nil, nil)

	added := u.AppendSamples()
	assert.Len(t, added, len(samples))
	items := st.Items()
	require.Len(t, items, len(samples)+1)
	assert.Equal(t, "mine", items[0].ID)
	assert.Equal(t, added, items[1:])
	assert.Equal(t, []string{"Frontend Engineer", "Data Analyst", "Backend Engineer", "QA Engineer"}, st.Positions())
}

func TestDelayWithinBounds(t *testing.T) {
	u := New(store.New(), nil, nil, Config{DelayMin: 10 * time.Millisecond, DelayMax: 20 * time.Millisecond}, quiet())
	for range 50 {
		d := u.delay()
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.LessOrEqual(t, d, 20*time.Millisecond)
	}
}
