package handlers

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/resumeboard/api/http/presenter"
	"github.com/artem13815/resumeboard/pkg/board"
	"github.com/artem13815/resumeboard/pkg/dom"
	"github.com/artem13815/resumeboard/pkg/feed"
	"github.com/artem13815/resumeboard/pkg/filterbar"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

// DashboardHandler serves the HTML board and its plain form posts.
// Every post redirects back to "/" with an optional flash message.
type DashboardHandler struct {
	page     *dom.Page
	store    *store.Store
	board    *board.Board
	bar      *filterbar.Bar
	settings *settings.Manager
	feed     *feed.Feed
	uploads  *UploadsHandler
	log      logrus.FieldLogger
}

func NewDashboardHandler(page *dom.Page, st *store.Store, b *board.Board, bar *filterbar.Bar, sm *settings.Manager,
	f *feed.Feed, uploads *UploadsHandler, log logrus.FieldLogger) *DashboardHandler {
	return &DashboardHandler{page: page, store: st, board: b, bar: bar, settings: sm, feed: f, uploads: uploads, log: log}
}

func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	return h.render(c, http.StatusOK, c.Query("flash"))
}

// Filters submits search, category and sort together.
func (h *DashboardHandler) Filters(c *fiber.Ctx) error {
	var f store.Filter
	if err := c.BodyParser(&f); err != nil {
		return h.render(c, http.StatusBadRequest, "invalid filter form")
	}
	h.bar.Set(f)
	return back(c, "")
}

// Settings saves the settings form; invalid input re-renders the page with the error.
func (h *DashboardHandler) Settings(c *fiber.Ctx) error {
	var e settings.Edit
	if err := c.BodyParser(&e); err != nil {
		return h.render(c, http.StatusBadRequest, "invalid settings form")
	}
	// unchecked checkboxes are not submitted at all
	if c.FormValue("form") == "settings" {
		on := c.FormValue("demoUpload") == "true"
		e.DemoUpload = &on
	}
	// the token field is never prefilled; blank keeps the saved one
	if e.APIToken != nil && *e.APIToken == "" {
		e.APIToken = nil
	}
	if _, err := applySettings(c, h.settings, h.log, e); err != nil {
		return h.render(c, http.StatusBadRequest, err.Error())
	}
	return back(c, "Settings saved")
}

func (h *DashboardHandler) Upload(c *fiber.Ctx) error {
	files, err := h.uploads.readFiles(c)
	if err != nil {
		return back(c, err.Error())
	}
	h.uploads.uploader.Upload(c.UserContext(), files)
	return back(c, "")
}

func (h *DashboardHandler) Samples(c *fiber.Ctx) error {
	h.uploads.uploader.AppendSamples()
	return back(c, "")
}

func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	if _, err := h.feed.Refresh(c.Context()); err != nil {
		return back(c, backendMessage("Failed to load resumes", err))
	}
	return back(c, "")
}

func (h *DashboardHandler) render(c *fiber.Ctx, status int, flash string) error {
	st := dom.PageState{
		Filters:  h.bar.State(),
		Settings: h.settings.Current(),
		Cards:    h.board.Views(),
		Total:    h.store.Len(),
		Flash:    flash,
	}
	return presenter.HTML(c, status, func(w *bytes.Buffer) error {
		return h.page.Render(w, st)
	})
}

func back(c *fiber.Ctx, flash string) error {
	if flash == "" {
		return c.Redirect("/", http.StatusSeeOther)
	}
	return c.Redirect("/?flash="+url.QueryEscape(flash), http.StatusSeeOther)
}
