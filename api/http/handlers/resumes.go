package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboard/api/http/presenter"
	"github.com/artem13815/resumeboard/pkg/board"
	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/feed"
	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/resumeapi"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

// Deleter removes a resume on the backend.
type Deleter interface {
	DeleteResume(ctx context.Context, id string) error
}

type ResumesHandler struct {
	store    *store.Store
	board    *board.Board
	feed     *feed.Feed
	api      Deleter
	settings *settings.Manager
}

func NewResumesHandler(st *store.Store, b *board.Board, f *feed.Feed, api Deleter, sm *settings.Manager) *ResumesHandler {
	return &ResumesHandler{store: st, board: b, feed: f, api: api, settings: sm}
}

// Visible returns the cards currently on the board, in display order.
// limit defaults to itemsPerPage; offset to 0.
// @Summary Карточки на доске
// @Description Видимые карточки с учётом поиска, фильтра и сортировки.
// @Tags        Резюме
// @Produce     json
// @Param       limit  query int false "Размер страницы (по умолчанию itemsPerPage)"
// @Param       offset query int false "Смещение"
// @Success     200 {object} presenter.ListResponse[card.View]
// @Router      /resumes [get]
func (h *ResumesHandler) Visible(c *fiber.Ctx) error {
	views := h.board.Views()
	limit, offset := parseLimitOffset(c, h.settings.Current().ItemsPerPage)
	return presenter.JSON(c, http.StatusOK, presenter.ListResponse[card.View]{
		Items: window(views, limit, offset),
		Total: len(views),
	})
}

// All returns the whole collection in insertion order.
// @Summary Вся коллекция
// @Tags    Резюме
// @Produce json
// @Success 200 {object} presenter.ListResponse[resume.Record]
// @Router  /resumes/all [get]
func (h *ResumesHandler) All(c *fiber.Ctx) error {
	items := h.store.Items()
	return presenter.JSON(c, http.StatusOK, presenter.ListResponse[resume.Record]{Items: items, Total: len(items)})
}

// @Summary Позиции и категории
// @Tags    Резюме
// @Produce json
// @Success 200 {object} map[string][]string
// @Router  /resumes/facets [get]
func (h *ResumesHandler) Facets(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"positions":  h.store.Positions(),
		"categories": h.store.Categories(),
	})
}

// Refresh reloads the collection from the backend.
// @Summary Перезагрузить список с бэкенда
// @Tags     Резюме
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]int
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  502 {object} presenter.ErrorResponse
// @Router   /resumes/refresh [post]
func (h *ResumesHandler) Refresh(c *fiber.Ctx) error {
	n, err := h.feed.Refresh(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, backendMessage("failed to load resumes", err))
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"count": n})
}

// Delete removes the resume on the backend only; the local collection is unchanged
// until the next refresh.
// @Summary Удалить резюме на бэкенде
// @Tags     Резюме
// @Produce  json
// @Param    id path string true "ID резюме"
// @Security BearerAuth
// @Success  204
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Failure  502 {object} presenter.ErrorResponse
// @Router   /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return presenter.Error(c, http.StatusBadRequest, "id is required")
	}
	if err := h.api.DeleteResume(c.Context(), id); err != nil {
		var apiErr *resumeapi.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusBadGateway, backendMessage("failed to delete resume", err))
	}
	return c.SendStatus(http.StatusNoContent)
}

func backendMessage(prefix string, err error) string {
	var apiErr *resumeapi.Error
	if errors.As(err, &apiErr) {
		return prefix + ": " + apiErr.Error()
	}
	return prefix
}
