package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/resumeboard/api/http/presenter"
	"github.com/artem13815/resumeboard/pkg/filterbar"
	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

// ControlsHandler exposes the filter bar and the settings as JSON.
type ControlsHandler struct {
	bar      *filterbar.Bar
	settings *settings.Manager
	log      logrus.FieldLogger
}

func NewControlsHandler(bar *filterbar.Bar, sm *settings.Manager, log logrus.FieldLogger) *ControlsHandler {
	return &ControlsHandler{bar: bar, settings: sm, log: log}
}

// @Summary Состояние фильтров
// @Tags    Фильтры
// @Produce json
// @Success 200 {object} filterbar.State
// @Router  /filters [get]
func (h *ControlsHandler) GetFilters(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.bar.State())
}

// PutFilters submits all three controls together and redraws the board.
// @Summary Применить фильтры
// @Tags    Фильтры
// @Accept  json
// @Produce json
// @Param   body body store.Filter true "Поиск, категория и сортировка"
// @Success 200 {object} filterbar.State
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /filters [put]
func (h *ControlsHandler) PutFilters(c *fiber.Ctx) error {
	var f store.Filter
	if err := c.BodyParser(&f); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid filter body")
	}
	h.bar.Set(f)
	return presenter.JSON(c, http.StatusOK, h.bar.State())
}

// @Summary Настройки дашборда
// @Description Токен бэкенда в ответе скрыт.
// @Tags        Настройки
// @Produce     json
// @Success     200 {object} settings.Settings
// @Router      /settings [get]
func (h *ControlsHandler) GetSettings(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, redact(h.settings.Current()))
}

// @Summary Изменить настройки
// @Description Частичное обновление; excellent должен быть строго больше good.
// @Tags        Настройки
// @Accept      json
// @Produce     json
// @Param       body body settings.Edit true "Изменяемые поля"
// @Security    BearerAuth
// @Success     200 {object} settings.Settings
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Router      /settings [put]
func (h *ControlsHandler) PutSettings(c *fiber.Ctx) error {
	var e settings.Edit
	if err := c.BodyParser(&e); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid settings body")
	}
	s, err := applySettings(c, h.settings, h.log, e)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, redact(s))
}

// applySettings commits e. Only validation failures are returned; a failed
// persist is logged since the new values are already active.
func applySettings(c *fiber.Ctx, sm *settings.Manager, log logrus.FieldLogger, e settings.Edit) (settings.Settings, error) {
	s, err := sm.Apply(c.UserContext(), e)
	if errors.Is(err, settings.ErrThresholdOrder) || errors.Is(err, settings.ErrItemsPerPage) {
		return s, err
	}
	if err != nil {
		log.WithError(err).Warn("settings applied but not persisted")
	}
	return s, nil
}

// redact hides the backend token from responses.
func redact(s settings.Settings) settings.Settings {
	if s.APIToken != "" {
		s.APIToken = "********"
	}
	return s
}
