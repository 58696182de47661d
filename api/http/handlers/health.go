package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboard/api/http/presenter"
	"github.com/artem13815/resumeboard/pkg/health"
)

const readyTimeout = 3 * time.Second

type readyResponse struct {
	Status  string            `json:"status"`
	Details string            `json:"details,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: the process is up.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready reports settings storage and the resumes backend, one entry per checker.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} readyResponse
// @Failure 503 {object} readyResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	checks := h.svc.Report(ctx)
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, readyResponse{Status: "not_ready", Details: err.Error(), Checks: checks})
	}
	return presenter.JSON(c, http.StatusOK, readyResponse{Status: "ready", Checks: checks})
}
