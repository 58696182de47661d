package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/resumeboard/api/http/handlers"
	_ "github.com/artem13815/resumeboard/docs"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Resumes   *handlers.ResumesHandler
	Uploads   *handlers.UploadsHandler
	Controls  *handlers.ControlsHandler
}

// Register wires all HTTP routes onto given Fiber app.
// guard protects mutating API routes; nil leaves them open.
func Register(app *fiber.App, h Handlers, guard fiber.Handler) {
	// HTML board with plain form posts
	app.Get("/", h.Dashboard.Index)
	app.Post("/filters", h.Dashboard.Filters)
	app.Post("/settings", h.Dashboard.Settings)
	app.Post("/uploads", h.Dashboard.Upload)
	app.Post("/samples", h.Dashboard.Samples)
	app.Post("/refresh", h.Dashboard.Refresh)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Get("/resumes", h.Resumes.Visible)
	v1.Get("/resumes/all", h.Resumes.All)
	v1.Get("/resumes/facets", h.Resumes.Facets)
	v1.Get("/filters", h.Controls.GetFilters)
	v1.Put("/filters", h.Controls.PutFilters)
	v1.Get("/settings", h.Controls.GetSettings)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1.Post("/resumes/refresh", protect(guard, h.Resumes.Refresh)...)
	v1.Delete("/resumes/:id", protect(guard, h.Resumes.Delete)...)
	v1.Post("/uploads", protect(guard, h.Uploads.Upload)...)
	v1.Post("/samples", protect(guard, h.Uploads.Samples)...)
	v1.Put("/settings", protect(guard, h.Controls.PutSettings)...)
}

func protect(guard, h fiber.Handler) []fiber.Handler {
	if guard == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{guard, h}
}
