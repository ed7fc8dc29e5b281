package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Planta-api/internal/application/directory"
	"github.com/jhoicas/Planta-api/internal/application/downtime"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/application/report"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Directory *directory.UseCase
	Downtime  *downtime.UseCase
	Inventory *inventory.UseCase
	Report    *report.UseCase
	Log       *logger.Logger
}

// Router registra /health, /metrics y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", ActorMiddleware())
	if deps.Log != nil {
		api.Use(RequestLogger(deps.Log))
	}

	dir := NewDirectoryHandler(deps.Directory)

	locations := api.Group("/locations")
	locations.Get("/", dir.ListLocations)
	locations.Post("/", dir.CreateLocation)
	locations.Get("/:id", dir.GetLocation)
	locations.Patch("/:id", dir.UpdateLocation)
	locations.Post("/:id/deactivate", dir.DeactivateLocation)
	locations.Post("/:id/reactivate", dir.ReactivateLocation)

	divisions := api.Group("/divisions")
	divisions.Get("/", dir.ListDivisions)
	divisions.Post("/", dir.CreateDivision)
	divisions.Get("/:id", dir.GetDivision)
	divisions.Patch("/:id", dir.UpdateDivision)
	divisions.Post("/:id/deactivate", dir.DeactivateDivision)
	divisions.Post("/:id/reactivate", dir.ReactivateDivision)

	dt := NewDowntimeHandler(deps.Downtime)

	lines := api.Group("/lines")
	lines.Get("/", dir.ListLines)
	lines.Post("/", dir.CreateLine)
	lines.Get("/:id", dir.GetLine)
	lines.Patch("/:id", dir.UpdateLine)
	lines.Post("/:id/deactivate", dir.DeactivateLine)
	lines.Post("/:id/reactivate", dir.ReactivateLine)
	lines.Get("/:id/impact", dt.Impact)
	lines.Get("/:id/capacity", dt.Capacity)

	downtimes := api.Group("/downtimes")
	downtimes.Get("/", dt.List)
	downtimes.Post("/", dt.Create)
	downtimes.Get("/:id", dt.Get)
	downtimes.Patch("/:id", dt.Update)
	downtimes.Post("/:id/approve", dt.Approve)
	downtimes.Post("/:id/cancel", dt.Cancel)

	// Rutas estáticas antes de /:id
	inv := NewInventoryHandler(deps.Inventory)
	invGroup := api.Group("/inventory")
	invGroup.Get("/summary", inv.Summary)
	invGroup.Get("/transactions", inv.Transactions)
	invGroup.Get("/", inv.List)
	invGroup.Post("/", inv.Create)
	invGroup.Get("/:id", inv.Get)
	invGroup.Patch("/:id", inv.Update)
	invGroup.Post("/:id/adjust", inv.AdjustStock)
	invGroup.Post("/:id/status", inv.ChangeStatus)
	invGroup.Get("/:id/reconcile", inv.Reconcile)

	if deps.Report != nil {
		rep := NewReportHandler(deps.Report)
		reports := api.Group("/reports")
		reports.Get("/inventory-summary.xlsx", rep.InventorySummary)
		reports.Get("/capacity.pdf", rep.Capacity)
	}
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		ev := log.Debug()
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("actor", GetUserID(c)).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}
