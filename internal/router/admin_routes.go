package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/laurvh/food-for-you/internal/handler"
)

// RegisterAdmin registers the administrator endpoints under /v1/admin:
// food bank creation, bulk CSV import, and the outgoing data log with its
// CSV export.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler) {
	g := e.Group("/v1/admin")

	// ---- Food banks ----
	g.POST("/food-banks", a.CreateFoodBank)
	g.POST("/food-banks/:location/import", a.ImportItems)

	// ---- Outgoing data log ----
	g.GET("/outgoing", a.SearchOutgoing)
	g.GET("/outgoing/export", a.ExportOutgoing)
}
