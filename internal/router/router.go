package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/laurvh/food-for-you/internal/handler"
)

// RegisterRoutes registers the plain routes on the provided Echo
// instance: the health check and the catalog lists that feed every tool's
// selection dropdowns.
func RegisterRoutes(e *echo.Echo, cat *handler.CatalogHandler) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/catalog")
	g.GET("/locations", cat.Locations)
	g.GET("/neighborhoods", cat.Neighborhoods)
	g.GET("/categories", cat.Categories)
	g.GET("/items", cat.ItemNames)
}
