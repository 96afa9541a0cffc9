package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/laurvh/food-for-you/internal/handler"
)

// RegisterStaff registers the staff inventory endpoints under /v1/staff.
// Search plus the four reconciliation operations: insert, update, move
// and delete.
func RegisterStaff(e *echo.Echo, s *handler.StaffHandler) {
	g := e.Group("/v1/staff")

	g.GET("/items", s.SearchItems)
	g.POST("/items", s.InsertItem)
	g.PUT("/items/:id", s.UpdateItem)
	g.PATCH("/items/:id", s.UpdateItem) // alias for clients that use PATCH
	g.POST("/items/:id/move", s.MoveItem)
	g.DELETE("/items/:id", s.DeleteItem)
}
