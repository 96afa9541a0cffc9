package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/laurvh/food-for-you/internal/handler"
)

// RegisterDonor registers the donor endpoints under /v1/donor.  The extra
// middlewares (response cache, rate limiter) are attached at group
// construction time; these are the public read-heavy routes.
func RegisterDonor(e *echo.Echo, d *handler.DonorHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/donor", mw...)

	g.GET("/needs", d.Needs)
	g.POST("/report", d.Report)
}

// RegisterRecipient registers the recipient endpoints under /v1/recipient
// with the same optional middleware chain as the donor group.
func RegisterRecipient(e *echo.Echo, r *handler.RecipientHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/recipient", mw...)

	g.GET("/availability", r.Availability)
	g.POST("/report", r.Report)
}
