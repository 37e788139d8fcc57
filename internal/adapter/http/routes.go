package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all pricing and booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, pricing *PricingHandler, bookings *BookingHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", pricing.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Pricing group
	p := api.Group("/pricing")
	p.POST("/detailed", pricing.DetailedPricing)
	p.POST("/estimate", pricing.QuickEstimate)
	p.POST("/update", pricing.UpdatePricing)
	p.POST("/compare", pricing.Compare)

	// Bookings group
	b := api.Group("/bookings")
	b.POST("", bookings.Book)
	b.POST("/prebook", bookings.PreBook)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, pricing *PricingHandler, bookings *BookingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", pricing.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	p := api.Group("/pricing")
	p.POST("/detailed", pricing.DetailedPricing)
	p.POST("/estimate", pricing.QuickEstimate)
	p.POST("/update", pricing.UpdatePricing)
	p.POST("/compare", pricing.Compare)

	b := api.Group("/bookings")
	b.POST("", bookings.Book)
	b.POST("/prebook", bookings.PreBook)
}
