// Package http provides the HTTP handler layer for the package pricing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/adapter/http/response"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/usecase"
)

// PricingHandler handles HTTP requests for pricing endpoints.
type PricingHandler struct {
	pricing usecase.PricingService
}

// NewPricingHandler creates a new PricingHandler with the given service.
func NewPricingHandler(pricing usecase.PricingService) *PricingHandler {
	return &PricingHandler{
		pricing: pricing,
	}
}

// DetailedPricing handles POST /api/v1/pricing/detailed
//
// @Summary Calculate detailed package pricing
// @Description Prices a package for the given travelers, fetching live hotel rates when a date range is supplied. Hotels whose live fetch fails fall back to static pricing and are reported in errors.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body DetailedPricingRequest true "Pricing input"
// @Success 200 {object} PricingResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Package not found"
// @Router /api/v1/pricing/detailed [post]
func (h *PricingHandler) DetailedPricing(c echo.Context) error {
	var req DetailedPricingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.pricing.CalculateDetailedPricing(c.Request().Context(), ToPricingRequest(&req))
	if err != nil {
		return handlePricingError(c, err)
	}

	return response.Pricing(c, ToPricingResponseDTO(req.PackageID, result))
}

// QuickEstimate handles POST /api/v1/pricing/estimate
//
// @Summary Get a quick static price estimate
// @Description Prices a package from static data only; never calls the live rate provider.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body QuickEstimateRequest true "Estimate input"
// @Success 200 {object} PricingResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Package not found"
// @Router /api/v1/pricing/estimate [post]
func (h *PricingHandler) QuickEstimate(c echo.Context) error {
	var req QuickEstimateRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.pricing.GetQuickEstimate(c.Request().Context(), req.PackageID, domain.TravelerCount{
		Adults:   req.Travelers.Adults,
		Children: req.Travelers.Children,
		Infants:  req.Travelers.Infants,
	})
	if err != nil {
		return handlePricingError(c, err)
	}

	return response.Pricing(c, ToPricingResponseDTO(req.PackageID, result))
}

// UpdatePricing handles POST /api/v1/pricing/update
//
// @Summary Reprice after a traveler or date change
// @Description Runs the detailed pricing pipeline again; recent searches are served from the rate cache.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body DetailedPricingRequest true "Pricing input"
// @Success 200 {object} PricingResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Package not found"
// @Router /api/v1/pricing/update [post]
func (h *PricingHandler) UpdatePricing(c echo.Context) error {
	var req DetailedPricingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.pricing.UpdatePricing(c.Request().Context(), ToPricingRequest(&req))
	if err != nil {
		return handlePricingError(c, err)
	}

	return response.Pricing(c, ToPricingResponseDTO(req.PackageID, result))
}

// Compare handles POST /api/v1/pricing/compare
//
// @Summary Compare up to five configurations
// @Description Prices each traveler/date configuration and marks the one with the lowest price per person.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Comparison input"
// @Success 200 {object} ComparisonResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/pricing/compare [post]
func (h *PricingHandler) Compare(c echo.Context) error {
	var req CompareRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	entries, err := h.pricing.CompareConfigurations(c.Request().Context(), req.PackageID,
		ToConfigurations(req.Configurations), toDateRange(req.DateRange))
	if err != nil {
		return handlePricingError(c, err)
	}

	return response.Pricing(c, ToComparisonResponseDTO(req.PackageID, entries))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *PricingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handlePricingError maps pricing pipeline errors to HTTP responses. Provider
// degradation never reaches here: a degraded pricing result is still a 200.
func handlePricingError(c echo.Context, err error) error {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return response.ValidationError(c, invalid.ToMap())
	}

	if errors.Is(err, domain.ErrPackageNotFound) {
		return response.NotFound(c, response.MsgPackageNotFound)
	}
	if errors.Is(err, domain.ErrHotelNotFound) {
		return response.NotFound(c, "Hotel not found")
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
