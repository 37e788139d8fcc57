package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/adapter/http/response"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/usecase"
)

// BookingHandler handles HTTP requests for booking endpoints.
type BookingHandler struct {
	bookings usecase.BookingService
}

// NewBookingHandler creates a new BookingHandler with the given service.
func NewBookingHandler(bookings usecase.BookingService) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
	}
}

// PreBook handles POST /api/v1/bookings/prebook
//
// @Summary Revalidate a quoted rate before booking
// @Description Asks the provider to confirm that a previously quoted rate is still available at the quoted price.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body PreBookRequest true "PreBook input"
// @Success 200 {object} PreBookResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Rate changed"
// @Failure 422 {object} response.ErrorDetail "No availability"
// @Router /api/v1/bookings/prebook [post]
func (h *BookingHandler) PreBook(c echo.Context) error {
	var req PreBookRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	quote, err := h.bookings.PreBook(c.Request().Context(), req.BookingCode)
	if err != nil {
		return handleBookingError(c, err)
	}

	return response.OK(c, ToPreBookResponseDTO(req.BookingCode, quote))
}

// Book handles POST /api/v1/bookings
//
// @Summary Confirm a hotel booking
// @Description Books a previously quoted rate. Transient provider failures are retried; a rate change aborts the booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookRequest true "Booking input"
// @Success 201 {object} BookingResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Rate changed"
// @Failure 422 {object} response.ErrorDetail "No availability"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	confirmation, err := h.bookings.Book(c.Request().Context(), ToBookingRequest(&req))
	if err != nil {
		return handleBookingError(c, err)
	}

	return response.Created(c, ToBookingResponseDTO(confirmation))
}

// handleBookingError maps booking pipeline errors to HTTP responses. Provider
// error kinds carry the interesting distinctions here: a changed rate is a
// conflict the client can resolve by repricing, missing availability is a
// semantic failure, and everything else is an upstream problem.
func handleBookingError(c echo.Context, err error) error {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return response.ValidationError(c, invalid.ToMap())
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		switch provErr.Kind {
		case domain.KindRateChanged:
			return response.RateChanged(c)
		case domain.KindNoAvailability:
			return response.NoAvailability(c)
		case domain.KindTimeout:
			return response.GatewayTimeout(c)
		default:
			return response.ProviderUnavailable(c)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
