// Package http provides the HTTP handler layer for the package pricing API.
package http

import (
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/usecase"
)

// ToPricingRequest converts a DetailedPricingRequest to a usecase request.
// Dates are assumed valid; Validate runs first.
func ToPricingRequest(req *DetailedPricingRequest) usecase.PricingRequest {
	return usecase.PricingRequest{
		PackageID:   req.PackageID,
		Travelers:   toTravelerCount(req.Travelers),
		DateRange:   toDateRange(req.DateRange),
		Currency:    req.Currency,
		Nationality: req.Nationality,
	}
}

// ToConfigurations converts compare request configurations to domain values.
func ToConfigurations(dtos []ConfigurationDTO) []domain.Configuration {
	configs := make([]domain.Configuration, len(dtos))
	for i, dto := range dtos {
		configs[i] = domain.Configuration{
			Label:     dto.Label,
			Travelers: toTravelerCount(dto.Travelers),
			DateRange: toDateRange(dto.DateRange),
		}
	}
	return configs
}

// ToBookingRequest converts a BookRequest to a domain booking request.
func ToBookingRequest(req *BookRequest) domain.BookingRequest {
	guests := make([]domain.Guest, len(req.Guests))
	for i, g := range req.Guests {
		guests[i] = domain.Guest{
			Title:     g.Title,
			FirstName: g.FirstName,
			LastName:  g.LastName,
			IsLead:    g.IsLead,
		}
	}

	return domain.BookingRequest{
		BookingCode: req.BookingCode,
		Reference:   req.Reference,
		Guests:      guests,
	}
}

func toTravelerCount(t TravelersDTO) domain.TravelerCount {
	return domain.TravelerCount{
		Adults:   t.Adults,
		Children: t.Children,
		Infants:  t.Infants,
	}
}

func toDateRange(d *DateRangeDTO) *domain.DateRange {
	if d == nil {
		return nil
	}

	start, err := time.Parse("2006-01-02", d.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", d.EndDate)
	if err != nil {
		return nil
	}

	return &domain.DateRange{StartDate: start, EndDate: end}
}
