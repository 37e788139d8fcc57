// Package http provides the HTTP handler layer for the package pricing API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// DetailedPricingRequest represents the request body for detailed pricing.
type DetailedPricingRequest struct {
	// PackageID identifies the package to price
	PackageID string `json:"packageId"`

	// Travelers is the traveler composition
	Travelers TravelersDTO `json:"travelers"`

	// DateRange is the optional travel window; when present, live hotel
	// rates are fetched
	DateRange *DateRangeDTO `json:"dateRange,omitempty"`

	// Currency is the optional requested display currency (ISO 4217)
	Currency string `json:"currency,omitempty"`

	// Nationality is the optional guest nationality for rate searches
	Nationality string `json:"nationality,omitempty"`
}

// QuickEstimateRequest represents the request body for a quick estimate.
type QuickEstimateRequest struct {
	// PackageID identifies the package to price
	PackageID string `json:"packageId"`

	// Travelers is the traveler composition
	Travelers TravelersDTO `json:"travelers"`
}

// CompareRequest represents the request body for configuration comparison.
type CompareRequest struct {
	// PackageID identifies the package to price
	PackageID string `json:"packageId"`

	// Configurations lists the traveler/date combinations to compare (1-5)
	Configurations []ConfigurationDTO `json:"configurations"`

	// DateRange is the optional shared travel window applied to
	// configurations that do not carry their own
	DateRange *DateRangeDTO `json:"dateRange,omitempty"`
}

// PreBookRequest represents the request body for rate revalidation.
type PreBookRequest struct {
	// BookingCode is the provider token from a prior search
	BookingCode string `json:"bookingCode"`
}

// BookRequest represents the request body for booking confirmation.
type BookRequest struct {
	// BookingCode is the provider token validated by prebook
	BookingCode string `json:"bookingCode"`

	// Reference is the caller's idempotency key; generated when absent
	Reference string `json:"reference,omitempty"`

	// Guests lists the travelers to register with the booking
	Guests []GuestDTO `json:"guests"`
}

// TravelersDTO represents a traveler composition.
type TravelersDTO struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// DateRangeDTO represents a travel window with dates in YYYY-MM-DD format.
type DateRangeDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ConfigurationDTO represents one compared traveler/date combination.
type ConfigurationDTO struct {
	// Label optionally names the configuration for the caller's UI
	Label string `json:"label,omitempty"`

	Travelers TravelersDTO  `json:"travelers"`
	DateRange *DateRangeDTO `json:"dateRange,omitempty"`
}

// GuestDTO represents one guest on a booking.
type GuestDTO struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsLead    bool   `json:"isLead"`
}

// Validation regex patterns.
var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request's shape: required fields, formats, and ranges.
// Semantic rules (dates not in the past, adults >= 1) are enforced again by
// the pricing service against its own clock.
func (r *DetailedPricingRequest) Validate() error {
	errs := &ValidationErrors{}

	validatePackageID(r.PackageID, errs)
	r.Travelers.validate("travelers", errs)
	r.DateRange.validate("dateRange", errs)
	validateCurrency(&r.Currency, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the request's shape.
func (r *QuickEstimateRequest) Validate() error {
	errs := &ValidationErrors{}

	validatePackageID(r.PackageID, errs)
	r.Travelers.validate("travelers", errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the request's shape, including the configuration bound.
func (r *CompareRequest) Validate() error {
	errs := &ValidationErrors{}

	validatePackageID(r.PackageID, errs)

	if len(r.Configurations) == 0 {
		errs.Add("configurations", "at least one configuration is required")
	}
	if len(r.Configurations) > domain.MaxComparisonConfigurations {
		errs.Add("configurations", fmt.Sprintf("maximum %d configurations per comparison", domain.MaxComparisonConfigurations))
	}

	for i, config := range r.Configurations {
		prefix := fmt.Sprintf("configurations[%d]", i)
		config.Travelers.validate(prefix+".travelers", errs)
		config.DateRange.validate(prefix+".dateRange", errs)
	}
	r.DateRange.validate("dateRange", errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the request's shape.
func (r *PreBookRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.BookingCode) == "" {
		errs.Add("bookingCode", "bookingCode is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the request's shape.
func (r *BookRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.BookingCode) == "" {
		errs.Add("bookingCode", "bookingCode is required")
	}

	if len(r.Guests) == 0 {
		errs.Add("guests", "at least one guest is required")
	}

	lead := false
	for i, g := range r.Guests {
		prefix := fmt.Sprintf("guests[%d]", i)
		if strings.TrimSpace(g.FirstName) == "" {
			errs.Add(prefix+".firstName", "firstName is required")
		}
		if strings.TrimSpace(g.LastName) == "" {
			errs.Add(prefix+".lastName", "lastName is required")
		}
		if g.IsLead {
			lead = true
		}
	}
	if len(r.Guests) > 0 && !lead {
		errs.Add("guests", "one guest must be marked as the lead")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validatePackageID(id string, errs *ValidationErrors) {
	if strings.TrimSpace(id) == "" {
		errs.Add("packageId", "packageId is required")
	}
}

func validateCurrency(currency *string, errs *ValidationErrors) {
	if *currency == "" {
		return
	}

	normalized := strings.ToUpper(*currency)
	if !currencyPattern.MatchString(normalized) {
		errs.Add("currency", "currency must be a valid 3-letter ISO 4217 code")
		return
	}
	*currency = normalized
}

func (t TravelersDTO) validate(field string, errs *ValidationErrors) {
	if t.Adults < 1 {
		errs.Add(field+".adults", "at least 1 adult is required")
	}
	if t.Children < 0 {
		errs.Add(field+".children", "children cannot be negative")
	}
	if t.Infants < 0 {
		errs.Add(field+".infants", "infants cannot be negative")
	}
}

func (d *DateRangeDTO) validate(field string, errs *ValidationErrors) {
	if d == nil {
		return
	}

	start, startOK := parseDate(d.StartDate, field+".startDate", errs)
	end, endOK := parseDate(d.EndDate, field+".endDate", errs)

	if startOK && endOK && !start.Before(end) {
		errs.Add(field, "startDate must be before endDate")
	}
}

func parseDate(value, field string, errs *ValidationErrors) (time.Time, bool) {
	if value == "" {
		errs.Add(field, field[strings.LastIndex(field, ".")+1:]+" is required")
		return time.Time{}, false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, "date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, "date is not a valid calendar date")
		return time.Time{}, false
	}
	return t, true
}
