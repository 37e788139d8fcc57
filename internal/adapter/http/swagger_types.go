// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerPricingResponse represents the pricing API response for swagger documentation.
// @Description Package price breakdown with metadata
type SwaggerPricingResponse struct {
	// PackageID identifies the priced package
	PackageID string `json:"package_id" example:"pkg-bali-5d"`

	// Breakdown is the full price breakdown in the package currency
	Breakdown SwaggerBreakdown `json:"breakdown"`

	// Errors lists hotels whose live rate fetch failed
	Errors []SwaggerHotelError `json:"errors,omitempty"`

	// Degraded is true when at least one hotel fell back to static pricing
	Degraded bool `json:"degraded" example:"false"`

	// Metadata contains information about the pricing execution
	Metadata SwaggerPricingMetadata `json:"metadata"`
}

// SwaggerBreakdown contains the itemized price breakdown.
// @Description Itemized package price breakdown
type SwaggerBreakdown struct {
	// PackagePortion is the traveler-based portion before discounts
	PackagePortion SwaggerBasePortion `json:"package_portion"`

	// Discount describes the applied discount, if any
	Discount SwaggerDiscount `json:"discount"`

	// HotelPortion lists one line per hotel stay
	HotelPortion []SwaggerHotelLine `json:"hotel_portion"`

	// GrandTotal is the final payable amount
	GrandTotal float64 `json:"grand_total" example:"1125"`

	// Currency is the ISO 4217 currency code of the package
	Currency string `json:"currency" example:"USD"`

	// PricePerPerson is the grand total divided by the number of travelers
	PricePerPerson float64 `json:"price_per_person" example:"375"`

	// Warnings lists non-fatal pricing notes
	Warnings []string `json:"warnings,omitempty"`
}

// SwaggerBasePortion contains the traveler-based subtotal.
// @Description Traveler-based package subtotal
type SwaggerBasePortion struct {
	// AdultsTotal is the adult price times the adult count
	AdultsTotal float64 `json:"adults_total" example:"1000"`

	// ChildrenTotal is the child price times the child count
	ChildrenTotal float64 `json:"children_total" example:"250"`

	// InfantsTotal is the infant price times the infant count
	InfantsTotal float64 `json:"infants_total" example:"0"`

	// Subtotal is the sum of all traveler totals
	Subtotal float64 `json:"subtotal" example:"1250"`
}

// SwaggerDiscount describes an applied discount.
// @Description Applied discount information
type SwaggerDiscount struct {
	// Type is the discount type (percentage or fixed)
	Type string `json:"type" example:"percentage"`

	// Value is the configured discount value
	Value float64 `json:"value" example:"10"`

	// Amount is the monetary amount deducted
	Amount float64 `json:"amount" example:"125"`
}

// SwaggerHotelLine is one hotel stay line in the breakdown.
// @Description Hotel portion line
type SwaggerHotelLine struct {
	// HotelID identifies the hotel
	HotelID string `json:"hotel_id" example:"htl-1"`

	// Nights is the number of nights priced
	Nights int `json:"nights" example:"2"`

	// Total is the stay total for all rooms
	Total float64 `json:"total" example:"300"`

	// Currency is the currency the hotel is priced in
	Currency string `json:"currency" example:"USD"`

	// Source is "live" or "static"
	Source string `json:"source" example:"live"`
}

// SwaggerHotelError reports a failed live rate fetch.
// @Description Failed hotel rate fetch
type SwaggerHotelError struct {
	// HotelID identifies the hotel that failed
	HotelID string `json:"hotel_id" example:"htl-1"`

	// Kind classifies the failure
	Kind string `json:"kind" example:"timeout"`

	// Message is a human-readable description
	Message string `json:"message" example:"rate search timed out"`
}

// SwaggerPricingMetadata contains metadata about the pricing execution.
// @Description Metadata about the pricing execution
type SwaggerPricingMetadata struct {
	// LivePricing is true when live hotel rates were requested
	LivePricing bool `json:"live_pricing" example:"true"`

	// HotelsQueried is the number of hotel stays priced
	HotelsQueried int `json:"hotels_queried" example:"2"`

	// HotelsFromCache is the number of stays served from the rate cache
	HotelsFromCache int `json:"hotels_from_cache" example:"1"`

	// HotelsFailed is the number of stays that fell back to static pricing
	HotelsFailed int `json:"hotels_failed" example:"0"`

	// DurationMs is the total pricing duration in milliseconds
	DurationMs int64 `json:"duration_ms" example:"420"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
