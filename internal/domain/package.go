// Package domain contains the core business entities and rules for the package
// pricing engine. These entities are provider-agnostic and form the foundation
// upon which all other components are built.
package domain

import "time"

// DiscountType identifies how a package discount is applied.
type DiscountType string

// Supported discount types.
const (
	DiscountNone        DiscountType = "none"
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// DiscountRule describes the discount attached to a package.
type DiscountRule struct {
	// Type is one of none, percentage, fixed_amount
	Type DiscountType `json:"type"`

	// Value is the percentage (0-100) or the fixed amount in package currency
	Value float64 `json:"value"`
}

// Package represents a multi-day travel product with static per-traveler
// pricing and optional linked hotel stays. Packages are owned by the storage
// layer; the pricing engine only reads them.
type Package struct {
	// ID is the unique package identifier
	ID string `json:"id"`

	// Name is the display name of the package
	Name string `json:"name"`

	// Currency is the ISO 4217 currency code for all static prices
	Currency string `json:"currency"`

	// DurationDays is the total length of the package in days
	DurationDays int `json:"durationDays"`

	// PriceAdult is the static price per adult traveler
	PriceAdult float64 `json:"priceAdult"`

	// PriceChild is the static price per child traveler
	PriceChild float64 `json:"priceChild"`

	// PriceInfant is the static price per infant traveler.
	// When nil, infants travel free.
	PriceInfant *float64 `json:"priceInfant,omitempty"`

	// Discount is the discount rule applied to the package portion
	Discount DiscountRule `json:"discount"`

	// Assignments links the package to hotel stays for sub-ranges of its days
	Assignments []HotelAssignment `json:"assignments"`
}

// Hotel represents a bookable property referenced by package assignments.
// Hotels are owned by the storage layer.
type Hotel struct {
	// ID is the unique hotel identifier
	ID string `json:"id"`

	// Code is the inventory provider's hotel code used for live searches
	Code string `json:"code"`

	// Name is the display name of the hotel
	Name string `json:"name"`

	// BasePrice is the static per-night rate used when live pricing is
	// unavailable or not requested
	BasePrice float64 `json:"basePrice"`

	// Currency is the ISO 4217 currency code for BasePrice
	Currency string `json:"currency"`
}

// TravelerCount describes the traveler composition of a pricing request.
type TravelerCount struct {
	// Adults is the number of adult travelers (must be at least 1)
	Adults int `json:"adults"`

	// Children is the number of child travelers
	Children int `json:"children"`

	// Infants is the number of infant travelers
	Infants int `json:"infants"`
}

// Total returns the total number of travelers.
func (t TravelerCount) Total() int {
	return t.Adults + t.Children + t.Infants
}

// Validate appends a violation for every constraint the traveler count breaks.
func (t TravelerCount) Validate(v *Violations) {
	if t.Adults < 1 {
		v.Add("travelers.adults", "at least 1 adult is required")
	}
	if t.Children < 0 {
		v.Add("travelers.children", "children cannot be negative")
	}
	if t.Infants < 0 {
		v.Add("travelers.infants", "infants cannot be negative")
	}
}

// DateRange is the optional travel window of a pricing request. When present
// it anchors each assignment's day offsets to absolute stay dates.
type DateRange struct {
	// StartDate is the first day of travel
	StartDate time.Time `json:"startDate"`

	// EndDate is the last day of travel
	EndDate time.Time `json:"endDate"`
}

// Validate appends a violation for every constraint the range breaks.
// Today is injected so callers can pin it in tests.
func (d DateRange) Validate(today time.Time, v *Violations) {
	if !d.StartDate.Before(d.EndDate) {
		v.Add("dateRange", "startDate must be before endDate")
	}
	if d.StartDate.Before(today) {
		v.Add("dateRange.startDate", "startDate cannot be in the past")
	}
}

// Nights returns the number of nights covered by the range.
func (d DateRange) Nights() int {
	return int(d.EndDate.Sub(d.StartDate).Hours() / 24)
}
