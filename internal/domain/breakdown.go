package domain

// RateSource identifies where a hotel portion's price came from.
type RateSource string

// Rate sources for hotel portion lines.
const (
	RateSourceLive   RateSource = "live"
	RateSourceStatic RateSource = "static"
)

// BasePortion is the package's static per-traveler pricing component.
type BasePortion struct {
	// Adults is the total charged for adult travelers
	Adults float64 `json:"adults"`

	// Children is the total charged for child travelers
	Children float64 `json:"children"`

	// Infants is the total charged for infant travelers
	Infants float64 `json:"infants"`

	// Subtotal is the sum of the per-traveler totals before discount
	Subtotal float64 `json:"subtotal"`
}

// DiscountApplied records the discount actually applied to the base portion.
type DiscountApplied struct {
	// Type is the discount rule type that was applied
	Type DiscountType `json:"type"`

	// Value is the rule's configured value
	Value float64 `json:"value"`

	// Amount is the monetary amount deducted, clamped so the discounted
	// subtotal never goes negative
	Amount float64 `json:"amount"`
}

// HotelPortionLine is the priced contribution of one hotel assignment.
type HotelPortionLine struct {
	// HotelID references the hotel document
	HotelID string `json:"hotelId"`

	// Nights is the number of nights priced
	Nights int `json:"nights"`

	// Total is the cost of the stay across all rooms
	Total float64 `json:"total"`

	// Currency is the ISO 4217 currency code of Total
	Currency string `json:"currency"`

	// Source records whether the price came from a live quote or the
	// hotel's static base price
	Source RateSource `json:"source"`
}

// FeeLine is a named tax or fee added on top of the package and hotel portions.
type FeeLine struct {
	// Name describes the tax or fee
	Name string `json:"name"`

	// Amount is the monetary amount added
	Amount float64 `json:"amount"`
}

// PriceBreakdown is the engine's output: a full price composition for one
// package configuration. It is built fresh per request and never mutated
// after construction.
type PriceBreakdown struct {
	// PackagePortion is the static per-traveler component
	PackagePortion BasePortion `json:"packagePortion"`

	// Discount is the discount applied to the package portion
	Discount DiscountApplied `json:"discount"`

	// HotelPortion lists the per-hotel stay costs
	HotelPortion []HotelPortionLine `json:"hotelPortion"`

	// TaxesAndFees lists additional charges
	TaxesAndFees []FeeLine `json:"taxesAndFees"`

	// GrandTotal is the discounted package portion plus hotel portions plus
	// taxes and fees
	GrandTotal float64 `json:"grandTotal"`

	// Currency is the package currency the breakdown is expressed in
	Currency string `json:"currency"`

	// PricePerPerson is GrandTotal divided by the traveler count
	PricePerPerson float64 `json:"pricePerPerson"`

	// Warnings carries non-fatal pricing notes such as zero-night stays or
	// currency mismatches
	Warnings []string `json:"warnings,omitempty"`
}

// DiscountedSubtotal returns the package portion after discount.
func (b *PriceBreakdown) DiscountedSubtotal() float64 {
	return b.PackagePortion.Subtotal - b.Discount.Amount
}

// HotelError records a per-hotel provider failure during pricing. The failed
// hotel falls back to its static base price; the failure is reported alongside
// the breakdown rather than aborting the request.
type HotelError struct {
	// HotelID is the hotel whose live fetch failed
	HotelID string `json:"hotelId"`

	// Kind is the provider error kind, when the failure was a provider error
	Kind ProviderErrorKind `json:"kind,omitempty"`

	// Message is a human-readable description of the failure
	Message string `json:"message"`
}

// PricingResult is the orchestrator's full answer for one pricing request.
type PricingResult struct {
	// Breakdown is the composed price breakdown
	Breakdown PriceBreakdown `json:"breakdown"`

	// Hotels holds the live quotes that were resolved, keyed by hotel ID
	Hotels map[string]*HotelRateQuote `json:"hotels,omitempty"`

	// Errors lists per-hotel failures; non-empty Errors with a valid
	// Breakdown indicates a degraded (partially static) price
	Errors []HotelError `json:"errors,omitempty"`

	// Metadata describes how the request was executed
	Metadata PricingMetadata `json:"metadata"`
}

// Degraded reports whether any hotel fell back to static pricing.
func (r *PricingResult) Degraded() bool {
	return len(r.Errors) > 0
}

// PricingMetadata describes how a pricing request was executed.
type PricingMetadata struct {
	// LivePricing indicates whether live hotel rates were requested
	LivePricing bool `json:"livePricing"`

	// HotelsQueried is the number of hotel assignments priced
	HotelsQueried int `json:"hotelsQueried"`

	// HotelsFromCache is the number of assignments served from cache
	HotelsFromCache int `json:"hotelsFromCache"`

	// HotelsFailed is the number of assignments that fell back to static rates
	HotelsFailed int `json:"hotelsFailed"`

	// DurationMs is the total pricing duration in milliseconds
	DurationMs int64 `json:"durationMs"`
}

// Configuration is one traveler/date combination passed to the comparison
// entry point.
type Configuration struct {
	// Label optionally names the configuration for the caller's UI
	Label string `json:"label,omitempty"`

	// Travelers is the traveler composition to price
	Travelers TravelerCount `json:"travelers"`

	// DateRange optionally overrides the comparison-wide date range
	DateRange *DateRange `json:"dateRange,omitempty"`
}

// ComparisonEntry is the outcome for a single compared configuration.
type ComparisonEntry struct {
	// Config is the configuration that was priced
	Config Configuration `json:"config"`

	// Result is set when pricing succeeded
	Result *PricingResult `json:"result,omitempty"`

	// Error is set when pricing failed outright
	Error string `json:"error,omitempty"`

	// Best marks the configuration with the lowest price per person among
	// those that priced successfully
	Best bool `json:"best"`
}

// MaxComparisonConfigurations bounds how many configurations one comparison
// request may carry, keeping latency predictable.
const MaxComparisonConfigurations = 5
