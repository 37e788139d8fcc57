package domain

import "time"

// NightlyRate is the rate for a single night of a room option.
type NightlyRate struct {
	// Date is the night this rate applies to
	Date time.Time `json:"date"`

	// Amount is the rate for the night
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`
}

// RoomOption is a bookable room returned by a live search.
type RoomOption struct {
	// RoomTypeCode identifies the room type at the provider
	RoomTypeCode string `json:"roomTypeCode"`

	// NightlyRates lists the per-night rates for the stay
	NightlyRates []NightlyRate `json:"nightlyRates"`

	// TotalAmount is the provider's total for the whole stay. When set it
	// takes precedence over the per-night computation since providers may
	// apply non-linear pricing such as weekend surcharges.
	TotalAmount float64 `json:"totalAmount"`

	// Currency is the ISO 4217 currency code for TotalAmount
	Currency string `json:"currency"`

	// BoardType is the meal plan (e.g., "RoomOnly", "BedAndBreakfast")
	BoardType string `json:"boardType,omitempty"`

	// CancellationPolicy is the provider's cancellation policy text
	CancellationPolicy string `json:"cancellationPolicy,omitempty"`

	// IsRefundable indicates whether the rate is refundable
	IsRefundable bool `json:"isRefundable"`

	// BookingCode is the provider token required to prebook this rate
	BookingCode string `json:"bookingCode"`
}

// HotelRateQuote is the normalized result of a live search for one hotel.
// Quotes are produced per request, held transiently in the rate cache, and
// never persisted beyond their expiry.
type HotelRateQuote struct {
	// HotelID references the hotel document this quote belongs to
	HotelID string `json:"hotelId"`

	// Available indicates whether the hotel has any bookable rooms
	Available bool `json:"available"`

	// Rooms lists the bookable room options
	Rooms []RoomOption `json:"rooms"`
}

// BestRoom returns the cheapest room option by total amount, or nil when the
// quote has no rooms.
func (q *HotelRateQuote) BestRoom() *RoomOption {
	if len(q.Rooms) == 0 {
		return nil
	}
	best := &q.Rooms[0]
	for i := 1; i < len(q.Rooms); i++ {
		if q.Rooms[i].TotalAmount < best.TotalAmount {
			best = &q.Rooms[i]
		}
	}
	return best
}

// SearchResultSet is the full outcome of one provider search across one or
// more hotel codes.
type SearchResultSet struct {
	// Quotes holds one entry per hotel code searched
	Quotes []HotelRateQuote `json:"quotes"`

	// Provider identifies the inventory provider that produced the results
	Provider string `json:"provider"`

	// SearchedAt records when the search was performed
	SearchedAt time.Time `json:"searchedAt"`
}

// QuoteFor returns the quote for the given hotel ID, or nil if absent.
func (s *SearchResultSet) QuoteFor(hotelID string) *HotelRateQuote {
	for i := range s.Quotes {
		if s.Quotes[i].HotelID == hotelID {
			return &s.Quotes[i]
		}
	}
	return nil
}

// RoomRequest describes the guest composition of one requested room.
type RoomRequest struct {
	// Adults is the number of adults in the room
	Adults int `json:"adults"`

	// Children is the number of children in the room
	Children int `json:"children"`
}

// HotelSearchRequest is the input to a live rate search.
type HotelSearchRequest struct {
	// HotelCodes is the set of provider hotel codes to search
	HotelCodes []string `json:"hotelCodes"`

	// CheckIn is the stay check-in date
	CheckIn time.Time `json:"checkIn"`

	// CheckOut is the stay check-out date
	CheckOut time.Time `json:"checkOut"`

	// Rooms is the requested room composition (must be non-empty)
	Rooms []RoomRequest `json:"rooms"`

	// Nationality is the guest nationality code rates are quoted for
	Nationality string `json:"nationality"`
}

// Validate checks the search request preconditions, appending a violation for
// every constraint broken.
func (r HotelSearchRequest) Validate(today time.Time, v *Violations) {
	if len(r.HotelCodes) == 0 {
		v.Add("hotelCodes", "at least one hotel code is required")
	}
	if !r.CheckIn.Before(r.CheckOut) {
		v.Add("checkIn", "checkIn must be before checkOut")
	}
	if r.CheckIn.Before(today) {
		v.Add("checkIn", "checkIn cannot be in the past")
	}
	if len(r.Rooms) == 0 {
		v.Add("rooms", "at least one room is required")
	}
}
