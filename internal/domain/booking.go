package domain

import "time"

// Guest identifies one traveler on a booking.
type Guest struct {
	// Title is the guest's salutation (e.g., "Mr", "Ms")
	Title string `json:"title,omitempty"`

	// FirstName is the guest's given name
	FirstName string `json:"firstName"`

	// LastName is the guest's family name
	LastName string `json:"lastName"`

	// IsLead marks the lead guest the provider contacts about the stay
	IsLead bool `json:"isLead"`
}

// BookingRequest is the input to the final booking step.
type BookingRequest struct {
	// BookingCode is the provider token from a prebooked rate
	BookingCode string `json:"bookingCode"`

	// Guests lists the travelers on the booking (must be non-empty)
	Guests []Guest `json:"guests"`

	// Reference is the caller's idempotency key. Booking is a financial
	// side effect: a repeated Reference returns the original confirmation
	// instead of creating a duplicate booking.
	Reference string `json:"reference"`
}

// Validate appends a violation for every constraint the request breaks.
func (r BookingRequest) Validate(v *Violations) {
	if r.BookingCode == "" {
		v.Add("bookingCode", "bookingCode is required")
	}
	if len(r.Guests) == 0 {
		v.Add("guests", "at least one guest is required")
	}
	for _, g := range r.Guests {
		if g.FirstName == "" || g.LastName == "" {
			v.Add("guests", "guest names are required")
			break
		}
	}
}

// BookingConfirmation is the provider's acknowledgement of a completed booking.
type BookingConfirmation struct {
	// ConfirmationNumber is the provider's booking identifier
	ConfirmationNumber string `json:"confirmationNumber"`

	// Reference echoes the caller's idempotency reference
	Reference string `json:"reference"`

	// BookingCode echoes the rate token that was booked
	BookingCode string `json:"bookingCode"`

	// Status is the provider booking status (e.g., "Confirmed")
	Status string `json:"status"`

	// BookedAt is when the booking was confirmed
	BookedAt time.Time `json:"bookedAt"`
}
