package domain

import "context"

// RateClient abstracts a third-party hotel-inventory provider. Live rates are
// volatile, so the provider exposes a three-step protocol: search for options,
// lock a quote with PreBook, then confirm with Book. The split lets the system
// validate price immediately before committing without re-running a search.
type RateClient interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search queries live rates for the requested hotels and stay. Failures
	// are reported as *ProviderError so callers can branch on the kind.
	Search(ctx context.Context, req HotelSearchRequest) (*SearchResultSet, error)

	// PreBook revalidates a previously returned rate immediately before
	// booking. A rate whose price or availability differs from the original
	// search surfaces as KindRateChanged, distinct from KindNoAvailability:
	// the former means "refresh pricing and retry", the latter "pick another
	// hotel or date".
	PreBook(ctx context.Context, bookingCode string) (*HotelRateQuote, error)

	// Book confirms a prebooked rate. Book is idempotent on the request's
	// Reference: a repeated call after a prior success returns the original
	// confirmation rather than creating a duplicate booking.
	Book(ctx context.Context, req BookingRequest) (*BookingConfirmation, error)
}
