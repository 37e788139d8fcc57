// Package mock provides test doubles for the pricing engine.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// RateClient is a configurable mock implementation of domain.RateClient.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type RateClient struct {
	name        string
	results     *domain.SearchResultSet
	searchErr   error
	prebookErr  error
	bookErr     error
	delay       time.Duration
	searchCalls int
	bookCalls   int
	booked      map[string]*domain.BookingConfirmation
	mu          sync.Mutex
}

// NewRateClient creates a new mock rate client with the given name.
// The client is configured using the builder pattern methods.
func NewRateClient(name string) *RateClient {
	return &RateClient{name: name}
}

// WithResults configures the client to return the given search results.
func (c *RateClient) WithResults(results *domain.SearchResultSet) *RateClient {
	c.results = results
	return c
}

// WithSearchError configures Search to return the given error.
func (c *RateClient) WithSearchError(err error) *RateClient {
	c.searchErr = err
	return c
}

// WithPreBookError configures PreBook to return the given error.
func (c *RateClient) WithPreBookError(err error) *RateClient {
	c.prebookErr = err
	return c
}

// WithBookError configures Book to return the given error.
func (c *RateClient) WithBookError(err error) *RateClient {
	c.bookErr = err
	return c
}

// WithDelay configures the client to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (c *RateClient) WithDelay(d time.Duration) *RateClient {
	c.delay = d
	return c
}

// Name returns the provider's unique identifier.
func (c *RateClient) Name() string {
	return c.name
}

// Search implements domain.RateClient.Search.
// It respects context cancellation, applies the configured delay, and
// returns the configured results or error.
func (c *RateClient) Search(ctx context.Context, req domain.HotelSearchRequest) (*domain.SearchResultSet, error) {
	c.mu.Lock()
	c.searchCalls++
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	if c.results != nil {
		return c.results, nil
	}
	return SampleResults(c.name, req), nil
}

// PreBook implements domain.RateClient.PreBook.
func (c *RateClient) PreBook(ctx context.Context, bookingCode string) (*domain.HotelRateQuote, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.prebookErr != nil {
		return nil, c.prebookErr
	}
	quote := SampleQuote("HTL-001", bookingCode)
	return &quote, nil
}

// Book implements domain.RateClient.Book. Successful bookings are recorded
// so repeated calls with the same reference return the original confirmation.
func (c *RateClient) Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	c.mu.Lock()
	c.bookCalls++
	calls := c.bookCalls
	if conf, ok := c.booked[req.Reference]; ok {
		c.mu.Unlock()
		return conf, nil
	}
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.bookErr != nil {
		return nil, c.bookErr
	}

	conf := &domain.BookingConfirmation{
		ConfirmationNumber: fmt.Sprintf("%s-CONF-%d", c.name, calls),
		Reference:          req.Reference,
		BookingCode:        req.BookingCode,
		Status:             "Confirmed",
		BookedAt:           time.Now(),
	}

	c.mu.Lock()
	if c.booked == nil {
		c.booked = make(map[string]*domain.BookingConfirmation)
	}
	c.booked[req.Reference] = conf
	c.mu.Unlock()
	return conf, nil
}

// SearchCallCount returns the number of times Search was called.
// This is useful for verifying cache behavior.
func (c *RateClient) SearchCallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchCalls
}

// BookCallCount returns the number of times Book was called.
func (c *RateClient) BookCallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookCalls
}

// Reset resets the call counts and recorded bookings.
func (c *RateClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchCalls = 0
	c.bookCalls = 0
	c.booked = nil
}

func (c *RateClient) wait(ctx context.Context) error {
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay):
		}
	}
	return ctx.Err()
}

// Ensure RateClient implements domain.RateClient at compile time.
var _ domain.RateClient = (*RateClient)(nil)

// SampleQuote returns a quote with one refundable room priced at 150 per
// night for two nights (total 300).
func SampleQuote(hotelCode, bookingCode string) domain.HotelRateQuote {
	night := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return domain.HotelRateQuote{
		HotelID:   hotelCode,
		Available: true,
		Rooms: []domain.RoomOption{
			{
				RoomTypeCode: "DBL",
				NightlyRates: []domain.NightlyRate{
					{Date: night, Amount: 150, Currency: "USD"},
					{Date: night.AddDate(0, 0, 1), Amount: 150, Currency: "USD"},
				},
				TotalAmount:  300,
				Currency:     "USD",
				BoardType:    "BedAndBreakfast",
				IsRefundable: true,
				BookingCode:  bookingCode,
			},
		},
	}
}

// SampleResults builds a result set with one quote per requested hotel code.
// Totals vary by hotel so tests can tell quotes apart.
func SampleResults(provider string, req domain.HotelSearchRequest) *domain.SearchResultSet {
	quotes := make([]domain.HotelRateQuote, 0, len(req.HotelCodes))
	for i, code := range req.HotelCodes {
		quote := SampleQuote(code, fmt.Sprintf("%s-BC-%d", code, i+1))
		for j := range quote.Rooms {
			quote.Rooms[j].TotalAmount += float64(i * 50)
		}
		quotes = append(quotes, quote)
	}
	return &domain.SearchResultSet{
		Quotes:     quotes,
		Provider:   provider,
		SearchedAt: time.Now(),
	}
}
