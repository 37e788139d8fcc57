// Package tbo implements the HotelRateClient against the TBO hotel-inventory
// API: search, prebook (rate revalidation), and book over HTTPS, with
// provider responses normalized into the internal rate model.
package tbo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
)

// DefaultTimeout bounds each provider call. The provider-side hint is ~23
// seconds; the deadline is configurable for deployments that need tighter
// bounds.
const DefaultTimeout = 23 * time.Second

// Client calls the TBO API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	clock      timeutil.Clock
	log        *logger.Logger

	// bookings is the idempotency ledger for Book: reference → confirmation.
	mu       sync.Mutex
	bookings map[string]*domain.BookingConfirmation
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock substitutes the clock (for tests).
func WithClock(clock timeutil.Clock) ClientOption {
	return func(c *Client) { c.clock = clock }
}

// WithLogger sets the client's logger.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) { c.log = log.WithProvider(ProviderName) }
}

// NewClient creates a TBO client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		clock:      timeutil.NewRealClock(),
		log:        logger.Nop(),
		bookings:   make(map[string]*domain.BookingConfirmation),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements domain.RateClient.
func (c *Client) Name() string {
	return ProviderName
}

// Search implements domain.RateClient.Search.
func (c *Client) Search(ctx context.Context, req domain.HotelSearchRequest) (*domain.SearchResultSet, error) {
	v := &domain.Violations{}
	req.Validate(timeutil.Today(c.clock), v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	rooms := make([]paxRoom, 0, len(req.Rooms))
	for _, r := range req.Rooms {
		rooms = append(rooms, paxRoom{Adults: r.Adults, Children: r.Children})
	}

	payload := searchRequest{
		CheckIn:            req.CheckIn.Format("2006-01-02"),
		CheckOut:           req.CheckOut.Format("2006-01-02"),
		HotelCodes:         strings.Join(req.HotelCodes, ","),
		GuestNationality:   strings.ToUpper(req.Nationality),
		PaxRooms:           rooms,
		ResponseTime:       c.timeout.Seconds(),
		IsDetailedResponse: true,
	}

	var resp searchResponse
	if err := c.post(ctx, "/Search", payload, &resp); err != nil {
		return nil, err
	}

	switch resp.Status.Code {
	case statusSuccess:
	case statusNoAvailability:
		return nil, domain.NewProviderError(ProviderName, domain.KindNoAvailability, nil)
	default:
		return nil, domain.NewProviderError(ProviderName, domain.KindInvalidResponse,
			fmt.Errorf("status %d: %s", resp.Status.Code, resp.Status.Description))
	}

	if len(resp.HotelResult) == 0 {
		return nil, domain.NewProviderError(ProviderName, domain.KindNoAvailability, nil)
	}

	return &domain.SearchResultSet{
		Quotes:     normalize(resp.HotelResult, req.CheckIn),
		Provider:   ProviderName,
		SearchedAt: c.clock.Now(),
	}, nil
}

// PreBook implements domain.RateClient.PreBook. A repriced or sold-out rate
// surfaces as KindRateChanged or KindNoAvailability respectively so callers
// can distinguish "refresh pricing" from "pick another hotel".
func (c *Client) PreBook(ctx context.Context, bookingCode string) (*domain.HotelRateQuote, error) {
	if bookingCode == "" {
		return nil, fmt.Errorf("%w: bookingCode is required", domain.ErrInvalidRequest)
	}

	payload := preBookRequest{BookingCode: bookingCode, PaymentMode: "Limit"}

	var resp preBookResponse
	if err := c.post(ctx, "/PreBook", payload, &resp); err != nil {
		return nil, err
	}

	switch resp.Status.Code {
	case statusSuccess:
	case statusNoAvailability:
		return nil, domain.NewProviderError(ProviderName, domain.KindNoAvailability, nil)
	case statusRateChanged:
		return nil, domain.NewProviderError(ProviderName, domain.KindRateChanged,
			errors.New(resp.Status.Description))
	default:
		return nil, domain.NewProviderError(ProviderName, domain.KindInvalidResponse,
			fmt.Errorf("status %d: %s", resp.Status.Code, resp.Status.Description))
	}

	if len(resp.HotelResult) == 0 {
		return nil, domain.NewProviderError(ProviderName, domain.KindInvalidResponse,
			errors.New("prebook succeeded without a hotel result"))
	}

	quote := normalizeHotel(resp.HotelResult[0], c.clock.Now())
	return &quote, nil
}

// Book implements domain.RateClient.Book. Booking is a financial side effect:
// a reference that already booked successfully returns the original
// confirmation instead of booking again.
func (c *Client) Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	v := &domain.Violations{}
	req.Validate(v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if confirmation := c.recordedBooking(req.Reference); confirmation != nil {
		c.log.Info().Str("reference", req.Reference).Msg("Returning existing confirmation for repeated reference")
		return confirmation, nil
	}

	names := make([]customerName, 0, len(req.Guests))
	for _, g := range req.Guests {
		names = append(names, customerName{
			Title:     g.Title,
			FirstName: g.FirstName,
			LastName:  g.LastName,
			Type:      "Adult",
		})
	}

	payload := bookRequest{
		BookingCode:       req.BookingCode,
		ClientReferenceID: req.Reference,
		CustomerDetails:   []customerDetail{{RoomIndex: 0, CustomerNames: names}},
		BookingType:       "Voucher",
		PaymentMode:       "Limit",
	}

	var resp bookResponse
	if err := c.post(ctx, "/Book", payload, &resp); err != nil {
		return nil, err
	}

	switch resp.Status.Code {
	case statusSuccess:
	case statusNoAvailability:
		return nil, domain.NewProviderError(ProviderName, domain.KindNoAvailability, nil)
	case statusRateChanged:
		return nil, domain.NewProviderError(ProviderName, domain.KindRateChanged,
			errors.New(resp.Status.Description))
	default:
		return nil, domain.NewProviderError(ProviderName, domain.KindInvalidResponse,
			fmt.Errorf("status %d: %s", resp.Status.Code, resp.Status.Description))
	}

	confirmation := &domain.BookingConfirmation{
		ConfirmationNumber: resp.ConfirmationNumber,
		Reference:          req.Reference,
		BookingCode:        req.BookingCode,
		Status:             "Confirmed",
		BookedAt:           c.clock.Now(),
	}
	c.recordBooking(confirmation)
	return confirmation, nil
}

// post sends a JSON request and decodes the JSON reply, classifying transport
// failures into provider error kinds.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+c.apiKey)

	start := c.clock.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			c.log.Warn().Str("path", path).Dur("elapsed", c.clock.Now().Sub(start)).Msg("Provider call timed out")
			return domain.NewProviderError(ProviderName, domain.KindTimeout, err)
		}
		return domain.NewProviderError(ProviderName, domain.KindInvalidResponse, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return domain.NewProviderError(ProviderName, domain.KindInvalidResponse,
			fmt.Errorf("unexpected HTTP status %d", httpResp.StatusCode))
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return domain.NewProviderError(ProviderName, domain.KindInvalidResponse, err)
	}
	return nil
}

// recordedBooking returns a previously recorded confirmation for reference.
func (c *Client) recordedBooking(reference string) *domain.BookingConfirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookings[reference]
}

// recordBooking stores a confirmation under its reference.
func (c *Client) recordBooking(confirmation *domain.BookingConfirmation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookings[confirmation.Reference] = confirmation
}

// Ensure Client implements domain.RateClient at compile time.
var _ domain.RateClient = (*Client)(nil)
