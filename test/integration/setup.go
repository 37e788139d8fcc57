// Package integration provides helpers and integration tests for the package
// pricing engine. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, the rate cache, and the
// mock rate provider.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/package-pricing/package-pricing-and-aggregation-engine/internal/adapter/http"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/cache"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/storage"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *storage.MemoryStore
	Cache *cache.RateCache
}

// NewTestServer creates a test server wired like production: seeded catalog,
// in-memory rate cache, and the given rate client. A nil rates client means
// static-only pricing.
func NewTestServer(rates domain.RateClient) *TestServer {
	return NewTestServerWithConfig(rates, nil)
}

// NewTestServerWithConfig creates a test server with custom pricing config.
func NewTestServerWithConfig(rates domain.RateClient, cfg *usecase.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := timeutil.NewRealClock()
	store := SeededStore()
	rateCache := cache.New(cache.NewMemoryStore(clock))

	pricing := usecase.NewPricingService(store, rates, rateCache, clock, nil, cfg)
	bookings := usecase.NewBookingService(rates, nil)

	httpAdapter.RegisterRoutes(e,
		httpAdapter.NewPricingHandler(pricing),
		httpAdapter.NewBookingHandler(bookings),
	)

	return &TestServer{
		Echo:  e,
		Store: store,
		Cache: rateCache,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PricingRequest posts a detailed pricing request.
func (ts *TestServer) PricingRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/pricing/detailed",
		Body:   body,
	})
}

// EstimateRequest posts a quick estimate request.
func (ts *TestServer) EstimateRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/pricing/estimate",
		Body:   body,
	})
}

// CompareRequest posts a configuration comparison request.
func (ts *TestServer) CompareRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/pricing/compare",
		Body:   body,
	})
}

// BookRequest posts a booking request.
func (ts *TestServer) BookRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePricingResponse parses the response body as a pricing response DTO.
func (r *Response) ParsePricingResponse() (*httpAdapter.PricingResponseDTO, error) {
	var resp httpAdapter.PricingResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SeededStore builds a catalog store with a two-hotel Bali package and a
// single-hotel Dubai package.
func SeededStore() *storage.MemoryStore {
	store := storage.NewMemoryStore()

	store.SeedPackage(&domain.Package{
		ID:           "pkg-bali",
		Name:         "Bali Escape",
		Currency:     "USD",
		DurationDays: 5,
		PriceAdult:   500,
		PriceChild:   250,
		Discount:     domain.DiscountRule{Type: domain.DiscountPercentage, Value: 10},
		Assignments: []domain.HotelAssignment{
			{HotelID: "htl-1", CheckInDay: 0, CheckOutDay: 2, RoomTypeCode: "DBL", RoomsNeeded: 1, GuestsPerRoom: 2},
			{HotelID: "htl-2", CheckInDay: 2, CheckOutDay: 4, RoomTypeCode: "DBL", RoomsNeeded: 1, GuestsPerRoom: 2},
		},
	})
	store.SeedPackage(&domain.Package{
		ID:           "pkg-dubai",
		Name:         "Dubai City Break",
		Currency:     "USD",
		DurationDays: 4,
		PriceAdult:   650,
		PriceChild:   400,
		Discount:     domain.DiscountRule{Type: domain.DiscountNone},
		Assignments: []domain.HotelAssignment{
			{HotelID: "htl-3", CheckInDay: 0, CheckOutDay: 3, RoomTypeCode: "TWN", RoomsNeeded: 1, GuestsPerRoom: 2},
		},
	})

	store.SeedHotel(&domain.Hotel{ID: "htl-1", Code: "HTL-001", Name: "Ubud Garden Retreat", BasePrice: 100, Currency: "USD"})
	store.SeedHotel(&domain.Hotel{ID: "htl-2", Code: "HTL-002", Name: "Seminyak Beach Resort", BasePrice: 80, Currency: "USD"})
	store.SeedHotel(&domain.Hotel{ID: "htl-3", Code: "HTL-003", Name: "Marina View Hotel", BasePrice: 140, Currency: "USD"})

	return store
}

// FutureDate returns a date string the given number of days in the future
// in YYYY-MM-DD format. Pricing validates dates against the real clock, so
// request bodies must use future dates.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// DefaultPricingBody returns a valid detailed pricing request body for the
// seeded Bali package.
func DefaultPricingBody() map[string]interface{} {
	return map[string]interface{}{
		"packageId": "pkg-bali",
		"travelers": map[string]int{"adults": 2, "children": 1},
		"dateRange": map[string]string{
			"startDate": FutureDate(30),
			"endDate":   FutureDate(34),
		},
	}
}
