package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/cache"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/usecase"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/test/mock"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/test/testutil"
)

// newPricingService wires a pricing service against the seeded catalog with
// an in-memory rate cache, mirroring production wiring.
func newPricingService(rates domain.RateClient) usecase.PricingService {
	clock := timeutil.NewRealClock()
	return usecase.NewPricingService(
		SeededStore(),
		rates,
		cache.New(cache.NewMemoryStore(clock)),
		clock,
		nil,
		nil,
	)
}

func futureRange(t *testing.T, startDays, nights int) *domain.DateRange {
	t.Helper()
	return testutil.DateRange(t, FutureDate(startDays), FutureDate(startDays+nights))
}

// TestPricing_LiveRates_FullFlow tests a live pricing run end to end through
// the use case: both hotels resolve live quotes and contribute to the total.
func TestPricing_LiveRates_FullFlow(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo")
	svc := newPricingService(rates)

	// Act
	result, err := svc.CalculateDetailedPricing(context.Background(), usecase.PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2, Children: 1},
		DateRange: futureRange(t, 30, 4),
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Degraded())
	assert.True(t, result.Metadata.LivePricing)
	assert.Equal(t, 2, result.Metadata.HotelsQueried)
	assert.Equal(t, 0, result.Metadata.HotelsFailed)

	// Base: 2*500 + 1*250 = 1250, 10% discount = 125.
	assert.InDelta(t, 1250.0, result.Breakdown.PackagePortion.Subtotal, 0.001)
	assert.InDelta(t, 125.0, result.Breakdown.Discount.Amount, 0.001)

	// The mock quotes 300 per hotel assignment.
	require.Len(t, result.Breakdown.HotelPortion, 2)
	for _, line := range result.Breakdown.HotelPortion {
		assert.Equal(t, domain.RateSourceLive, line.Source)
		assert.InDelta(t, 300.0, line.Total, 0.001)
	}

	assert.InDelta(t, 1725.0, result.Breakdown.GrandTotal, 0.001)
	assert.InDelta(t, 575.0, result.Breakdown.PricePerPerson, 0.001)

	// One search per hotel assignment.
	assert.Equal(t, 2, rates.SearchCallCount())
}

// TestPricing_StaticFallback_WhenProviderFails tests that provider failures
// degrade to static base prices instead of failing the request.
func TestPricing_StaticFallback_WhenProviderFails(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo").
		WithSearchError(domain.NewProviderError("mock-tbo", domain.KindTimeout, errors.New("deadline exceeded")))
	svc := newPricingService(rates)

	// Act
	result, err := svc.CalculateDetailedPricing(context.Background(), usecase.PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2, Children: 1},
		DateRange: futureRange(t, 30, 4),
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Degraded())
	assert.Equal(t, 2, result.Metadata.HotelsFailed)
	require.Len(t, result.Errors, 2)
	for _, he := range result.Errors {
		assert.Equal(t, domain.KindTimeout, he.Kind)
	}

	// Static: htl-1 100*2 nights + htl-2 80*2 nights = 360.
	require.Len(t, result.Breakdown.HotelPortion, 2)
	for _, line := range result.Breakdown.HotelPortion {
		assert.Equal(t, domain.RateSourceStatic, line.Source)
	}
	assert.InDelta(t, 1485.0, result.Breakdown.GrandTotal, 0.001)
	assert.NotEmpty(t, result.Breakdown.Warnings)
}

// TestPricing_CacheHit_SkipsProvider tests that a repeated identical request
// is served from the rate cache without another provider search.
func TestPricing_CacheHit_SkipsProvider(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo")
	svc := newPricingService(rates)

	req := usecase.PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2, Children: 1},
		DateRange: futureRange(t, 30, 4),
	}

	// Act
	first, err := svc.CalculateDetailedPricing(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.CalculateDetailedPricing(context.Background(), req)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, rates.SearchCallCount(), "second run should not hit the provider")
	assert.Equal(t, 0, first.Metadata.HotelsFromCache)
	assert.Equal(t, 2, second.Metadata.HotelsFromCache)
	assert.InDelta(t, first.Breakdown.GrandTotal, second.Breakdown.GrandTotal, 0.001)
}

// TestPricing_QuickEstimate_StaticOnly tests that estimates never touch the
// provider and use static base prices.
func TestPricing_QuickEstimate_StaticOnly(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo")
	svc := newPricingService(rates)

	// Act
	result, err := svc.GetQuickEstimate(context.Background(), "pkg-bali", domain.TravelerCount{Adults: 2, Children: 1})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Metadata.LivePricing)
	assert.Equal(t, 0, rates.SearchCallCount())
	assert.InDelta(t, 1485.0, result.Breakdown.GrandTotal, 0.001)
	assert.InDelta(t, 495.0, result.Breakdown.PricePerPerson, 0.001)
}

// TestPricing_PastDates_Rejected tests that a start date in the past is
// rejected with a validation error before any provider call.
func TestPricing_PastDates_Rejected(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo")
	svc := newPricingService(rates)

	past := testutil.DateRange(t,
		time.Now().AddDate(0, 0, -10).Format("2006-01-02"),
		time.Now().AddDate(0, 0, -6).Format("2006-01-02"),
	)

	// Act
	_, err := svc.CalculateDetailedPricing(context.Background(), usecase.PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2},
		DateRange: past,
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.ToMap(), "dateRange.startDate")
	assert.Equal(t, 0, rates.SearchCallCount())
}

// TestPricing_UnknownPackage tests the not-found path.
func TestPricing_UnknownPackage(t *testing.T) {
	svc := newPricingService(mock.NewRateClient("mock-tbo"))

	_, err := svc.GetQuickEstimate(context.Background(), "pkg-nope", domain.TravelerCount{Adults: 1})

	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

// TestCompare_PicksCheapestPerPerson tests that comparison marks the
// configuration with the lowest per-person price as best.
func TestCompare_PicksCheapestPerPerson(t *testing.T) {
	// Arrange
	svc := newPricingService(mock.NewRateClient("mock-tbo"))

	configs := []domain.Configuration{
		{Label: "couple", Travelers: domain.TravelerCount{Adults: 2}},
		{Label: "family", Travelers: domain.TravelerCount{Adults: 2, Children: 2}},
	}

	// Act
	entries, err := svc.CompareConfigurations(context.Background(), "pkg-bali", configs, futureRange(t, 30, 4))

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// couple: (1000 - 100 + 600) / 2 = 750 per person
	// family: (1500 - 150 + 600) / 4 = 487.5 per person
	assert.False(t, entries[0].Best)
	assert.True(t, entries[1].Best)
	assert.InDelta(t, 750.0, entries[0].Result.Breakdown.PricePerPerson, 0.001)
	assert.InDelta(t, 487.5, entries[1].Result.Breakdown.PricePerPerson, 0.001)
}

// TestCompare_PartialFailure_OtherEntriesSurvive tests that one invalid
// configuration does not fail the whole comparison.
func TestCompare_PartialFailure_OtherEntriesSurvive(t *testing.T) {
	svc := newPricingService(mock.NewRateClient("mock-tbo"))

	configs := []domain.Configuration{
		{Label: "valid", Travelers: domain.TravelerCount{Adults: 2}},
		{Label: "no adults", Travelers: domain.TravelerCount{Children: 2}},
	}

	entries, err := svc.CompareConfigurations(context.Background(), "pkg-bali", configs, futureRange(t, 30, 4))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotNil(t, entries[0].Result)
	assert.True(t, entries[0].Best)
	assert.Nil(t, entries[1].Result)
	assert.NotEmpty(t, entries[1].Error)
}

// TestBooking_FullFlow tests prebook then book against the mock provider.
func TestBooking_FullFlow(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo")
	bookings := usecase.NewBookingService(rates, nil)

	// Act
	quote, err := bookings.PreBook(context.Background(), "mock-tbo-BC-1")
	require.NoError(t, err)
	require.True(t, quote.Available)

	conf, err := bookings.Book(context.Background(), domain.BookingRequest{
		BookingCode: "mock-tbo-BC-1",
		Guests: []domain.Guest{
			{Title: "Mr", FirstName: "Amir", LastName: "Haddad", IsLead: true},
		},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", conf.Status)
	assert.NotEmpty(t, conf.ConfirmationNumber)
	assert.NotEmpty(t, conf.Reference, "reference should be generated when absent")
	assert.Equal(t, 1, rates.BookCallCount())
}
