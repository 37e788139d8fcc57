package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/cache"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/storage"
)

const testToday = "2026-09-01T12:00:00Z"

// testPackage is a 5-day package with two consecutive hotel stays:
// htl-1 for days 0-2 and htl-2 for days 2-4.
func testPackage() *domain.Package {
	return &domain.Package{
		ID:           "pkg-bali",
		Name:         "Bali Getaway",
		Currency:     "USD",
		DurationDays: 5,
		PriceAdult:   500,
		PriceChild:   250,
		Discount:     domain.DiscountRule{Type: domain.DiscountPercentage, Value: 10},
		Assignments: []domain.HotelAssignment{
			{HotelID: "htl-1", CheckInDay: 0, CheckOutDay: 2, RoomTypeCode: "DBL", RoomsNeeded: 1, GuestsPerRoom: 2},
			{HotelID: "htl-2", CheckInDay: 2, CheckOutDay: 4, RoomTypeCode: "DBL", RoomsNeeded: 1, GuestsPerRoom: 2},
		},
	}
}

func seededStore() *storage.MemoryStore {
	store := storage.NewMemoryStore()
	store.SeedPackage(testPackage())
	store.SeedHotel(&domain.Hotel{ID: "htl-1", Code: "HTL-001", Name: "Beach Resort", BasePrice: 100, Currency: "USD"})
	store.SeedHotel(&domain.Hotel{ID: "htl-2", Code: "HTL-002", Name: "Jungle Lodge", BasePrice: 80, Currency: "USD"})
	return store
}

func newTestService(rates domain.RateClient) PricingService {
	clock := timeutil.NewMockClockFromString(testToday)
	rateCache := cache.New(cache.NewMemoryStore(clock))
	return NewPricingService(seededStore(), rates, rateCache, clock, logger.Nop(), nil)
}

func testDateRange() *domain.DateRange {
	return &domain.DateRange{
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	}
}

// liveResults builds one available quote per requested hotel code, each with
// a single room priced at the given total.
func liveResults(req domain.HotelSearchRequest, total float64) *domain.SearchResultSet {
	quotes := make([]domain.HotelRateQuote, 0, len(req.HotelCodes))
	for _, code := range req.HotelCodes {
		quotes = append(quotes, domain.HotelRateQuote{
			HotelID:   code,
			Available: true,
			Rooms: []domain.RoomOption{
				{RoomTypeCode: "DBL", TotalAmount: total, Currency: "USD", BookingCode: code + "-BC"},
			},
		})
	}
	return &domain.SearchResultSet{Quotes: quotes, Provider: "tbo", SearchedAt: time.Now()}
}

func TestCalculateDetailedPricing_PackageNotFound(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.CalculateDetailedPricing(context.Background(), PricingRequest{
		PackageID: "pkg-missing",
		Travelers: domain.TravelerCount{Adults: 2},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestCalculateDetailedPricing_InvalidInput(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.CalculateDetailedPricing(context.Background(), PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 0},
		DateRange: &domain.DateRange{
			StartDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), // yesterday
			EndDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	violations := invalid.ToMap()
	assert.Contains(t, violations, "travelers.adults", "all violations reported at once")
	assert.Contains(t, violations, "dateRange.startDate")
}

func TestCalculateDetailedPricing_StaticWithoutDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Search expectation: a static request must never hit the provider.
	rates := domain.NewMockRateClient(ctrl)
	svc := newTestService(rates)

	result, err := svc.CalculateDetailedPricing(context.Background(), PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2, Children: 1},
	})

	require.NoError(t, err)
	assert.False(t, result.Metadata.LivePricing)
	assert.Empty(t, result.Errors)

	require.Len(t, result.Breakdown.HotelPortion, 2)
	assert.Equal(t, 200.0, result.Breakdown.HotelPortion[0].Total, "htl-1: 100 x 2 nights")
	assert.Equal(t, 160.0, result.Breakdown.HotelPortion[1].Total, "htl-2: 80 x 2 nights")
	assert.Equal(t, domain.RateSourceStatic, result.Breakdown.HotelPortion[0].Source)

	assert.Equal(t, 1485.0, result.Breakdown.GrandTotal, "1125 package + 360 hotels")
	assert.Equal(t, 495.0, result.Breakdown.PricePerPerson)
}

func TestCalculateDetailedPricing_LiveQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := domain.NewMockRateClient(ctrl)
	rates.EXPECT().Name().Return("tbo").AnyTimes()
	rates.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.HotelSearchRequest) (*domain.SearchResultSet, error) {
			return liveResults(req, 300), nil
		},
	).Times(2)

	svc := newTestService(rates)

	result, err := svc.CalculateDetailedPricing(context.Background(), PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2, Children: 1},
		DateRange: testDateRange(),
	})

	require.NoError(t, err)
	assert.True(t, result.Metadata.LivePricing)
	assert.Equal(t, 2, result.Metadata.HotelsQueried)
	assert.Zero(t, result.Metadata.HotelsFailed)
	assert.Empty(t, result.Errors)
	assert.False(t, result.Degraded())

	require.Len(t, result.Breakdown.HotelPortion, 2)
	for _, line := range result.Breakdown.HotelPortion {
		assert.Equal(t, 300.0, line.Total)
		assert.Equal(t, domain.RateSourceLive, line.Source)
	}
	assert.Equal(t, 1725.0, result.Breakdown.GrandTotal, "1125 package + 600 hotels")

	// Quotes are rekeyed from provider hotel codes to hotel document IDs.
	require.Contains(t, result.Hotels, "htl-1")
	require.Contains(t, result.Hotels, "htl-2")
	assert.Equal(t, "htl-1", result.Hotels["htl-1"].HotelID)
}

func TestCalculateDetailedPricing_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := domain.NewMockRateClient(ctrl)
	rates.EXPECT().Name().Return("tbo").AnyTimes()
	rates.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.HotelSearchRequest) (*domain.SearchResultSet, error) {
			if req.HotelCodes[0] == "HTL-001" {
				return nil, domain.NewProviderError("tbo", domain.KindTimeout, context.DeadlineExceeded)
			}
			return liveResults(req, 300), nil
		},
	).Times(2)

	svc := newTestService(rates)

	result, err := svc.CalculateDetailedPricing(context.Background(), PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2, Children: 1},
		DateRange: testDateRange(),
	})

	require.NoError(t, err, "one failed hotel must not abort pricing")
	assert.True(t, result.Degraded())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "htl-1", result.Errors[0].HotelID)
	assert.Equal(t, domain.KindTimeout, result.Errors[0].Kind)
	assert.Equal(t, 1, result.Metadata.HotelsFailed)

	// The failed hotel falls back to its static base price.
	require.Len(t, result.Breakdown.HotelPortion, 2)
	assert.Equal(t, 200.0, result.Breakdown.HotelPortion[0].Total, "htl-1 static: 100 x 2 nights")
	assert.Equal(t, domain.RateSourceStatic, result.Breakdown.HotelPortion[0].Source)
	assert.Equal(t, 300.0, result.Breakdown.HotelPortion[1].Total)
	assert.Equal(t, domain.RateSourceLive, result.Breakdown.HotelPortion[1].Source)

	assert.Equal(t, 1625.0, result.Breakdown.GrandTotal)

	assert.Contains(t, result.Breakdown.Warnings,
		"hotel htl-1: live rates unavailable, using static base price",
		"degradation must be visible as a warning")
}

func TestCalculateDetailedPricing_SecondRequestServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := domain.NewMockRateClient(ctrl)
	rates.EXPECT().Name().Return("tbo").AnyTimes()
	rates.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.HotelSearchRequest) (*domain.SearchResultSet, error) {
			return liveResults(req, 300), nil
		},
	).Times(2) // once per hotel on the first request only

	svc := newTestService(rates)
	req := PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 2},
		DateRange: testDateRange(),
	}

	first, err := svc.CalculateDetailedPricing(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, first.Metadata.HotelsFromCache)

	second, err := svc.CalculateDetailedPricing(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Metadata.HotelsFromCache)
	assert.Equal(t, first.Breakdown.GrandTotal, second.Breakdown.GrandTotal)
}

func TestGetQuickEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the quick estimate must never call the provider.
	rates := domain.NewMockRateClient(ctrl)
	svc := newTestService(rates)

	result, err := svc.GetQuickEstimate(context.Background(), "pkg-bali", domain.TravelerCount{Adults: 2, Children: 1})

	require.NoError(t, err)
	assert.False(t, result.Metadata.LivePricing)
	assert.Equal(t, 1485.0, result.Breakdown.GrandTotal)
}

func TestGetQuickEstimate_InvalidTravelers(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.GetQuickEstimate(context.Background(), "pkg-bali", domain.TravelerCount{Adults: 0})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestUpdatePricing_MatchesDetailedPricing(t *testing.T) {
	svc := newTestService(nil)
	req := PricingRequest{
		PackageID: "pkg-bali",
		Travelers: domain.TravelerCount{Adults: 4},
	}

	detailed, err := svc.CalculateDetailedPricing(context.Background(), req)
	require.NoError(t, err)

	updated, err := svc.UpdatePricing(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, detailed.Breakdown, updated.Breakdown)
}

func TestCompareConfigurations(t *testing.T) {
	svc := newTestService(nil)

	configs := []domain.Configuration{
		{Label: "family", Travelers: domain.TravelerCount{Adults: 2, Children: 1}},
		{Label: "group", Travelers: domain.TravelerCount{Adults: 4}},
		{Label: "broken", Travelers: domain.TravelerCount{Adults: 0}},
	}

	entries, err := svc.CompareConfigurations(context.Background(), "pkg-bali", configs, nil)

	require.NoError(t, err)
	require.Len(t, entries, 3)

	// family: 1485 / 3 = 495 per person; group: 2160 / 4 = 540.
	assert.True(t, entries[0].Best)
	assert.Equal(t, 495.0, entries[0].Result.Breakdown.PricePerPerson)
	assert.False(t, entries[1].Best)
	assert.Equal(t, 540.0, entries[1].Result.Breakdown.PricePerPerson)

	// The invalid configuration is reported but never competitive.
	assert.False(t, entries[2].Best)
	assert.Nil(t, entries[2].Result)
	assert.NotEmpty(t, entries[2].Error)
}

func TestCompareConfigurations_TooMany(t *testing.T) {
	svc := newTestService(nil)

	configs := make([]domain.Configuration, 6)
	for i := range configs {
		configs[i] = domain.Configuration{Travelers: domain.TravelerCount{Adults: 1}}
	}

	entries, err := svc.CompareConfigurations(context.Background(), "pkg-bali", configs, nil)

	require.Error(t, err)
	assert.Nil(t, entries, "rejected before any pricing is attempted")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.ToMap()["configurations"], "maximum 5")
}

func TestCompareConfigurations_Empty(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.CompareConfigurations(context.Background(), "pkg-bali", nil, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
