package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// TestDetailedPricingRequest_Validate tests shape validation of the detailed
// pricing request.
func TestDetailedPricingRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   DetailedPricingRequest
		wantErr   bool
		errFields []string
	}{
		{
			name: "valid minimal request",
			request: DetailedPricingRequest{
				PackageID: "pkg-bali",
				Travelers: TravelersDTO{Adults: 2},
			},
			wantErr: false,
		},
		{
			name: "valid request with all options",
			request: DetailedPricingRequest{
				PackageID:   "pkg-bali",
				Travelers:   TravelersDTO{Adults: 2, Children: 1, Infants: 1},
				DateRange:   &DateRangeDTO{StartDate: "2026-10-01", EndDate: "2026-10-05"},
				Currency:    "USD",
				Nationality: "AE",
			},
			wantErr: false,
		},
		{
			name: "multiple errors collected",
			request: DetailedPricingRequest{
				Travelers: TravelersDTO{Adults: 0, Children: -1},
			},
			wantErr:   true,
			errFields: []string{"packageId", "travelers.adults", "travelers.children"},
		},
		{
			name: "malformed dates",
			request: DetailedPricingRequest{
				PackageID: "pkg-bali",
				Travelers: TravelersDTO{Adults: 2},
				DateRange: &DateRangeDTO{StartDate: "01/10/2026", EndDate: "tomorrow"},
			},
			wantErr:   true,
			errFields: []string{"dateRange.startDate", "dateRange.endDate"},
		},
		{
			name: "impossible calendar date",
			request: DetailedPricingRequest{
				PackageID: "pkg-bali",
				Travelers: TravelersDTO{Adults: 2},
				DateRange: &DateRangeDTO{StartDate: "2026-02-30", EndDate: "2026-03-05"},
			},
			wantErr:   true,
			errFields: []string{"dateRange.startDate"},
		},
		{
			name: "start after end",
			request: DetailedPricingRequest{
				PackageID: "pkg-bali",
				Travelers: TravelersDTO{Adults: 2},
				DateRange: &DateRangeDTO{StartDate: "2026-10-05", EndDate: "2026-10-01"},
			},
			wantErr:   true,
			errFields: []string{"dateRange"},
		},
		{
			name: "invalid currency",
			request: DetailedPricingRequest{
				PackageID: "pkg-bali",
				Travelers: TravelersDTO{Adults: 2},
				Currency:  "US",
			},
			wantErr:   true,
			errFields: []string{"currency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs *ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			details := validationErrs.ToMap()
			for _, field := range tt.errFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

// TestDetailedPricingRequest_CurrencyNormalized ensures lowercase currency
// codes are accepted and uppercased in place.
func TestDetailedPricingRequest_CurrencyNormalized(t *testing.T) {
	req := DetailedPricingRequest{
		PackageID: "pkg-bali",
		Travelers: TravelersDTO{Adults: 2},
		Currency:  "usd",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "USD", req.Currency)
}

func TestCompareRequest_Validate(t *testing.T) {
	valid := ConfigurationDTO{Travelers: TravelersDTO{Adults: 2}}

	tests := []struct {
		name      string
		request   CompareRequest
		wantErr   bool
		errFields []string
	}{
		{
			name: "valid request",
			request: CompareRequest{
				PackageID:      "pkg-bali",
				Configurations: []ConfigurationDTO{valid, {Travelers: TravelersDTO{Adults: 1, Children: 2}}},
			},
			wantErr: false,
		},
		{
			name:      "no configurations",
			request:   CompareRequest{PackageID: "pkg-bali"},
			wantErr:   true,
			errFields: []string{"configurations"},
		},
		{
			name: "too many configurations",
			request: CompareRequest{
				PackageID:      "pkg-bali",
				Configurations: []ConfigurationDTO{valid, valid, valid, valid, valid, valid},
			},
			wantErr:   true,
			errFields: []string{"configurations"},
		},
		{
			name: "invalid nested configuration",
			request: CompareRequest{
				PackageID: "pkg-bali",
				Configurations: []ConfigurationDTO{
					valid,
					{Travelers: TravelersDTO{Adults: 0}},
				},
			},
			wantErr:   true,
			errFields: []string{"configurations[1].travelers.adults"},
		},
		{
			name: "invalid per-configuration date range",
			request: CompareRequest{
				PackageID: "pkg-bali",
				Configurations: []ConfigurationDTO{
					{
						Travelers: TravelersDTO{Adults: 2},
						DateRange: &DateRangeDTO{StartDate: "2026-10-01", EndDate: "bad"},
					},
				},
			},
			wantErr:   true,
			errFields: []string{"configurations[0].dateRange.endDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs *ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			details := validationErrs.ToMap()
			for _, field := range tt.errFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestBookRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   BookRequest
		wantErr   bool
		errFields []string
	}{
		{
			name: "valid request",
			request: BookRequest{
				BookingCode: "BC-123",
				Guests: []GuestDTO{
					{Title: "Mr", FirstName: "Omar", LastName: "Haddad", IsLead: true},
					{Title: "Ms", FirstName: "Lina", LastName: "Haddad"},
				},
			},
			wantErr: false,
		},
		{
			name:      "missing everything",
			request:   BookRequest{},
			wantErr:   true,
			errFields: []string{"bookingCode", "guests"},
		},
		{
			name: "guest without names",
			request: BookRequest{
				BookingCode: "BC-123",
				Guests:      []GuestDTO{{IsLead: true}},
			},
			wantErr:   true,
			errFields: []string{"guests[0].firstName", "guests[0].lastName"},
		},
		{
			name: "no lead guest",
			request: BookRequest{
				BookingCode: "BC-123",
				Guests:      []GuestDTO{{FirstName: "Omar", LastName: "Haddad"}},
			},
			wantErr:   true,
			errFields: []string{"guests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs *ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			details := validationErrs.ToMap()
			for _, field := range tt.errFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

// =====================================================
// Converter Tests
// =====================================================

func TestToPricingRequest(t *testing.T) {
	req := &DetailedPricingRequest{
		PackageID:   "pkg-bali",
		Travelers:   TravelersDTO{Adults: 2, Children: 1, Infants: 1},
		DateRange:   &DateRangeDTO{StartDate: "2026-10-01", EndDate: "2026-10-05"},
		Currency:    "USD",
		Nationality: "ID",
	}

	out := ToPricingRequest(req)

	assert.Equal(t, "pkg-bali", out.PackageID)
	assert.Equal(t, domain.TravelerCount{Adults: 2, Children: 1, Infants: 1}, out.Travelers)
	require.NotNil(t, out.DateRange)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), out.DateRange.StartDate)
	assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), out.DateRange.EndDate)
	assert.Equal(t, "USD", out.Currency)
	assert.Equal(t, "ID", out.Nationality)
}

func TestToPricingRequest_NoDateRange(t *testing.T) {
	req := &DetailedPricingRequest{
		PackageID: "pkg-bali",
		Travelers: TravelersDTO{Adults: 2},
	}

	out := ToPricingRequest(req)

	assert.Nil(t, out.DateRange)
}

func TestToConfigurations(t *testing.T) {
	dtos := []ConfigurationDTO{
		{
			Label:     "family",
			Travelers: TravelersDTO{Adults: 2, Children: 2},
			DateRange: &DateRangeDTO{StartDate: "2026-10-01", EndDate: "2026-10-05"},
		},
		{Travelers: TravelersDTO{Adults: 1}},
	}

	configs := ToConfigurations(dtos)

	require.Len(t, configs, 2)
	assert.Equal(t, "family", configs[0].Label)
	assert.Equal(t, domain.TravelerCount{Adults: 2, Children: 2}, configs[0].Travelers)
	require.NotNil(t, configs[0].DateRange)
	assert.Nil(t, configs[1].DateRange)
}

func TestToBookingRequest(t *testing.T) {
	req := &BookRequest{
		BookingCode: "BC-123",
		Reference:   "ref-001",
		Guests: []GuestDTO{
			{Title: "Mr", FirstName: "Omar", LastName: "Haddad", IsLead: true},
		},
	}

	out := ToBookingRequest(req)

	assert.Equal(t, "BC-123", out.BookingCode)
	assert.Equal(t, "ref-001", out.Reference)
	require.Len(t, out.Guests, 1)
	assert.Equal(t, "Omar", out.Guests[0].FirstName)
	assert.True(t, out.Guests[0].IsLead)
}
