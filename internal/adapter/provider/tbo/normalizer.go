package tbo

import (
	"strings"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// ProviderName is the unique identifier for the TBO inventory provider.
const ProviderName = "tbo"

// normalize converts a slice of TBO hotel results into domain quotes. The
// quote's HotelID carries the provider hotel code; the orchestrator remaps it
// to the hotel document ID.
func normalize(results []hotelResult, checkIn time.Time) []domain.HotelRateQuote {
	quotes := make([]domain.HotelRateQuote, 0, len(results))
	for _, hr := range results {
		quotes = append(quotes, normalizeHotel(hr, checkIn))
	}
	return quotes
}

// normalizeHotel converts one hotel's availability block.
func normalizeHotel(hr hotelResult, checkIn time.Time) domain.HotelRateQuote {
	rooms := make([]domain.RoomOption, 0, len(hr.Rooms))
	for _, room := range hr.Rooms {
		rooms = append(rooms, normalizeRoom(room, hr.Currency, checkIn))
	}

	return domain.HotelRateQuote{
		HotelID:   hr.HotelCode,
		Available: len(rooms) > 0,
		Rooms:     rooms,
	}
}

// normalizeRoom converts one room option, flattening the provider's day-rate
// matrix into per-night rates.
func normalizeRoom(room roomResult, currency string, checkIn time.Time) domain.RoomOption {
	var nightly []domain.NightlyRate
	if len(room.DayRates) > 0 {
		nightly = make([]domain.NightlyRate, 0, len(room.DayRates[0]))
		for i, rate := range room.DayRates[0] {
			nightly = append(nightly, domain.NightlyRate{
				Date:     checkIn.AddDate(0, 0, i),
				Amount:   rate.BasePrice,
				Currency: currency,
			})
		}
	}

	return domain.RoomOption{
		RoomTypeCode:       roomTypeCode(room),
		NightlyRates:       nightly,
		TotalAmount:        room.TotalFare,
		Currency:           currency,
		BoardType:          room.MealType,
		CancellationPolicy: cancellationSummary(room.CancelPolicies),
		IsRefundable:       room.IsRefundable,
		BookingCode:        room.BookingCode,
	}
}

// roomTypeCode prefers the explicit code, falling back to the first room name.
func roomTypeCode(room roomResult) string {
	if room.RoomTypeCode != "" {
		return room.RoomTypeCode
	}
	if len(room.Name) > 0 {
		return room.Name[0]
	}
	return ""
}

// cancellationSummary renders the provider's charge windows as one line.
func cancellationSummary(policies []cancelPolicy) string {
	if len(policies) == 0 {
		return ""
	}
	parts := make([]string, 0, len(policies))
	for _, p := range policies {
		parts = append(parts, p.FromDate+" "+strings.ToLower(p.ChargeType))
	}
	return strings.Join(parts, "; ")
}
