package usecase

import (
	"fmt"
	"math"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// BasePortion computes the package's static per-traveler component.
// Infants are priced at zero when the package has no infant price.
func BasePortion(pkg *domain.Package, travelers domain.TravelerCount) domain.BasePortion {
	infantPrice := 0.0
	if pkg.PriceInfant != nil {
		infantPrice = *pkg.PriceInfant
	}

	portion := domain.BasePortion{
		Adults:   float64(travelers.Adults) * pkg.PriceAdult,
		Children: float64(travelers.Children) * pkg.PriceChild,
		Infants:  float64(travelers.Infants) * infantPrice,
	}
	portion.Subtotal = portion.Adults + portion.Children + portion.Infants
	return portion
}

// ApplyDiscount resolves a discount rule against a subtotal. The amount is
// clamped so the discounted subtotal never goes negative, even when a fixed
// discount exceeds the subtotal.
func ApplyDiscount(subtotal float64, rule domain.DiscountRule) domain.DiscountApplied {
	applied := domain.DiscountApplied{
		Type:  rule.Type,
		Value: rule.Value,
	}

	switch rule.Type {
	case domain.DiscountPercentage:
		applied.Amount = roundMoney(subtotal * rule.Value / 100)
	case domain.DiscountFixedAmount:
		applied.Amount = rule.Value
	}

	if applied.Amount < 0 {
		applied.Amount = 0
	}
	if applied.Amount > subtotal {
		applied.Amount = subtotal
	}
	return applied
}

// LiveHotelLine prices one assignment from a resolved live quote. The
// provider's total takes precedence over the per-night sum since providers
// may apply non-linear pricing such as weekend surcharges. The provider
// quotes per room, so totals scale by the rooms needed.
func LiveHotelLine(a domain.HotelAssignment, hotel *domain.Hotel, quote *domain.HotelRateQuote) (domain.HotelPortionLine, []string) {
	line := domain.HotelPortionLine{
		HotelID:  hotel.ID,
		Nights:   a.Nights(),
		Currency: hotel.Currency,
		Source:   domain.RateSourceLive,
	}

	var warnings []string
	if line.Nights == 0 {
		warnings = append(warnings, zeroNightWarning(hotel.ID))
		return line, warnings
	}

	room := quote.BestRoom()
	if room == nil {
		warnings = append(warnings, fmt.Sprintf("hotel %s: quote has no rooms, priced at zero", hotel.ID))
		return line, warnings
	}

	rooms := roomsNeeded(a)
	if room.TotalAmount > 0 {
		line.Total = roundMoney(room.TotalAmount * float64(rooms))
	} else {
		var sum float64
		for _, nightly := range room.NightlyRates {
			sum += nightly.Amount
		}
		line.Total = roundMoney(sum * float64(rooms))
	}
	if room.Currency != "" {
		line.Currency = room.Currency
	}
	return line, warnings
}

// StaticHotelLine prices one assignment from the hotel's static base price,
// used when live pricing is unavailable or not requested.
func StaticHotelLine(a domain.HotelAssignment, hotel *domain.Hotel) (domain.HotelPortionLine, []string) {
	line := domain.HotelPortionLine{
		HotelID:  hotel.ID,
		Nights:   a.Nights(),
		Currency: hotel.Currency,
		Source:   domain.RateSourceStatic,
	}

	var warnings []string
	if line.Nights == 0 {
		warnings = append(warnings, zeroNightWarning(hotel.ID))
		return line, warnings
	}

	line.Total = roundMoney(hotel.BasePrice * float64(line.Nights) * float64(roomsNeeded(a)))
	return line, warnings
}

// Compose assembles the final breakdown from its parts. Hotel lines priced in
// a currency other than the package currency are reported as warnings; no
// implicit conversion is performed.
func Compose(currency string, travelers domain.TravelerCount, base domain.BasePortion, discount domain.DiscountApplied, hotels []domain.HotelPortionLine, fees []domain.FeeLine, warnings []string) domain.PriceBreakdown {
	total := base.Subtotal - discount.Amount

	for _, h := range hotels {
		total += h.Total
		if h.Currency != "" && currency != "" && h.Currency != currency {
			warnings = append(warnings, fmt.Sprintf("hotel %s is priced in %s but the package currency is %s; no conversion applied", h.HotelID, h.Currency, currency))
		}
	}
	for _, f := range fees {
		total += f.Amount
	}

	persons := travelers.Total()
	if persons < 1 {
		persons = 1
	}

	return domain.PriceBreakdown{
		PackagePortion: base,
		Discount:       discount,
		HotelPortion:   hotels,
		TaxesAndFees:   fees,
		GrandTotal:     roundMoney(total),
		Currency:       currency,
		PricePerPerson: roundMoney(total / float64(persons)),
		Warnings:       warnings,
	}
}

func roomsNeeded(a domain.HotelAssignment) int {
	if a.RoomsNeeded < 1 {
		return 1
	}
	return a.RoomsNeeded
}

func zeroNightWarning(hotelID string) string {
	return fmt.Sprintf("hotel %s: same-day check-in and check-out, stay priced at zero", hotelID)
}

// roundMoney rounds to two decimal places to keep float composition stable.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
