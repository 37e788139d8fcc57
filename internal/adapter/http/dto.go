package http

import (
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// PricingResponseDTO is the data transfer object for pricing responses.
// It matches the expected API output format with snake_case fields.
type PricingResponseDTO struct {
	PackageID string                   `json:"package_id"`
	Breakdown BreakdownDTO             `json:"breakdown"`
	Hotels    map[string]HotelQuoteDTO `json:"hotels,omitempty"`
	Errors    []HotelErrorDTO          `json:"errors,omitempty"`
	Degraded  bool                     `json:"degraded"`
	Metadata  MetadataDTO              `json:"metadata"`
}

// BreakdownDTO represents a composed price breakdown.
type BreakdownDTO struct {
	PackagePortion BasePortionDTO `json:"package_portion"`
	Discount       DiscountDTO    `json:"discount"`
	HotelPortion   []HotelLineDTO `json:"hotel_portion"`
	TaxesAndFees   []FeeLineDTO   `json:"taxes_and_fees"`
	GrandTotal     float64        `json:"grand_total"`
	Currency       string         `json:"currency"`
	PricePerPerson float64        `json:"price_per_person"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// BasePortionDTO represents the static per-traveler component.
type BasePortionDTO struct {
	Adults   float64 `json:"adults"`
	Children float64 `json:"children"`
	Infants  float64 `json:"infants"`
	Subtotal float64 `json:"subtotal"`
}

// DiscountDTO represents the applied discount.
type DiscountDTO struct {
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Amount float64 `json:"amount"`
}

// HotelLineDTO represents one hotel's contribution to the breakdown.
type HotelLineDTO struct {
	HotelID  string  `json:"hotel_id"`
	Nights   int     `json:"nights"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	Source   string  `json:"source"`
}

// FeeLineDTO represents a named tax or fee.
type FeeLineDTO struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// HotelErrorDTO represents a per-hotel provider failure.
type HotelErrorDTO struct {
	HotelID string `json:"hotel_id"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// MetadataDTO contains metadata about the pricing execution.
type MetadataDTO struct {
	LivePricing     bool  `json:"live_pricing"`
	HotelsQueried   int   `json:"hotels_queried"`
	HotelsFromCache int   `json:"hotels_from_cache"`
	HotelsFailed    int   `json:"hotels_failed"`
	DurationMs      int64 `json:"duration_ms"`
}

// HotelQuoteDTO represents a resolved live quote.
type HotelQuoteDTO struct {
	Available bool      `json:"available"`
	Rooms     []RoomDTO `json:"rooms"`
}

// RoomDTO represents a bookable room option.
type RoomDTO struct {
	RoomTypeCode       string           `json:"room_type_code"`
	NightlyRates       []NightlyRateDTO `json:"nightly_rates,omitempty"`
	TotalAmount        float64          `json:"total_amount"`
	Currency           string           `json:"currency"`
	BoardType          string           `json:"board_type,omitempty"`
	CancellationPolicy string           `json:"cancellation_policy,omitempty"`
	IsRefundable       bool             `json:"is_refundable"`
	BookingCode        string           `json:"booking_code"`
}

// NightlyRateDTO represents a single night's rate.
type NightlyRateDTO struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ComparisonResponseDTO is the data transfer object for comparison responses.
type ComparisonResponseDTO struct {
	PackageID string               `json:"package_id"`
	Entries   []ComparisonEntryDTO `json:"entries"`
}

// ComparisonEntryDTO represents one compared configuration's outcome.
type ComparisonEntryDTO struct {
	Label     string              `json:"label,omitempty"`
	Travelers TravelersDTO        `json:"travelers"`
	Result    *PricingResponseDTO `json:"result,omitempty"`
	Error     string              `json:"error,omitempty"`
	Best      bool                `json:"best"`
}

// PreBookResponseDTO is the data transfer object for prebook responses.
type PreBookResponseDTO struct {
	BookingCode string        `json:"booking_code"`
	Quote       HotelQuoteDTO `json:"quote"`
}

// BookingResponseDTO is the data transfer object for booking confirmations.
type BookingResponseDTO struct {
	ConfirmationNumber string `json:"confirmation_number"`
	Reference          string `json:"reference"`
	BookingCode        string `json:"booking_code"`
	Status             string `json:"status"`
	BookedAt           string `json:"booked_at"`
}

// ToPricingResponseDTO converts a domain PricingResult to its response DTO.
func ToPricingResponseDTO(packageID string, result *domain.PricingResult) *PricingResponseDTO {
	if result == nil {
		return nil
	}

	dto := &PricingResponseDTO{
		PackageID: packageID,
		Breakdown: toBreakdownDTO(result.Breakdown),
		Degraded:  result.Degraded(),
		Metadata: MetadataDTO{
			LivePricing:     result.Metadata.LivePricing,
			HotelsQueried:   result.Metadata.HotelsQueried,
			HotelsFromCache: result.Metadata.HotelsFromCache,
			HotelsFailed:    result.Metadata.HotelsFailed,
			DurationMs:      result.Metadata.DurationMs,
		},
	}

	if len(result.Hotels) > 0 {
		dto.Hotels = make(map[string]HotelQuoteDTO, len(result.Hotels))
		for id, quote := range result.Hotels {
			dto.Hotels[id] = toHotelQuoteDTO(quote)
		}
	}

	for _, he := range result.Errors {
		dto.Errors = append(dto.Errors, HotelErrorDTO{
			HotelID: he.HotelID,
			Kind:    string(he.Kind),
			Message: he.Message,
		})
	}

	return dto
}

// ToComparisonResponseDTO converts comparison entries to their response DTO.
func ToComparisonResponseDTO(packageID string, entries []domain.ComparisonEntry) *ComparisonResponseDTO {
	dto := &ComparisonResponseDTO{
		PackageID: packageID,
		Entries:   make([]ComparisonEntryDTO, len(entries)),
	}

	for i, entry := range entries {
		dto.Entries[i] = ComparisonEntryDTO{
			Label: entry.Config.Label,
			Travelers: TravelersDTO{
				Adults:   entry.Config.Travelers.Adults,
				Children: entry.Config.Travelers.Children,
				Infants:  entry.Config.Travelers.Infants,
			},
			Result: ToPricingResponseDTO(packageID, entry.Result),
			Error:  entry.Error,
			Best:   entry.Best,
		}
	}

	return dto
}

// ToPreBookResponseDTO converts a revalidated quote to its response DTO.
func ToPreBookResponseDTO(bookingCode string, quote *domain.HotelRateQuote) *PreBookResponseDTO {
	return &PreBookResponseDTO{
		BookingCode: bookingCode,
		Quote:       toHotelQuoteDTO(quote),
	}
}

// ToBookingResponseDTO converts a booking confirmation to its response DTO.
func ToBookingResponseDTO(conf *domain.BookingConfirmation) *BookingResponseDTO {
	return &BookingResponseDTO{
		ConfirmationNumber: conf.ConfirmationNumber,
		Reference:          conf.Reference,
		BookingCode:        conf.BookingCode,
		Status:             conf.Status,
		BookedAt:           conf.BookedAt.Format(time.RFC3339),
	}
}

func toBreakdownDTO(b domain.PriceBreakdown) BreakdownDTO {
	dto := BreakdownDTO{
		PackagePortion: BasePortionDTO{
			Adults:   b.PackagePortion.Adults,
			Children: b.PackagePortion.Children,
			Infants:  b.PackagePortion.Infants,
			Subtotal: b.PackagePortion.Subtotal,
		},
		Discount: DiscountDTO{
			Type:   string(b.Discount.Type),
			Value:  b.Discount.Value,
			Amount: b.Discount.Amount,
		},
		HotelPortion:   make([]HotelLineDTO, len(b.HotelPortion)),
		TaxesAndFees:   make([]FeeLineDTO, len(b.TaxesAndFees)),
		GrandTotal:     b.GrandTotal,
		Currency:       b.Currency,
		PricePerPerson: b.PricePerPerson,
		Warnings:       b.Warnings,
	}

	for i, line := range b.HotelPortion {
		dto.HotelPortion[i] = HotelLineDTO{
			HotelID:  line.HotelID,
			Nights:   line.Nights,
			Total:    line.Total,
			Currency: line.Currency,
			Source:   string(line.Source),
		}
	}
	for i, fee := range b.TaxesAndFees {
		dto.TaxesAndFees[i] = FeeLineDTO{Name: fee.Name, Amount: fee.Amount}
	}

	return dto
}

func toHotelQuoteDTO(q *domain.HotelRateQuote) HotelQuoteDTO {
	if q == nil {
		return HotelQuoteDTO{}
	}

	dto := HotelQuoteDTO{
		Available: q.Available,
		Rooms:     make([]RoomDTO, len(q.Rooms)),
	}

	for i, room := range q.Rooms {
		roomDTO := RoomDTO{
			RoomTypeCode:       room.RoomTypeCode,
			TotalAmount:        room.TotalAmount,
			Currency:           room.Currency,
			BoardType:          room.BoardType,
			CancellationPolicy: room.CancellationPolicy,
			IsRefundable:       room.IsRefundable,
			BookingCode:        room.BookingCode,
		}
		for _, nightly := range room.NightlyRates {
			roomDTO.NightlyRates = append(roomDTO.NightlyRates, NightlyRateDTO{
				Date:     nightly.Date.Format("2006-01-02"),
				Amount:   nightly.Amount,
				Currency: nightly.Currency,
			})
		}
		dto.Rooms[i] = roomDTO
	}

	return dto
}
