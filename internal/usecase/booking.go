package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/retry"
)

// BookingService drives the prebook/book half of the provider protocol.
// Unlike search, provider errors here are never degraded to static data: a
// rate change or lost availability must reach the caller so they can refresh
// rates or pick another hotel.
type BookingService interface {
	// PreBook revalidates a rate immediately before booking. A rate_changed
	// error means "refresh pricing and retry"; no_availability means "pick
	// another hotel or date".
	PreBook(ctx context.Context, bookingCode string) (*domain.HotelRateQuote, error)

	// Book confirms a prebooked rate. Booking is idempotent on the request
	// reference; calling twice with the same reference returns the original
	// confirmation. Transient provider failures are retried.
	Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
}

type bookingService struct {
	rates domain.RateClient
	log   *logger.Logger
	retry retry.Config

	// confirmed records completed bookings by reference so a repeated
	// request returns the original confirmation instead of booking again.
	mu        sync.Mutex
	confirmed map[string]*domain.BookingConfirmation
}

// NewBookingService creates a BookingService backed by the given rate client.
func NewBookingService(rates domain.RateClient, log *logger.Logger) BookingService {
	if log == nil {
		log = logger.Nop()
	}
	return &bookingService{
		rates:     rates,
		log:       log,
		retry:     retry.BookingConfig,
		confirmed: make(map[string]*domain.BookingConfirmation),
	}
}

func (s *bookingService) PreBook(ctx context.Context, bookingCode string) (*domain.HotelRateQuote, error) {
	quote, err := s.rates.PreBook(ctx, bookingCode)
	if err != nil {
		if pe, ok := domain.AsProviderError(err); ok {
			s.log.WithProvider(pe.Provider).Warn().
				Str("kind", string(pe.Kind)).
				Msg("Prebook failed")
		}
		return nil, err
	}
	return quote, nil
}

func (s *bookingService) Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	var v domain.Violations
	req.Validate(&v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	// The reference is the idempotency key; generate one when the caller
	// did not supply their own so retries below cannot double-book.
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}

	log := s.log.WithContext("reference", req.Reference)

	s.mu.Lock()
	if conf, ok := s.confirmed[req.Reference]; ok {
		s.mu.Unlock()
		log.Info().
			Str("confirmation_number", conf.ConfirmationNumber).
			Msg("Duplicate booking reference, returning original confirmation")
		return conf, nil
	}
	s.mu.Unlock()

	confirmation, err := retry.DoWithResult(ctx, func() (*domain.BookingConfirmation, error) {
		conf, err := s.rates.Book(ctx, req)
		if err != nil {
			if pe, ok := domain.AsProviderError(err); ok && !pe.Retryable {
				return nil, retry.NewPermanent(err)
			}
			return nil, err
		}
		return conf, nil
	}, s.retry)
	if err != nil {
		log.Error().Err(err).Msg("Booking failed")
		return nil, err
	}

	s.mu.Lock()
	if s.confirmed == nil {
		s.confirmed = make(map[string]*domain.BookingConfirmation)
	}
	s.confirmed[req.Reference] = confirmation
	s.mu.Unlock()

	log.Info().
		Str("confirmation_number", confirmation.ConfirmationNumber).
		Msg("Booking confirmed")
	return confirmation, nil
}

// Ensure bookingService implements BookingService at compile time.
var _ BookingService = (*bookingService)(nil)
