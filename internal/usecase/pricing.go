package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/cache"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/logger"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/storage"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 30 * time.Second
	DefaultQuoteTimeout  = 23 * time.Second
	DefaultNationality   = "AE"
)

// PricingRequest carries the inputs of one pricing call.
type PricingRequest struct {
	PackageID   string
	Travelers   domain.TravelerCount
	DateRange   *domain.DateRange
	Currency    string
	Nationality string
}

// PricingService defines the public pricing entry points.
type PricingService interface {
	// CalculateDetailedPricing runs the full pipeline: live hotel rates when
	// a date range is supplied, static base prices otherwise. Provider
	// failures degrade individual hotels to static pricing instead of
	// failing the request.
	CalculateDetailedPricing(ctx context.Context, req PricingRequest) (*domain.PricingResult, error)

	// GetQuickEstimate prices a package from static data only. It never
	// calls the rate provider, so it completes without network dependency.
	GetQuickEstimate(ctx context.Context, packageID string, travelers domain.TravelerCount) (*domain.PricingResult, error)

	// UpdatePricing reprices after a traveler or date change. It behaves
	// like CalculateDetailedPricing but benefits from search results still
	// warm in the cache.
	UpdatePricing(ctx context.Context, req PricingRequest) (*domain.PricingResult, error)

	// CompareConfigurations prices up to MaxComparisonConfigurations
	// traveler/date combinations and marks the one with the lowest price
	// per person. Configurations that fail to price are reported but never
	// win the comparison.
	CompareConfigurations(ctx context.Context, packageID string, configs []domain.Configuration, shared *domain.DateRange) ([]domain.ComparisonEntry, error)
}

// Config contains configuration options for the pricing service.
type Config struct {
	// GlobalTimeout bounds one whole pricing request.
	GlobalTimeout time.Duration

	// QuoteTimeout bounds a single hotel rate fetch.
	QuoteTimeout time.Duration

	// Nationality is the fallback guest nationality for rate searches.
	Nationality string

	// ServiceFeeRate, when positive, adds a service fee line computed over
	// the discounted package and hotel total.
	ServiceFeeRate float64
}

// DefaultConfig returns the default pricing configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		QuoteTimeout:  DefaultQuoteTimeout,
		Nationality:   DefaultNationality,
	}
}

type pricingService struct {
	store storage.Store
	rates domain.RateClient
	cache *cache.RateCache
	clock timeutil.Clock
	log   *logger.Logger
	cfg   Config
}

// NewPricingService creates a PricingService. The rate client may be nil, in
// which case every request prices statically. If config is nil, defaults are
// used.
func NewPricingService(store storage.Store, rates domain.RateClient, rateCache *cache.RateCache, clock timeutil.Clock, log *logger.Logger, config *Config) PricingService {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.QuoteTimeout > 0 {
			cfg.QuoteTimeout = config.QuoteTimeout
		}
		if config.Nationality != "" {
			cfg.Nationality = config.Nationality
		}
		cfg.ServiceFeeRate = config.ServiceFeeRate
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &pricingService{
		store: store,
		rates: rates,
		cache: rateCache,
		clock: clock,
		log:   log,
		cfg:   cfg,
	}
}

func (s *pricingService) CalculateDetailedPricing(ctx context.Context, req PricingRequest) (*domain.PricingResult, error) {
	start := time.Now()

	pkg, err := s.store.GetPackage(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	var v domain.Violations
	req.Travelers.Validate(&v)
	if req.DateRange != nil {
		req.DateRange.Validate(timeutil.Today(s.clock), &v)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	live := req.DateRange != nil && len(pkg.Assignments) > 0 && s.rates != nil
	return s.price(ctx, pkg, req, live, start)
}

func (s *pricingService) GetQuickEstimate(ctx context.Context, packageID string, travelers domain.TravelerCount) (*domain.PricingResult, error) {
	start := time.Now()

	pkg, err := s.store.GetPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	var v domain.Violations
	travelers.Validate(&v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	req := PricingRequest{PackageID: packageID, Travelers: travelers}
	return s.price(ctx, pkg, req, false, start)
}

func (s *pricingService) UpdatePricing(ctx context.Context, req PricingRequest) (*domain.PricingResult, error) {
	s.log.WithPackage(req.PackageID).Debug().
		Int("adults", req.Travelers.Adults).
		Int("children", req.Travelers.Children).
		Int("infants", req.Travelers.Infants).
		Msg("Repricing after traveler or date change")
	return s.CalculateDetailedPricing(ctx, req)
}

func (s *pricingService) CompareConfigurations(ctx context.Context, packageID string, configs []domain.Configuration, shared *domain.DateRange) ([]domain.ComparisonEntry, error) {
	var v domain.Violations
	if len(configs) == 0 {
		v.Add("configurations", "at least one configuration is required")
	}
	if len(configs) > domain.MaxComparisonConfigurations {
		v.Add("configurations", fmt.Sprintf("maximum %d configurations per comparison", domain.MaxComparisonConfigurations))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	entries := make([]domain.ComparisonEntry, len(configs))
	var wg sync.WaitGroup
	for i, config := range configs {
		wg.Add(1)
		go func(i int, config domain.Configuration) {
			defer wg.Done()

			dateRange := config.DateRange
			if dateRange == nil {
				dateRange = shared
			}
			result, err := s.CalculateDetailedPricing(ctx, PricingRequest{
				PackageID: packageID,
				Travelers: config.Travelers,
				DateRange: dateRange,
			})
			if err != nil {
				entries[i] = domain.ComparisonEntry{Config: config, Error: err.Error()}
				return
			}
			entries[i] = domain.ComparisonEntry{Config: config, Result: result}
		}(i, config)
	}
	wg.Wait()

	best := -1
	for i := range entries {
		if entries[i].Result == nil {
			continue
		}
		if best < 0 || entries[i].Result.Breakdown.PricePerPerson < entries[best].Result.Breakdown.PricePerPerson {
			best = i
		}
	}
	if best >= 0 {
		entries[best].Best = true
	}

	return entries, nil
}

// price is the shared pipeline behind every entry point: resolve hotel lines
// (live or static), then compose the breakdown.
func (s *pricingService) price(ctx context.Context, pkg *domain.Package, req PricingRequest, live bool, start time.Time) (*domain.PricingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GlobalTimeout)
	defer cancel()

	log := s.log.WithPackage(pkg.ID)

	var (
		lines     []domain.HotelPortionLine
		warnings  []string
		hotelErrs []domain.HotelError
		quotes    map[string]*domain.HotelRateQuote
		fromCache int
	)

	if live {
		quotes = make(map[string]*domain.HotelRateQuote, len(pkg.Assignments))
		for _, res := range s.fetchQuotes(ctx, pkg, req) {
			if res.hotel == nil {
				hotelErrs = append(hotelErrs, domain.HotelError{
					HotelID: res.assignment.HotelID,
					Message: res.err.Error(),
				})
				continue
			}
			if res.err != nil {
				he := domain.HotelError{HotelID: res.hotel.ID, Message: res.err.Error()}
				if pe, ok := domain.AsProviderError(res.err); ok {
					he.Kind = pe.Kind
				}
				hotelErrs = append(hotelErrs, he)

				line, w := StaticHotelLine(res.assignment, res.hotel)
				lines = append(lines, line)
				warnings = append(warnings, w...)
				warnings = append(warnings, fmt.Sprintf("hotel %s: live rates unavailable, using static base price", res.hotel.ID))
				continue
			}

			quotes[res.hotel.ID] = res.quote
			if res.fromCache {
				fromCache++
			}
			line, w := LiveHotelLine(res.assignment, res.hotel, res.quote)
			lines = append(lines, line)
			warnings = append(warnings, w...)
		}
	} else {
		for _, a := range pkg.Assignments {
			hotel, err := s.lookupHotel(ctx, a.HotelID)
			if err != nil {
				hotelErrs = append(hotelErrs, domain.HotelError{HotelID: a.HotelID, Message: err.Error()})
				continue
			}
			line, w := StaticHotelLine(a, hotel)
			lines = append(lines, line)
			warnings = append(warnings, w...)
		}
	}

	base := BasePortion(pkg, req.Travelers)
	discount := ApplyDiscount(base.Subtotal, pkg.Discount)

	var fees []domain.FeeLine
	if s.cfg.ServiceFeeRate > 0 {
		taxable := base.Subtotal - discount.Amount
		for _, l := range lines {
			taxable += l.Total
		}
		fees = append(fees, domain.FeeLine{
			Name:   "Service fee",
			Amount: roundMoney(taxable * s.cfg.ServiceFeeRate),
		})
	}

	if req.Currency != "" && req.Currency != pkg.Currency {
		warnings = append(warnings, fmt.Sprintf("pricing is expressed in the package currency %s, not the requested %s", pkg.Currency, req.Currency))
	}

	breakdown := Compose(pkg.Currency, req.Travelers, base, discount, lines, fees, warnings)

	result := &domain.PricingResult{
		Breakdown: breakdown,
		Hotels:    quotes,
		Errors:    hotelErrs,
		Metadata: domain.PricingMetadata{
			LivePricing:     live,
			HotelsQueried:   len(pkg.Assignments),
			HotelsFromCache: fromCache,
			HotelsFailed:    len(hotelErrs),
			DurationMs:      time.Since(start).Milliseconds(),
		},
	}

	log.Info().
		Bool("live_pricing", live).
		Int("hotels_queried", result.Metadata.HotelsQueried).
		Int("hotels_from_cache", fromCache).
		Int("hotels_failed", len(hotelErrs)).
		Float64("grand_total", breakdown.GrandTotal).
		Int64("duration_ms", result.Metadata.DurationMs).
		Msg("Pricing completed")

	return result, nil
}

// quoteResult holds the outcome of one assignment's rate fetch.
type quoteResult struct {
	index      int
	assignment domain.HotelAssignment
	hotel      *domain.Hotel
	quote      *domain.HotelRateQuote
	fromCache  bool
	err        error
}

// fetchQuotes fans out one goroutine per assignment and gathers all results
// before returning. Results come back in assignment order so breakdown lines
// are deterministic.
func (s *pricingService) fetchQuotes(ctx context.Context, pkg *domain.Package, req PricingRequest) []quoteResult {
	out := make(chan quoteResult, len(pkg.Assignments))

	var wg sync.WaitGroup
	for i, a := range pkg.Assignments {
		wg.Add(1)
		go func(i int, a domain.HotelAssignment) {
			defer wg.Done()
			out <- s.fetchQuote(ctx, i, a, req)
		}(i, a)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]quoteResult, 0, len(pkg.Assignments))
	for res := range out {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})
	return results
}

// fetchQuote resolves one assignment's live quote: cache first, then a
// provider search bounded by the quote timeout. A panic in the provider path
// is converted into a per-hotel error so one assignment cannot crash the
// whole request.
func (s *pricingService) fetchQuote(ctx context.Context, index int, a domain.HotelAssignment, req PricingRequest) (res quoteResult) {
	res = quoteResult{index: index, assignment: a}

	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("rate fetch panic: %v", r)
		}
	}()

	hotel, err := s.lookupHotel(ctx, a.HotelID)
	if err != nil {
		res.err = err
		return res
	}
	res.hotel = hotel

	checkIn, checkOut := a.StayDates(req.DateRange.StartDate)
	search := domain.HotelSearchRequest{
		HotelCodes:  []string{hotel.Code},
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Rooms:       assignmentRooms(a),
		Nationality: s.nationality(req),
	}

	key := cache.SearchKey(search)
	if s.cache != nil {
		if set, ok := s.cache.GetSearch(ctx, key); ok {
			if q := set.QuoteFor(hotel.Code); q != nil && q.Available {
				res.quote = remapQuote(q, hotel.ID)
				res.fromCache = true
				return res
			}
		}
	}

	qctx, cancel := context.WithTimeout(ctx, s.cfg.QuoteTimeout)
	defer cancel()

	set, err := s.rates.Search(qctx, search)
	if err != nil {
		res.err = err
		return res
	}
	if s.cache != nil {
		s.cache.PutSearch(ctx, key, set)
	}

	q := set.QuoteFor(hotel.Code)
	if q == nil || !q.Available || q.BestRoom() == nil {
		res.err = domain.NewProviderError(s.rates.Name(), domain.KindNoAvailability,
			fmt.Errorf("no rooms returned for hotel %s", hotel.Code))
		return res
	}

	res.quote = remapQuote(q, hotel.ID)
	return res
}

// lookupHotel reads a hotel document through the metadata cache.
func (s *pricingService) lookupHotel(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	if s.cache != nil {
		if hotel, ok := s.cache.GetHotel(ctx, hotelID); ok {
			return hotel, nil
		}
	}

	hotel, err := s.store.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.PutHotel(ctx, hotel)
	}
	return hotel, nil
}

func (s *pricingService) nationality(req PricingRequest) string {
	if req.Nationality != "" {
		return req.Nationality
	}
	return s.cfg.Nationality
}

// assignmentRooms expands an assignment into per-room guest requests.
func assignmentRooms(a domain.HotelAssignment) []domain.RoomRequest {
	rooms := a.RoomsNeeded
	if rooms < 1 {
		rooms = 1
	}
	guests := a.GuestsPerRoom
	if guests < 1 {
		guests = 2
	}

	out := make([]domain.RoomRequest, rooms)
	for i := range out {
		out[i] = domain.RoomRequest{Adults: guests}
	}
	return out
}

// remapQuote rekeys a provider quote from the provider hotel code to the
// hotel document ID without mutating the cached copy.
func remapQuote(q *domain.HotelRateQuote, hotelID string) *domain.HotelRateQuote {
	remapped := *q
	remapped.HotelID = hotelID
	return &remapped
}

// Ensure pricingService implements PricingService at compile time.
var _ PricingService = (*pricingService)(nil)
