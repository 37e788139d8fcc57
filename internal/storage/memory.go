package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// MemoryStore is an in-memory Store, seeded from code or from a JSON catalog
// file. It backs tests and local development; production deployments plug in
// their own document store behind the same interfaces.
type MemoryStore struct {
	mu       sync.RWMutex
	packages map[string]*domain.Package
	hotels   map[string]*domain.Hotel
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		packages: make(map[string]*domain.Package),
		hotels:   make(map[string]*domain.Hotel),
	}
}

// GetPackage implements PackageStore.
func (s *MemoryStore) GetPackage(_ context.Context, id string) (*domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, ok := s.packages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPackageNotFound, id)
	}
	copied := *pkg
	return &copied, nil
}

// GetHotel implements HotelStore.
func (s *MemoryStore) GetHotel(_ context.Context, id string) (*domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hotel, ok := s.hotels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrHotelNotFound, id)
	}
	copied := *hotel
	return &copied, nil
}

// SeedPackage adds or replaces a package document.
func (s *MemoryStore) SeedPackage(pkg *domain.Package) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages[pkg.ID] = pkg
}

// SeedHotel adds or replaces a hotel document.
func (s *MemoryStore) SeedHotel(hotel *domain.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[hotel.ID] = hotel
}

// rawPackage mirrors a package document before assignment normalization.
// Assignments stay raw because source documents store them either as a
// structured array or as a legacy blob.
type rawPackage struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Currency     string              `json:"currency"`
	DurationDays int                 `json:"durationDays"`
	PriceAdult   float64             `json:"priceAdult"`
	PriceChild   float64             `json:"priceChild"`
	PriceInfant  *float64            `json:"priceInfant"`
	Discount     domain.DiscountRule `json:"discount"`
	Assignments  json.RawMessage     `json:"assignments"`
}

// catalog is the JSON layout of a seed file.
type catalog struct {
	Packages []rawPackage   `json:"packages"`
	Hotels   []domain.Hotel `json:"hotels"`
}

// LoadCatalog seeds the store from a JSON catalog file, normalizing each
// package's hotel assignments at load time.
func (s *MemoryStore) LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	return s.LoadCatalogBytes(data)
}

// LoadCatalogBytes seeds the store from raw catalog JSON.
func (s *MemoryStore) LoadCatalogBytes(data []byte) error {
	var cat catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	for _, raw := range cat.Packages {
		assignments, err := domain.ParseAssignments(raw.Assignments)
		if err != nil {
			return fmt.Errorf("package %s: %w", raw.ID, err)
		}
		if raw.Discount.Type == "" {
			raw.Discount.Type = domain.DiscountNone
		}
		s.SeedPackage(&domain.Package{
			ID:           raw.ID,
			Name:         raw.Name,
			Currency:     raw.Currency,
			DurationDays: raw.DurationDays,
			PriceAdult:   raw.PriceAdult,
			PriceChild:   raw.PriceChild,
			PriceInfant:  raw.PriceInfant,
			Discount:     raw.Discount,
			Assignments:  assignments,
		})
	}

	for i := range cat.Hotels {
		hotel := cat.Hotels[i]
		s.SeedHotel(&hotel)
	}
	return nil
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
