// Package storage defines the document-store collaborators the pricing engine
// reads packages and hotels from. The engine never writes these documents.
package storage

import (
	"context"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// PackageStore exposes package documents with their hotel assignments already
// normalized to the canonical shape.
type PackageStore interface {
	// GetPackage returns the package with the given ID, or
	// domain.ErrPackageNotFound.
	GetPackage(ctx context.Context, id string) (*domain.Package, error)
}

// HotelStore exposes hotel documents.
type HotelStore interface {
	// GetHotel returns the hotel with the given ID, or domain.ErrHotelNotFound.
	GetHotel(ctx context.Context, id string) (*domain.Hotel, error)
}

// Store combines the package and hotel stores.
type Store interface {
	PackageStore
	HotelStore
}
