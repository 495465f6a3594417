package ports

import (
	"context"

	"github.com/rental-cars/catalog-api/internal/core/domain"
)

// ListCarsFilter carries the query parameters for listing catalog entries.
type ListCarsFilter struct {
	// Search is an optional partial match on plate, manufacture or model.
	Search string
	Page   int // 1-based
	Size   int // rows per page
}

// CarRepository defines persistence operations for the car catalog.
// FindByID returns domain.ErrCarNotFound on a miss, as do Update and Remove.
type CarRepository interface {
	List(ctx context.Context, filter ListCarsFilter) ([]*domain.Car, error)
	Count(ctx context.Context, filter ListCarsFilter) (int64, error)
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Remove(ctx context.Context, id string) error
}
