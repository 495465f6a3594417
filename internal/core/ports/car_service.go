package ports

import (
	"context"
	"time"

	"github.com/rental-cars/catalog-api/internal/core/domain"
)

// ListCarsInput carries pagination and search parameters from the transport
// layer. Page and Size fall back to 1 and 10 when out of range.
type ListCarsInput struct {
	Page   int
	Size   int
	Search string
}

// ListCarsResult is a single catalog page plus the meta needed to build the
// response envelope.
type ListCarsResult struct {
	Items      []*domain.Car
	Page       int
	Size       int
	TotalData  int64
	TotalPages int
}

// CarInput carries the mutable catalog fields for create and update.
type CarInput struct {
	Plate        string
	Manufacture  string
	Model        string
	Image        string
	RentPerDay   int64
	Capacity     int
	Description  string
	AvailableAt  time.Time
	Transmission string
	Available    bool
	Type         string
	Year         string
	Options      []string
	Specs        []string
}

// CarService defines the catalog use-cases. Mutations record the acting
// principal in the car's audit fields; role enforcement happens at the
// transport boundary before these are reached.
type CarService interface {
	List(ctx context.Context, input ListCarsInput) (*ListCarsResult, error)
	Show(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, actor *domain.User, input CarInput) (*domain.Car, error)
	Update(ctx context.Context, actor *domain.User, id string, input CarInput) (*domain.Car, error)
	Remove(ctx context.Context, actor *domain.User, id string) error
}
