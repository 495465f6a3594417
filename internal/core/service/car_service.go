package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxPageSize = 100
)

// CarCache abstracts the read-through cache in front of single-car lookups.
type CarCache interface {
	Get(ctx context.Context, id string) (*domain.Car, bool, error)
	Set(ctx context.Context, car *domain.Car) error
	Invalidate(ctx context.Context, id string) error
}

// CarService implements the catalog use-cases on top of the repository and an
// optional cache. Role enforcement happens before these methods are reached;
// mutations only stamp the acting principal into the audit fields.
type CarService struct {
	repo  ports.CarRepository
	cache CarCache
	log   zerolog.Logger
}

// NewCarService returns a CarService. cache may be nil, in which case every
// lookup goes straight to the repository.
func NewCarService(repo ports.CarRepository, cache CarCache, log zerolog.Logger) *CarService {
	return &CarService{repo: repo, cache: cache, log: log}
}

// List returns one catalog page plus the pagination meta for the envelope.
func (s *CarService) List(ctx context.Context, input ports.ListCarsInput) (*ports.ListCarsResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	size := input.Size
	if size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := ports.ListCarsFilter{Search: input.Search, Page: page, Size: size}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListCarsResult{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalData:  total,
		TotalPages: totalPages(total, size),
	}, nil
}

// Show returns a single car, consulting the cache first.
func (s *CarService) Show(ctx context.Context, id string) (*domain.Car, error) {
	if s.cache != nil {
		car, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("car_id", id).Msg("car cache read failed, falling back to repository")
		} else if ok {
			return car, nil
		}
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, car); err != nil {
			s.log.Warn().Err(err).Str("car_id", id).Msg("car cache write failed")
		}
	}
	return car, nil
}

// Create persists a new catalog entry stamped with the acting principal.
func (s *CarService) Create(ctx context.Context, actor *domain.User, input ports.CarInput) (*domain.Car, error) {
	now := time.Now().UTC()
	car := carFromInput(input)
	car.CreatedBy = actor.ID
	car.CreatedAt = now
	car.UpdatedAt = now

	created, err := s.repo.Create(ctx, car)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("car_id", created.ID).Str("plate", created.Plate).Str("actor", actor.ID).Msg("car created")
	return created, nil
}

// Update overwrites the mutable fields of an existing entry and re-stamps the
// audit trail. The cache entry is dropped so the next read sees fresh data.
func (s *CarService) Update(ctx context.Context, actor *domain.User, id string, input ports.CarInput) (*domain.Car, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	car := carFromInput(input)
	car.ID = existing.ID
	car.CreatedBy = existing.CreatedBy
	car.CreatedAt = existing.CreatedAt
	car.UpdatedBy = actor.ID
	car.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, car)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("car_id", id).Str("actor", actor.ID).Msg("car updated")
	return updated, nil
}

// Remove deletes a catalog entry and drops its cache entry.
func (s *CarService) Remove(ctx context.Context, actor *domain.User, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("car_id", id).Str("actor", actor.ID).Msg("car removed")
	return nil
}

func (s *CarService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn().Err(err).Str("car_id", id).Msg("car cache invalidation failed")
	}
}

func carFromInput(input ports.CarInput) *domain.Car {
	return &domain.Car{
		Plate:        input.Plate,
		Manufacture:  input.Manufacture,
		Model:        input.Model,
		Image:        input.Image,
		RentPerDay:   input.RentPerDay,
		Capacity:     input.Capacity,
		Description:  input.Description,
		AvailableAt:  input.AvailableAt,
		Transmission: input.Transmission,
		Available:    input.Available,
		Type:         input.Type,
		Year:         input.Year,
		Options:      input.Options,
		Specs:        input.Specs,
	}
}

func totalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
