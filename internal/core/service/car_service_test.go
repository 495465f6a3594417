package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

type stubCarRepo struct {
	cars       map[string]*domain.Car
	nextID     int
	total      int64
	lastFilter ports.ListCarsFilter
}

func newStubCarRepo() *stubCarRepo {
	return &stubCarRepo{cars: make(map[string]*domain.Car), nextID: 1}
}

func cloneCar(c *domain.Car) *domain.Car {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCarRepo) List(_ context.Context, filter ports.ListCarsFilter) ([]*domain.Car, error) {
	r.lastFilter = filter
	var out []*domain.Car
	for _, c := range r.cars {
		out = append(out, cloneCar(c))
	}
	return out, nil
}

func (r *stubCarRepo) Count(_ context.Context, filter ports.ListCarsFilter) (int64, error) {
	if r.total > 0 {
		return r.total, nil
	}
	return int64(len(r.cars)), nil
}

func (r *stubCarRepo) FindByID(_ context.Context, id string) (*domain.Car, error) {
	c, ok := r.cars[id]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	return cloneCar(c), nil
}

func (r *stubCarRepo) Create(_ context.Context, car *domain.Car) (*domain.Car, error) {
	stored := cloneCar(car)
	stored.ID = "car" + string(rune('0'+r.nextID))
	r.nextID++
	r.cars[stored.ID] = cloneCar(stored)
	return stored, nil
}

func (r *stubCarRepo) Update(_ context.Context, car *domain.Car) (*domain.Car, error) {
	if _, ok := r.cars[car.ID]; !ok {
		return nil, domain.ErrCarNotFound
	}
	r.cars[car.ID] = cloneCar(car)
	return cloneCar(car), nil
}

func (r *stubCarRepo) Remove(_ context.Context, id string) error {
	if _, ok := r.cars[id]; !ok {
		return domain.ErrCarNotFound
	}
	delete(r.cars, id)
	return nil
}

type stubCarCache struct {
	entries     map[string]*domain.Car
	invalidated []string
}

func newStubCarCache() *stubCarCache {
	return &stubCarCache{entries: make(map[string]*domain.Car)}
}

func (c *stubCarCache) Get(_ context.Context, id string) (*domain.Car, bool, error) {
	car, ok := c.entries[id]
	return cloneCar(car), ok, nil
}

func (c *stubCarCache) Set(_ context.Context, car *domain.Car) error {
	c.entries[car.ID] = cloneCar(car)
	return nil
}

func (c *stubCarCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return nil
}

func adminActor() *domain.User {
	return &domain.User{ID: "3", Username: "afriyan", Role: domain.RoleAdmin}
}

func carInput() ports.CarInput {
	return ports.CarInput{
		Plate:        "DBH-3491",
		Manufacture:  "Ford",
		Model:        "F150",
		RentPerDay:   200000,
		Capacity:     2,
		Description:  "Brake assist. Leather-wrapped shift knob.",
		AvailableAt:  time.Date(2022, 3, 23, 15, 49, 5, 0, time.UTC),
		Transmission: "Automatic",
		Available:    true,
		Type:         "Sedan",
		Year:         "2022",
		Options:      []string{"Cruise Control", "Tinted Glass"},
		Specs:        []string{"Brake assist", "Glove box lamp"},
	}
}

func TestCarService_List_PaginationDefaults(t *testing.T) {
	repo := newStubCarRepo()
	svc := NewCarService(repo, nil, zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListCarsInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Page != 1 || result.Size != 10 {
		t.Fatalf("expected defaults page=1 size=10, got page=%d size=%d", result.Page, result.Size)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Size != 10 {
		t.Fatalf("defaults not forwarded to repository: %+v", repo.lastFilter)
	}
}

func TestCarService_List_TotalPages(t *testing.T) {
	repo := newStubCarRepo()
	svc := NewCarService(repo, nil, zerolog.Nop())

	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{total: 0, size: 10, want: 0},
		{total: 20, size: 10, want: 2},
		{total: 21, size: 10, want: 3},
		{total: 5, size: 10, want: 1},
	}
	for _, tc := range cases {
		repo.total = tc.total
		result, err := svc.List(context.Background(), ports.ListCarsInput{Page: 1, Size: tc.size})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if result.TotalData != tc.total || result.TotalPages != tc.want {
			t.Fatalf("total=%d size=%d: got totalData=%d totalPages=%d, want totalPages=%d",
				tc.total, tc.size, result.TotalData, result.TotalPages, tc.want)
		}
	}
}

func TestCarService_List_ForwardsSearch(t *testing.T) {
	repo := newStubCarRepo()
	svc := NewCarService(repo, nil, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListCarsInput{Search: "ford"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Search != "ford" {
		t.Fatalf("search not forwarded: %+v", repo.lastFilter)
	}
}

func TestCarService_Show_NotFound(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), nil, zerolog.Nop())

	_, err := svc.Show(context.Background(), "missing")
	if !errors.Is(err, domain.ErrCarNotFound) {
		t.Fatalf("expected ErrCarNotFound, got %v", err)
	}
	var ce *domain.ClientError
	if !errors.As(err, &ce) || ce.StatusCode != 404 {
		t.Fatalf("expected 404 ClientError, got %v", err)
	}
}

func TestCarService_Show_PopulatesCache(t *testing.T) {
	repo := newStubCarRepo()
	cache := newStubCarCache()
	svc := NewCarService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminActor(), carInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// First read misses the cache and fills it.
	got, err := svc.Show(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if got.Plate != "DBH-3491" {
		t.Fatalf("unexpected car: %+v", got)
	}
	if _, ok := cache.entries[created.ID]; !ok {
		t.Fatalf("cache not populated after miss")
	}

	// Second read is served from the cache even if the repo record vanishes.
	delete(repo.cars, created.ID)
	if _, err := svc.Show(context.Background(), created.ID); err != nil {
		t.Fatalf("cached Show: %v", err)
	}
}

func TestCarService_Create_StampsAudit(t *testing.T) {
	repo := newStubCarRepo()
	svc := NewCarService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminActor(), carInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedBy != "3" {
		t.Fatalf("expected created_by=3, got %q", created.CreatedBy)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not stamped: %+v", created)
	}
}

func TestCarService_Update_PreservesCreationAudit(t *testing.T) {
	repo := newStubCarRepo()
	cache := newStubCarCache()
	svc := NewCarService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminActor(), carInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := &domain.User{ID: "7", Username: "superfranky", Role: domain.RoleAdmin}
	input := carInput()
	input.Model = "Ranger"

	updated, err := svc.Update(context.Background(), other, created.ID, input)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Model != "Ranger" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.CreatedBy != "3" || updated.UpdatedBy != "7" {
		t.Fatalf("audit trail wrong: created_by=%q updated_by=%q", updated.CreatedBy, updated.UpdatedBy)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != created.ID {
		t.Fatalf("cache not invalidated on update: %v", cache.invalidated)
	}
}

func TestCarService_Update_NotFound(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), nil, zerolog.Nop())

	_, err := svc.Update(context.Background(), adminActor(), "missing", carInput())
	if !errors.Is(err, domain.ErrCarNotFound) {
		t.Fatalf("expected ErrCarNotFound, got %v", err)
	}
}

func TestCarService_Remove_InvalidatesCache(t *testing.T) {
	repo := newStubCarRepo()
	cache := newStubCarCache()
	svc := NewCarService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminActor(), carInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Remove(context.Background(), adminActor(), created.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("cache not invalidated on remove")
	}
	if err := svc.Remove(context.Background(), adminActor(), created.ID); !errors.Is(err, domain.ErrCarNotFound) {
		t.Fatalf("expected ErrCarNotFound on second remove, got %v", err)
	}
}
