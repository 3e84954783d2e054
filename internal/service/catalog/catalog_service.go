package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/repository"
)

type CatalogUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Search(ctx context.Context, from, to, date string) ([]domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type CatalogService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewCatalogService(repo repository.FlightRepository, cache Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns all known flights in source order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// Search filters the catalog. Every criterion is optional: an empty from/to
// matches any city, an empty date matches any day. City matching is a
// case-insensitive substring check; date matches the departure's calendar
// date in the local time zone. Result order equals catalog order, no sort
// is applied here.
func (s *CatalogService) Search(ctx context.Context, from, to, date string) ([]domain.Flight, error) {
	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Flight, 0)
	for _, f := range flights {
		if !matchCity(f.DepartureCity, from) {
			continue
		}
		if !matchCity(f.DestinationCity, to) {
			continue
		}
		if !matchDate(f.DepartureTime, date) {
			continue
		}
		matched = append(matched, f)
	}
	return matched, nil
}

func matchCity(city, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(city), strings.ToLower(query))
}

func matchDate(departure time.Time, date string) bool {
	if date == "" {
		return true
	}
	return departure.In(time.Local).Format("2006-01-02") == date
}

var _ CatalogUseCase = (*CatalogService)(nil)
