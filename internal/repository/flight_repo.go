package repository

import (
	"context"

	"github.com/Domenick1991/skyward/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

// StaticFlightRepository serves a fixed flight list in source order.
// Flights are read-only reference data for the booking engine.
type StaticFlightRepository struct {
	flights []domain.Flight
}

func NewStaticFlightRepository(flights []domain.Flight) *StaticFlightRepository {
	return &StaticFlightRepository{flights: flights}
}

func (r *StaticFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(r.flights))
	copy(out, r.flights)
	return out, nil
}

// GetByID returns (nil, nil) when no flight matches.
func (r *StaticFlightRepository) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	for _, f := range r.flights {
		if f.ID == id {
			flight := f
			return &flight, nil
		}
	}
	return nil, nil
}

var _ FlightRepository = (*StaticFlightRepository)(nil)
