package search

import (
	"sort"

	"github.com/Domenick1991/skyward/internal/domain"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departureTime"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Sort returns a new slice ordered by key. The sort is stable: flights that
// compare equal keep their catalog-search order. An unknown key leaves the
// input order untouched.
func Sort(flights []domain.Flight, key SortKey, order SortOrder) []domain.Flight {
	out := make([]domain.Flight, len(flights))
	copy(out, flights)

	less := lessFunc(key)
	if less == nil {
		return out
	}
	if order == Descending {
		asc := less
		less = func(a, b domain.Flight) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b domain.Flight) bool {
	switch key {
	case SortByPrice:
		return func(a, b domain.Flight) bool { return a.Price < b.Price }
	case SortByDuration:
		return func(a, b domain.Flight) bool { return a.Duration() < b.Duration() }
	case SortByDeparture:
		return func(a, b domain.Flight) bool { return a.DepartureTime.Before(b.DepartureTime) }
	default:
		return nil
	}
}

// State tracks the active sort selection. Choosing the current key again
// flips the order; choosing a different key resets to ascending.
type State struct {
	Key   SortKey
	Order SortOrder
}

func NewState() *State {
	return &State{Key: SortByPrice, Order: Ascending}
}

func (s *State) Toggle(key SortKey) {
	if s.Key == key {
		if s.Order == Ascending {
			s.Order = Descending
		} else {
			s.Order = Ascending
		}
		return
	}
	s.Key = key
	s.Order = Ascending
}

func (s *State) Apply(flights []domain.Flight) []domain.Flight {
	return Sort(flights, s.Key, s.Order)
}
