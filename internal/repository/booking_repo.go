package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/store"
)

type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
}

// StoreBookingRepository persists the append-only booking list under the
// "bookings" key. Records are never updated or deleted.
type StoreBookingRepository struct {
	store store.Store
}

func NewBookingRepository(s store.Store) *StoreBookingRepository {
	return &StoreBookingRepository{store: s}
}

func (r *StoreBookingRepository) load(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := store.GetJSON(ctx, r.store, store.KeyBookings, &bookings)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return nil, domain.NewStorageError("load bookings", err)
	}
	return bookings, nil
}

func (r *StoreBookingRepository) Append(ctx context.Context, booking *domain.Booking) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, *booking)
	if err := store.PutJSON(ctx, r.store, store.KeyBookings, bookings); err != nil {
		return domain.NewStorageError("save bookings", err)
	}
	return nil
}

// ListByUser returns the user's bookings most recent first. Descending
// CreatedAt order is part of the ledger contract, not a presentation detail.
func (r *StoreBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}

func (r *StoreBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return r.load(ctx)
}

var _ BookingRepository = (*StoreBookingRepository)(nil)
