package ledger

import (
	"context"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/repository"
)

type LedgerUseCase interface {
	Append(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
}

// LedgerService is the append-only record of completed bookings.
//
// The ledger trusts its input: user and flight references are validated by
// the booking workflow before a record reaches Append, so no resolver
// round-trips happen here.
type LedgerService struct {
	bookings repository.BookingRepository
}

func NewLedgerService(bookings repository.BookingRepository) *LedgerService {
	return &LedgerService{bookings: bookings}
}

func (s *LedgerService) Append(ctx context.Context, booking *domain.Booking) error {
	return s.bookings.Append(ctx, booking)
}

// ListByUser returns the user's bookings in descending creation time,
// most recent first.
func (s *LedgerService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *LedgerService) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

var _ LedgerUseCase = (*LedgerService)(nil)
