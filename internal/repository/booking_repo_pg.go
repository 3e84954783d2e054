package repository

import (
	"context"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGBookingRepository is the database-backed ledger. The bookings table is
// insert-only, matching the append-only contract of the store-backed ledger.
type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewPGBookingRepository(db *pgxpool.Pool) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Append(ctx context.Context, booking *domain.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (id, user_id, flight_id, full_name, email, phone, departure_city, destination_city, travel_date, passengers, payment_method, payment_status, confirmation_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		booking.ID, booking.UserID, booking.FlightID, booking.FullName, booking.Email, booking.Phone,
		booking.DepartureCity, booking.DestinationCity, booking.TravelDate, booking.Passengers,
		booking.PaymentMethod, booking.PaymentStatus, booking.ConfirmationCode, booking.CreatedAt)
	if err != nil {
		return domain.NewStorageError("insert booking", err)
	}
	return nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, flight_id, full_name, email, phone, departure_city, destination_city, travel_date, passengers, payment_method, payment_status, confirmation_code, created_at
		FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, domain.NewStorageError("list bookings", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *PGBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, flight_id, full_name, email, phone, departure_city, destination_city, travel_date, passengers, payment_method, payment_status, confirmation_code, created_at
		FROM bookings ORDER BY created_at`)
	if err != nil {
		return nil, domain.NewStorageError("list bookings", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

type bookingRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookings(rows bookingRows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.FullName, &b.Email, &b.Phone,
			&b.DepartureCity, &b.DestinationCity, &b.TravelDate, &b.Passengers,
			&b.PaymentMethod, &b.PaymentStatus, &b.ConfirmationCode, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
