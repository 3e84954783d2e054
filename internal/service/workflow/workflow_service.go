package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/repository"
	"github.com/Domenick1991/skyward/internal/service/auth"
	"github.com/Domenick1991/skyward/internal/service/ledger"
	"github.com/Domenick1991/skyward/pkg/logger"
	"github.com/google/uuid"
)

// Step is the workflow position. Transitions only move forward, except
// Back from StepPayment; StepConfirmation is terminal.
type Step int

const (
	StepDetails Step = iota
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

var ErrInvalidStep = errors.New("operation not allowed in current workflow step")

const (
	minPassengers = 1
	maxPassengers = 10
)

// Notifier delivers the booking confirmation. It runs after the ledger
// commit and its failure never rolls back or fails the booking.
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) error
}

type DetailsForm struct {
	FullName      string
	Email         string
	Phone         string
	Passengers    int
	TravelDate    string
	PaymentMethod domain.PaymentMethod
}

type CardForm struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

type ServiceOption func(*Service)

// WithSimulatedLatency delays the booking-creation procedure to mimic a
// network round-trip. The re-entry guard holds across the delay.
func WithSimulatedLatency(d time.Duration) ServiceOption {
	return func(s *Service) { s.latency = d }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *Service) { s.newID = newID }
}

// Service starts workflow instances. One instance produces at most one
// booking.
type Service struct {
	flights  repository.FlightRepository
	ledger   ledger.LedgerUseCase
	notifier Notifier
	latency  time.Duration
	now      func() time.Time
	newID    func() string
}

func NewService(flights repository.FlightRepository, ledger ledger.LedgerUseCase, notifier Notifier, opts ...ServiceOption) *Service {
	s := &Service{
		flights:  flights,
		ledger:   ledger,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a workflow at StepDetails. The caller must hold an
// authenticated session and the flight must exist; otherwise the workflow
// never begins and the caller is expected to redirect to login or search.
func (s *Service) Start(ctx context.Context, session *auth.Session, flightID string) (*Instance, error) {
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, domain.ErrFlightNotFound
	}

	return &Instance{
		svc:    s,
		user:   session.User,
		flight: *flight,
		step:   StepDetails,
		form: DetailsForm{
			Email:      session.User.Email,
			FullName:   session.User.Name,
			Passengers: minPassengers,
			TravelDate: flight.DepartureTime.In(time.Local).Format("2006-01-02"),
		},
	}, nil
}

// Instance is one run of the booking workflow, from StepDetails to
// StepConfirmation or abandonment.
type Instance struct {
	svc    *Service
	user   domain.User
	flight domain.Flight

	mu         sync.Mutex
	step       Step
	form       DetailsForm
	booking    *domain.Booking
	submitting bool
}

func (w *Instance) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Instance) Flight() domain.Flight {
	return w.flight
}

// Form returns the current details form, pre-filled from the session user
// and the selected flight until the caller submits their own values.
func (w *Instance) Form() DetailsForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Booking returns the created booking, or nil before StepConfirmation.
func (w *Instance) Booking() *domain.Booking {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booking
}

// TotalPrice is the displayable total for the current passenger count.
func (w *Instance) TotalPrice() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flight.Price * int64(w.form.Passengers)
}

// SubmitDetails validates the passenger form. With online payment the
// workflow advances to StepPayment; with offline payment the booking is
// created immediately and the workflow jumps to StepConfirmation.
func (w *Instance) SubmitDetails(ctx context.Context, form DetailsForm) error {
	w.mu.Lock()
	if w.step == StepConfirmation {
		w.mu.Unlock()
		return nil
	}
	if w.step != StepDetails {
		w.mu.Unlock()
		return ErrInvalidStep
	}

	if err := validateDetails(&form); err != nil {
		w.mu.Unlock()
		return err
	}
	if form.TravelDate == "" {
		form.TravelDate = w.flight.DepartureTime.In(time.Local).Format("2006-01-02")
	}
	w.form = form

	if form.PaymentMethod == domain.PaymentMethodOnline {
		w.step = StepPayment
		w.mu.Unlock()
		return nil
	}
	return w.createBookingLocked(ctx)
}

// SubmitPayment checks the card fields for format only; no gateway is
// involved. On success the booking is created and the workflow reaches
// StepConfirmation. Re-submitting after confirmation is a no-op.
func (w *Instance) SubmitPayment(ctx context.Context, card CardForm) error {
	w.mu.Lock()
	if w.step == StepConfirmation {
		w.mu.Unlock()
		return nil
	}
	if w.step != StepPayment {
		w.mu.Unlock()
		return ErrInvalidStep
	}

	if err := validateCard(card); err != nil {
		w.mu.Unlock()
		return err
	}
	return w.createBookingLocked(ctx)
}

// Back returns from StepPayment to StepDetails without side effects.
func (w *Instance) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepPayment {
		return ErrInvalidStep
	}
	w.step = StepDetails
	return nil
}

// createBookingLocked runs the shared booking-creation procedure. The
// caller holds w.mu; the lock is released during the simulated latency and
// the ledger write, with the submitting flag blocking re-entry so rapid
// double submission produces exactly one booking.
func (w *Instance) createBookingLocked(ctx context.Context) error {
	if w.booking != nil || w.submitting {
		w.mu.Unlock()
		return nil
	}
	w.submitting = true
	form := w.form
	w.mu.Unlock()

	if w.svc.latency > 0 {
		time.Sleep(w.svc.latency)
	}

	status := domain.PaymentStatusPending
	if form.PaymentMethod == domain.PaymentMethodOnline {
		status = domain.PaymentStatusCompleted
	}

	booking := &domain.Booking{
		ID:               w.svc.newID(),
		UserID:           w.user.ID,
		FlightID:         w.flight.ID,
		FullName:         form.FullName,
		Email:            form.Email,
		Phone:            form.Phone,
		DepartureCity:    w.flight.DepartureCity,
		DestinationCity:  w.flight.DestinationCity,
		TravelDate:       form.TravelDate,
		Passengers:       form.Passengers,
		PaymentMethod:    form.PaymentMethod,
		PaymentStatus:    status,
		ConfirmationCode: domain.NewConfirmationCode(),
		CreatedAt:        w.svc.now(),
	}

	if err := w.svc.ledger.Append(ctx, booking); err != nil {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
		return err
	}

	// Fire-and-forget: a failed confirmation send never fails the booking.
	if w.svc.notifier != nil {
		if err := w.svc.notifier.SendConfirmation(ctx, booking); err != nil {
			logger.Warn("confirmation send failed", "booking_id", booking.ID, "error", err)
		}
	}

	w.mu.Lock()
	w.booking = booking
	w.step = StepConfirmation
	w.submitting = false
	w.mu.Unlock()
	return nil
}

func validateDetails(form *DetailsForm) error {
	verr := domain.NewValidationError()
	if strings.TrimSpace(form.FullName) == "" {
		verr.Add("fullName", "full name is required")
	}
	if strings.TrimSpace(form.Email) == "" {
		verr.Add("email", "email is required")
	}
	if strings.TrimSpace(form.Phone) == "" {
		verr.Add("phone", "phone is required")
	}
	switch form.PaymentMethod {
	case domain.PaymentMethodOnline, domain.PaymentMethodOffline:
	default:
		verr.Add("paymentMethod", "payment method must be online or offline")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if form.Passengers < minPassengers {
		form.Passengers = minPassengers
	}
	if form.Passengers > maxPassengers {
		form.Passengers = maxPassengers
	}
	return nil
}
