package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/repository"
	"github.com/Domenick1991/skyward/internal/service/auth"
	"github.com/Domenick1991/skyward/internal/service/catalog"
	"github.com/Domenick1991/skyward/internal/service/ledger"
	"github.com/Domenick1991/skyward/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendConfirmation(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func newTestService(notifier Notifier, opts ...ServiceOption) (*Service, *ledger.LedgerService) {
	flights := repository.NewStaticFlightRepository(catalog.SampleFlights())
	ledgerService := ledger.NewLedgerService(repository.NewBookingRepository(store.NewMemoryStore()))
	return NewService(flights, ledgerService, notifier, opts...), ledgerService
}

func testSession() *auth.Session {
	return &auth.Session{User: domain.User{ID: "u1", Email: "alice@example.com"}}
}

func validDetails(method domain.PaymentMethod) DetailsForm {
	return DetailsForm{
		FullName:      "Alice Smith",
		Email:         "alice@example.com",
		Phone:         "+1 555 0100",
		Passengers:    2,
		PaymentMethod: method,
	}
}

func validCard() CardForm {
	return CardForm{
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/27",
		CVV:        "123",
		NameOnCard: "Alice Smith",
	}
}

func TestService_Start_RequiresSession(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Start(context.Background(), nil, "1")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestService_Start_UnknownFlight(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Start(context.Background(), testSession(), "999")

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestService_Start_PrefillsForm(t *testing.T) {
	service, _ := newTestService(nil)

	instance, err := service.Start(context.Background(), testSession(), "1")

	assert.NoError(t, err)
	assert.Equal(t, StepDetails, instance.Step())
	form := instance.Form()
	assert.Equal(t, "alice@example.com", form.Email)
	assert.Equal(t, 1, form.Passengers)
	// travel date defaults to the flight's departure calendar date
	assert.Equal(t, "2025-06-10", form.TravelDate)
}

func TestInstance_SubmitDetails_OnlineAdvancesToPayment(t *testing.T) {
	service, ledgerService := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")

	err := instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline))

	assert.NoError(t, err)
	assert.Equal(t, StepPayment, instance.Step())
	assert.Nil(t, instance.Booking())

	all, _ := ledgerService.GetAll(context.Background())
	assert.Empty(t, all)
}

func TestInstance_SubmitDetails_OfflineSkipsPayment(t *testing.T) {
	service, ledgerService := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")

	err := instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOffline))

	assert.NoError(t, err)
	assert.Equal(t, StepConfirmation, instance.Step())

	booking := instance.Booking()
	assert.NotNil(t, booking)
	assert.Equal(t, domain.PaymentMethodOffline, booking.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.True(t, domain.ValidConfirmationCode(booking.ConfirmationCode))

	all, _ := ledgerService.GetAll(context.Background())
	assert.Len(t, all, 1)
}

func TestInstance_SubmitDetails_ValidationErrors(t *testing.T) {
	service, _ := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")

	err := instance.SubmitDetails(context.Background(), DetailsForm{PaymentMethod: "cash"})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "fullName")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "phone")
	assert.Contains(t, verr.Fields, "paymentMethod")
	assert.Equal(t, StepDetails, instance.Step())
}

func TestInstance_SubmitDetails_ClampsPassengers(t *testing.T) {
	service, _ := newTestService(nil)

	instance, _ := service.Start(context.Background(), testSession(), "1")
	form := validDetails(domain.PaymentMethodOffline)
	form.Passengers = 0
	assert.NoError(t, instance.SubmitDetails(context.Background(), form))
	assert.Equal(t, 1, instance.Booking().Passengers)

	instance, _ = service.Start(context.Background(), testSession(), "1")
	form = validDetails(domain.PaymentMethodOffline)
	form.Passengers = 99
	assert.NoError(t, instance.SubmitDetails(context.Background(), form))
	assert.Equal(t, 10, instance.Booking().Passengers)
}

func TestInstance_SubmitDetails_DefaultsTravelDate(t *testing.T) {
	service, _ := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "2")

	form := validDetails(domain.PaymentMethodOffline)
	form.TravelDate = ""
	assert.NoError(t, instance.SubmitDetails(context.Background(), form))

	assert.Equal(t, "2025-06-12", instance.Booking().TravelDate)
}

func TestInstance_SubmitPayment_CreatesCompletedBooking(t *testing.T) {
	service, ledgerService := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline)))

	err := instance.SubmitPayment(context.Background(), validCard())

	assert.NoError(t, err)
	assert.Equal(t, StepConfirmation, instance.Step())

	booking := instance.Booking()
	assert.Equal(t, domain.PaymentMethodOnline, booking.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusCompleted, booking.PaymentStatus)
	assert.True(t, domain.ValidConfirmationCode(booking.ConfirmationCode))
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "1", booking.FlightID)
	assert.Equal(t, "New York", booking.DepartureCity)
	assert.Equal(t, "London", booking.DestinationCity)

	all, _ := ledgerService.GetAll(context.Background())
	assert.Len(t, all, 1)
}

func TestInstance_SubmitPayment_InvalidCardFields(t *testing.T) {
	service, ledgerService := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline)))

	err := instance.SubmitPayment(context.Background(), CardForm{
		CardNumber: "4111",
		ExpiryDate: "13/27",
		CVV:        "12",
	})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "cardNumber")
	assert.Contains(t, verr.Fields, "expiryDate")
	assert.Contains(t, verr.Fields, "cvv")
	assert.Contains(t, verr.Fields, "nameOnCard")

	// field errors block nothing but the current submit
	assert.Equal(t, StepPayment, instance.Step())
	all, _ := ledgerService.GetAll(context.Background())
	assert.Empty(t, all)
}

func TestInstance_SubmitPayment_BeforeDetailsRejected(t *testing.T) {
	service, _ := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")

	err := instance.SubmitPayment(context.Background(), validCard())

	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestInstance_Back_ReturnsToDetailsWithoutSideEffects(t *testing.T) {
	service, ledgerService := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline)))

	assert.NoError(t, instance.Back())
	assert.Equal(t, StepDetails, instance.Step())

	all, _ := ledgerService.GetAll(context.Background())
	assert.Empty(t, all)

	// back is only legal from the payment step
	assert.ErrorIs(t, instance.Back(), ErrInvalidStep)
}

func TestInstance_ResubmitAfterConfirmationIsNoOp(t *testing.T) {
	service, ledgerService := newTestService(nil)
	instance, _ := service.Start(context.Background(), testSession(), "1")
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline)))
	assert.NoError(t, instance.SubmitPayment(context.Background(), validCard()))

	first := instance.Booking()

	assert.NoError(t, instance.SubmitPayment(context.Background(), validCard()))
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline)))
	assert.Equal(t, first, instance.Booking())

	all, _ := ledgerService.GetAll(context.Background())
	assert.Len(t, all, 1)
}

func TestInstance_RapidDoubleSubmitCreatesOneBooking(t *testing.T) {
	service, ledgerService := newTestService(nil, WithSimulatedLatency(30*time.Millisecond))
	instance, _ := service.Start(context.Background(), testSession(), "1")
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOnline)))

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, instance.SubmitPayment(context.Background(), validCard()))
		}()
	}
	wg.Wait()

	assert.Equal(t, StepConfirmation, instance.Step())
	all, _ := ledgerService.GetAll(context.Background())
	assert.Len(t, all, 1)
}

func TestInstance_NotifierFailureDoesNotFailBooking(t *testing.T) {
	notifier := &MockNotifier{}
	notifier.On("SendConfirmation", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	service, ledgerService := newTestService(notifier)
	instance, _ := service.Start(context.Background(), testSession(), "1")

	err := instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOffline))

	assert.NoError(t, err)
	assert.Equal(t, StepConfirmation, instance.Step())
	all, _ := ledgerService.GetAll(context.Background())
	assert.Len(t, all, 1)
	notifier.AssertExpectations(t)
}

func TestInstance_NotifierReceivesCommittedBooking(t *testing.T) {
	notifier := &MockNotifier{}
	var sent *domain.Booking
	notifier.On("SendConfirmation", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(*domain.Booking)
	}).Return(nil).Once()

	service, _ := newTestService(notifier)
	instance, _ := service.Start(context.Background(), testSession(), "1")
	assert.NoError(t, instance.SubmitDetails(context.Background(), validDetails(domain.PaymentMethodOffline)))

	assert.NotNil(t, sent)
	assert.Equal(t, instance.Booking().ID, sent.ID)
	notifier.AssertExpectations(t)
}

// Full run against real components: register, login, search, book online,
// read the ledger back.
func TestBookingScenario_EndToEnd(t *testing.T) {
	ctx := context.Background()
	memStore := store.NewMemoryStore()

	authService := auth.NewAuthService(repository.NewUserRepository(memStore))
	catalogService := catalog.NewCatalogService(repository.NewStaticFlightRepository(catalog.SampleFlights()), nil)
	ledgerService := ledger.NewLedgerService(repository.NewBookingRepository(memStore))
	workflowService := NewService(repository.NewStaticFlightRepository(catalog.SampleFlights()), ledgerService, nil)

	alice, err := authService.Register(ctx, "alice@example.com", "secret1")
	assert.NoError(t, err)

	session, err := authService.Login(ctx, "alice@example.com", "secret1")
	assert.NoError(t, err)

	results, err := catalogService.Search(ctx, "New York", "London", "2025-06-10")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "SA101", results[0].FlightNumber)
	assert.Equal(t, int64(450), results[0].Price)

	instance, err := workflowService.Start(ctx, session, results[0].ID)
	assert.NoError(t, err)

	form := validDetails(domain.PaymentMethodOnline)
	form.Passengers = 2
	assert.NoError(t, instance.SubmitDetails(ctx, form))
	assert.Equal(t, int64(900), instance.TotalPrice())
	assert.NoError(t, instance.SubmitPayment(ctx, validCard()))

	booking := instance.Booking()
	assert.Equal(t, domain.PaymentStatusCompleted, booking.PaymentStatus)

	mine, err := ledgerService.ListByUser(ctx, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, booking.ID, mine[0].ID)
}
