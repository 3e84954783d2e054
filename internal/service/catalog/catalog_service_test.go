package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func newService() *CatalogService {
	return NewCatalogService(repository.NewStaticFlightRepository(SampleFlights()), nil)
}

func TestCatalogService_List_PreservesSourceOrder(t *testing.T) {
	service := newService()

	flights, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, flights, 6)
	for i, f := range flights {
		assert.Equal(t, SampleFlights()[i].ID, f.ID)
	}
}

func TestCatalogService_List_CacheMiss(t *testing.T) {
	mockCache := &MockCache{}
	service := NewCatalogService(repository.NewStaticFlightRepository(SampleFlights()), mockCache)
	ctx := context.Background()

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockCache.On("SetFlights", ctx, mock.Anything).Return(nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, flights, 6)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_List_CacheHit(t *testing.T) {
	cached := []domain.Flight{{ID: "42", FlightNumber: "SA999"}}
	mockCache := &MockCache{}
	service := NewCatalogService(repository.NewStaticFlightRepository(SampleFlights()), mockCache)
	ctx := context.Background()

	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_List_CacheErrorFallsThrough(t *testing.T) {
	mockCache := &MockCache{}
	service := NewCatalogService(repository.NewStaticFlightRepository(SampleFlights()), mockCache)
	ctx := context.Background()

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), errors.New("redis down")).Once()
	mockCache.On("SetFlights", ctx, mock.Anything).Return(nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, flights, 6)
}

func TestCatalogService_GetByID(t *testing.T) {
	service := newService()
	ctx := context.Background()

	flight, err := service.GetByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, "SA101", flight.FlightNumber)

	flight, err = service.GetByID(ctx, "999")
	assert.NoError(t, err)
	assert.Nil(t, flight)
}

func TestCatalogService_Search_CitySubstrings(t *testing.T) {
	service := newService()

	flights, err := service.Search(context.Background(), "new", "lon", "")

	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, "SA101", flights[0].FlightNumber)
	assert.Equal(t, "New York", flights[0].DepartureCity)
	assert.Equal(t, "London", flights[0].DestinationCity)
}

func TestCatalogService_Search_ByDateOnly(t *testing.T) {
	service := newService()

	flights, err := service.Search(context.Background(), "", "", "2025-06-10")

	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, "SA101", flights[0].FlightNumber)
}

func TestCatalogService_Search_EmptyCriteriaMatchEverything(t *testing.T) {
	service := newService()

	flights, err := service.Search(context.Background(), "", "", "")

	assert.NoError(t, err)
	assert.Len(t, flights, 6)
}

func TestCatalogService_Search_NoMatch(t *testing.T) {
	service := newService()

	flights, err := service.Search(context.Background(), "new", "tokyo", "")

	assert.NoError(t, err)
	assert.Empty(t, flights)
}

func TestCatalogService_Search_AllCriteriaCombined(t *testing.T) {
	service := newService()

	flights, err := service.Search(context.Background(), "New York", "London", "2025-06-10")
	assert.NoError(t, err)
	assert.Len(t, flights, 1)

	// same cities, wrong day
	flights, err = service.Search(context.Background(), "New York", "London", "2025-06-11")
	assert.NoError(t, err)
	assert.Empty(t, flights)
}
