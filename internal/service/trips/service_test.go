package trips

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

type fakeTripRepo struct {
	trips     []*domain.Trip
	created   *domain.Trip
	updated   *domain.Trip
	err       error
	updateErr error
}

func (f *fakeTripRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	trip.ID = "trip-new"
	f.created = trip
	return trip, nil
}

func (f *fakeTripRepo) GetByID(_ context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error) {
	for _, t := range f.trips {
		if t.ID == tripID && t.TruckID == truckID {
			return t, docstore.SourceLive, nil
		}
	}
	return nil, docstore.SourceLive, f.err
}

func (f *fakeTripRepo) GetBySeason(_ context.Context, _ string) ([]*domain.Trip, error) {
	return f.trips, f.err
}

func (f *fakeTripRepo) Update(_ context.Context, trip *domain.Trip) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = trip
	return nil
}

type fakeTruckRepo struct {
	truck *domain.Truck
	err   error
}

func (f *fakeTruckRepo) GetByID(_ context.Context, _ string) (*domain.Truck, error) {
	return f.truck, f.err
}

type fakeSeasons struct {
	season *domain.Season
	err    error
}

func (f *fakeSeasons) GetActive(_ context.Context) (*domain.Season, error) {
	return f.season, f.err
}

type fakeCalendar struct {
	upserted []domain.Trip
}

func (f *fakeCalendar) UpsertTrip(trip domain.Trip) {
	f.upserted = append(f.upserted, trip)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Create_InitializesCapacityFromTruck(t *testing.T) {
	tripRepo := &fakeTripRepo{}
	cal := &fakeCalendar{}
	svc := NewService(
		tripRepo,
		&fakeTruckRepo{truck: &domain.Truck{ID: "truck-1", LoadCapacity: 12000, CarCapacity: 8}},
		&fakeSeasons{season: &domain.Season{SeasonName: "winter", Year: 2025, IsActive: true}},
		cal,
		nopLogger{},
	)

	resp, err := svc.Create(context.Background(), &models.CreateTripRequest{
		TruckID:       "truck-1",
		LoadNumber:    3,
		DepartureDate: date(2025, 11, 10),
		ArrivalDate:   date(2025, 11, 14),
		Origin:        "north",
		Destination:   "south",
	})
	require.NoError(t, err)

	assert.Equal(t, 12000.0, resp.RemLoadCap)
	assert.Equal(t, 8, resp.RemCarCap)
	assert.Equal(t, "winter-2025", resp.Season)
	require.Len(t, cal.upserted, 1, "calendar must be patched on trip creation")
	assert.Equal(t, "trip-new", cal.upserted[0].ID)
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc := NewService(&fakeTripRepo{}, &fakeTruckRepo{}, &fakeSeasons{}, &fakeCalendar{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTripRequest{
		TruckID:       "truck-1",
		LoadNumber:    3,
		DepartureDate: date(2025, 11, 10),
		ArrivalDate:   date(2025, 11, 9),
		Origin:        "north",
		Destination:   "south",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_SetsDelayDateAndPatchesCalendar(t *testing.T) {
	delay := date(2025, 11, 18)
	tripRepo := &fakeTripRepo{trips: []*domain.Trip{{
		ID:            "trip-1",
		TruckID:       "truck-1",
		LoadNumber:    3,
		DepartureDate: date(2025, 11, 10),
		ArrivalDate:   date(2025, 11, 14),
		Origin:        "north",
		Destination:   "south",
		RemLoadCap:    2500,
		RemCarCap:     2,
		Season:        "winter-2025",
		PaidBookings:  1,
	}}}
	cal := &fakeCalendar{}
	svc := NewService(tripRepo, &fakeTruckRepo{}, &fakeSeasons{}, cal, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateTripRequest{
		TruckID:       "truck-1",
		TripID:        "trip-1",
		LoadNumber:    3,
		DepartureDate: date(2025, 11, 10),
		ArrivalDate:   date(2025, 11, 14),
		Origin:        "north",
		Destination:   "south",
		DelayDate:     &delay,
	})
	require.NoError(t, err)

	require.NotNil(t, tripRepo.updated)
	require.NotNil(t, resp.DelayDate)
	assert.Equal(t, delay, *resp.DelayDate)
	// Счетчики емкости не затронуты обновлением описательных полей
	assert.Equal(t, 2500.0, resp.RemLoadCap)
	assert.Equal(t, 2, resp.RemCarCap)
	assert.Equal(t, 1, resp.PaidBookings)
	require.Len(t, cal.upserted, 1)
	assert.Equal(t, delay, cal.upserted[0].DisplayDate())
}

func TestService_Update_TripNotFound(t *testing.T) {
	svc := NewService(&fakeTripRepo{err: tripsRepo.ErrTripNotFound}, &fakeTruckRepo{}, &fakeSeasons{}, &fakeCalendar{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateTripRequest{
		TruckID:       "truck-1",
		TripID:        "missing",
		LoadNumber:    3,
		DepartureDate: date(2025, 11, 10),
		ArrivalDate:   date(2025, 11, 14),
		Origin:        "north",
		Destination:   "south",
	})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestIsSelectable(t *testing.T) {
	trip := &domain.Trip{
		Origin:        "north",
		DepartureDate: date(2025, 11, 10),
		RemLoadCap:    1500,
		RemCarCap:     2,
	}
	pickup, arrival := date(2025, 11, 8), date(2025, 11, 12)

	assert.True(t, IsSelectable(trip, "north", pickup, arrival, 1500, 2))
	// Пустой регион не фильтрует
	assert.True(t, IsSelectable(trip, "", pickup, arrival, 100, 1))
	// Несовпадение маршрута
	assert.False(t, IsSelectable(trip, "south", pickup, arrival, 100, 1))
	// Вне окна дат
	assert.False(t, IsSelectable(trip, "north", date(2025, 11, 11), date(2025, 11, 12), 100, 1))
	// Количество машин превышает остаток мест: 3 > 2
	assert.False(t, IsSelectable(trip, "north", pickup, arrival, 100, 3))
	// Вес превышает остаток грузоподъемности
	assert.False(t, IsSelectable(trip, "north", pickup, arrival, 1500.5, 1))
}

func TestService_ListSelectable_FiltersTrips(t *testing.T) {
	tripRepo := &fakeTripRepo{trips: []*domain.Trip{
		{ID: "t1", Origin: "north", DepartureDate: date(2025, 11, 10), RemLoadCap: 4000, RemCarCap: 3},
		{ID: "t2", Origin: "south", DepartureDate: date(2025, 11, 10), RemLoadCap: 4000, RemCarCap: 3},
		{ID: "t3", Origin: "north", DepartureDate: date(2025, 12, 1), RemLoadCap: 4000, RemCarCap: 3},
		{ID: "t4", Origin: "north", DepartureDate: date(2025, 11, 10), RemLoadCap: 1000, RemCarCap: 3},
	}}
	svc := NewService(
		tripRepo,
		&fakeTruckRepo{},
		&fakeSeasons{season: &domain.Season{SeasonName: "winter", Year: 2025, IsActive: true}},
		&fakeCalendar{},
		nopLogger{},
	)

	resp, err := svc.ListSelectable(context.Background(), &models.SelectableTripsRequest{
		Origin:         "north",
		DesiredPickup:  date(2025, 11, 8),
		DesiredArrival: date(2025, 11, 12),
		VehicleCount:   2,
		VehicleWeight:  3000,
	})
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, "t1", resp[0].ID)
}
