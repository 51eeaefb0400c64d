package delete_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	bookingsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/bookings"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	source    docstore.Source
	deleted   []string
	getErr    error
	deleteErr error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, docstore.Source, error) {
	if f.getErr != nil {
		return nil, docstore.SourceLive, f.getErr
	}
	b := *f.booking
	return &b, f.source, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type capacityUpdate struct {
	tripID       string
	remLoadCap   float64
	remCarCap    int
	paidBookings int
}

type fakeTripRepo struct {
	trip      *domain.Trip
	source    docstore.Source
	getErr    error
	updateErr error
	updates   []capacityUpdate
}

func (f *fakeTripRepo) GetByID(_ context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error) {
	if f.getErr != nil {
		return nil, docstore.SourceLive, f.getErr
	}
	if f.trip == nil || f.trip.ID != tripID || f.trip.TruckID != truckID {
		return nil, docstore.SourceLive, tripsRepo.ErrTripNotFound
	}
	t := *f.trip
	return &t, f.source, nil
}

func (f *fakeTripRepo) UpdateCapacity(_ context.Context, tripID string, remLoadCap float64, remCarCap, paidBookings int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, capacityUpdate{tripID, remLoadCap, remCarCap, paidBookings})
	return nil
}

type fakeCalendar struct {
	trips   []domain.Trip
	removed []string
}

func (f *fakeCalendar) UpsertTrip(trip domain.Trip) { f.trips = append(f.trips, trip) }
func (f *fakeCalendar) RemoveBooking(tripID, bookingID string) {
	f.removed = append(f.removed, tripID+"/"+bookingID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID: "booking-1",
		Customer: domain.CustomerSnapshot{
			CustomerID: "cust-1",
			Vehicles: []domain.VehicleSnapshot{
				{ID: "veh-1", Weight: 1500},
				{ID: "veh-2", Weight: 1500},
			},
		},
		VehicleIDs: []string{"veh-1", "veh-2"},
		Paycheck:   domain.Paycheck{Amount: 150},
		ArrivalAt:  date(2025, 11, 20),
		PickupAt:   date(2025, 11, 1),
		TruckID:    "truck-1",
		TripID:     "trip-1",
		Season:     "winter-2025",
	}
}

func testTrip() *domain.Trip {
	return &domain.Trip{
		ID:           "trip-1",
		TruckID:      "truck-1",
		RemLoadCap:   1000,
		RemCarCap:    1,
		PaidBookings: 1,
	}
}

func newUseCase(bookings *fakeBookingRepo, trips *fakeTripRepo, cal *fakeCalendar) *UseCase {
	return NewUseCase(bookings, trips, cal, 100.0, nopLogger{})
}

func TestUseCase_Execute_RestoresTripCapacity(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{trip: testTrip(), source: docstore.SourceLive}
	cal := &fakeCalendar{}
	uc := newUseCase(bookings, trips, cal)

	err := uc.Execute(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"booking-1"}, bookings.deleted)
	require.Len(t, trips.updates, 1)
	assert.Equal(t, 4000.0, trips.updates[0].remLoadCap, "1000 + 1500 + 1500")
	assert.Equal(t, 3, trips.updates[0].remCarCap)
	assert.Equal(t, 0, trips.updates[0].paidBookings)

	assert.Equal(t, []string{"trip-1/booking-1"}, cal.removed)
	require.Len(t, cal.trips, 1)
	assert.Equal(t, 4000.0, cal.trips[0].RemLoadCap)
}

func TestUseCase_Execute_UnassignedBookingSkipsLedger(t *testing.T) {
	booking := testBooking()
	booking.TruckID = ""
	booking.TripID = ""
	bookings := &fakeBookingRepo{booking: booking, source: docstore.SourceLive}
	trips := &fakeTripRepo{}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	err := uc.Execute(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"booking-1"}, bookings.deleted)
	assert.Empty(t, trips.updates)
}

func TestUseCase_Execute_DanglingTripTolerated(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	err := uc.Execute(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"booking-1"}, bookings.deleted, "booking is deleted even without its trip")
	assert.Empty(t, trips.updates)
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingsRepo.ErrBookingNotFound}
	uc := newUseCase(bookings, &fakeTripRepo{}, &fakeCalendar{})

	err := uc.Execute(context.Background(), "booking-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_StaleBookingReadRejected(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceCache}
	uc := newUseCase(bookings, &fakeTripRepo{trip: testTrip()}, &fakeCalendar{})

	err := uc.Execute(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrStaleCapacityRead)
	assert.Empty(t, bookings.deleted)
}

func TestUseCase_Execute_DeleteFailureKeepsLedgerUntouched(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking:   testBooking(),
		source:    docstore.SourceLive,
		deleteErr: errors.New("mongo down"),
	}
	trips := &fakeTripRepo{trip: testTrip(), source: docstore.SourceLive}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	err := uc.Execute(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrBookingWriteFailed)
	assert.Empty(t, trips.updates)
}

func TestUseCase_Execute_RestoreFailureDoesNotRecreateBooking(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{trip: testTrip(), source: docstore.SourceLive, updateErr: errors.New("mongo down")}
	cal := &fakeCalendar{}
	uc := newUseCase(bookings, trips, cal)

	err := uc.Execute(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrTripWriteFailed)
	assert.Equal(t, []string{"booking-1"}, bookings.deleted, "deletion stays committed")
	assert.Empty(t, cal.trips)
}
