package edit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	source    docstore.Source
	updated   *domain.Booking
	getErr    error
	updateErr error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, docstore.Source, error) {
	if f.getErr != nil {
		return nil, docstore.SourceLive, f.getErr
	}
	b := *f.booking
	return &b, f.source, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	b := *booking
	f.updated = &b
	return nil
}

type capacityUpdate struct {
	tripID       string
	remLoadCap   float64
	remCarCap    int
	paidBookings int
}

type fakeTripRepo struct {
	trips      map[string]*domain.Trip
	sources    map[string]docstore.Source
	updates    []capacityUpdate
	updateErrs map[string]error
}

func (f *fakeTripRepo) GetByID(_ context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error) {
	trip, ok := f.trips[tripID]
	if !ok || trip.TruckID != truckID {
		return nil, docstore.SourceLive, tripsRepo.ErrTripNotFound
	}
	source := f.sources[tripID]
	t := *trip
	return &t, source, nil
}

func (f *fakeTripRepo) UpdateCapacity(_ context.Context, tripID string, remLoadCap float64, remCarCap, paidBookings int) error {
	if err := f.updateErrs[tripID]; err != nil {
		return err
	}
	f.updates = append(f.updates, capacityUpdate{tripID, remLoadCap, remCarCap, paidBookings})
	return nil
}

type fakeCalendar struct {
	trips    []domain.Trip
	bookings []domain.Booking
	removed  []string
}

func (f *fakeCalendar) UpsertTrip(trip domain.Trip) { f.trips = append(f.trips, trip) }
func (f *fakeCalendar) UpsertBooking(booking domain.Booking) {
	f.bookings = append(f.bookings, booking)
}
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
			Name:       "Ivanov",
			Vehicles: []domain.VehicleSnapshot{
				{ID: "veh-1", Model: "sedan", Weight: 1500},
				{ID: "veh-2", Model: "suv", Weight: 1500},
			},
		},
		VehicleIDs: []string{"veh-1"},
		Paycheck:   domain.Paycheck{Amount: 150},
		ArrivalAt:  date(2025, 11, 20),
		PickupAt:   date(2025, 11, 1),
		TruckID:    "truck-1",
		TripID:     "trip-x",
		From:       "north",
		To:         "south",
		Season:     "winter-2025",
	}
}

func testTrips() map[string]*domain.Trip {
	return map[string]*domain.Trip{
		"trip-x": {
			ID:            "trip-x",
			TruckID:       "truck-1",
			DepartureDate: date(2025, 11, 10),
			Origin:        "north",
			RemLoadCap:    2500,
			RemCarCap:     2,
			PaidBookings:  1,
		},
		"trip-y": {
			ID:            "trip-y",
			TruckID:       "truck-2",
			DepartureDate: date(2025, 11, 12),
			Origin:        "north",
			RemLoadCap:    2000,
			RemCarCap:     2,
			PaidBookings:  0,
		},
	}
}

func moveRequest() *Request {
	return &Request{
		BookingID:  "booking-1",
		VehicleIDs: []string{"veh-1"},
		Paycheck:   domain.Paycheck{Amount: 150},
		ArrivalAt:  date(2025, 11, 20),
		PickupAt:   date(2025, 11, 1),
		TruckID:    "truck-2",
		TripID:     "trip-y",
		From:       "north",
		To:         "south",
	}
}

func newUseCase(bookings *fakeBookingRepo, trips *fakeTripRepo, cal *fakeCalendar) *UseCase {
	return NewUseCase(bookings, trips, cal, 100.0, nopLogger{})
}

func TestUseCase_Execute_TripUnchangedSkipsLedger(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{trips: testTrips()}
	cal := &fakeCalendar{}
	uc := newUseCase(bookings, trips, cal)

	req := moveRequest()
	req.TruckID = "truck-1"
	req.TripID = "trip-x"
	req.VehicleIDs = []string{"veh-1", "veh-2"}
	notes := "call before pickup"
	req.Notes = &notes

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, trips.updates, "same trip, vehicle changes do not move the ledger")
	require.NotNil(t, bookings.updated)
	assert.Equal(t, []string{"veh-1", "veh-2"}, bookings.updated.VehicleIDs)
	assert.Equal(t, &notes, resp.Notes)
	require.Len(t, cal.bookings, 1)
	assert.Empty(t, cal.trips)
}

func TestUseCase_Execute_MoveRestoresOldAndConsumesNew(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{trips: testTrips(), sources: map[string]docstore.Source{}}
	cal := &fakeCalendar{}
	uc := newUseCase(bookings, trips, cal)

	resp, err := uc.Execute(context.Background(), moveRequest())
	require.NoError(t, err)

	require.Len(t, trips.updates, 2)
	assert.Equal(t, "trip-x", trips.updates[0].tripID, "restoration goes first")
	assert.Equal(t, 4000.0, trips.updates[0].remLoadCap, "2500 + 1500")
	assert.Equal(t, 3, trips.updates[0].remCarCap)
	assert.Equal(t, 0, trips.updates[0].paidBookings)

	assert.Equal(t, "trip-y", trips.updates[1].tripID)
	assert.Equal(t, 500.0, trips.updates[1].remLoadCap, "2000 - 1500")
	assert.Equal(t, 1, trips.updates[1].remCarCap)
	assert.Equal(t, 1, trips.updates[1].paidBookings)

	assert.Equal(t, "trip-y", resp.TripID)
	require.NotNil(t, bookings.updated)
	assert.Equal(t, "trip-y", bookings.updated.TripID)
	require.Len(t, cal.trips, 2)
	require.Len(t, cal.bookings, 1)
	assert.Equal(t, []string{"trip-x/booking-1"}, cal.removed, "booking leaves the old trip event")
}

func TestUseCase_Execute_MoveToUnassigned(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{trips: testTrips()}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	req := moveRequest()
	req.TruckID = ""
	req.TripID = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, trips.updates, 1, "only the old trip is touched")
	assert.Equal(t, "trip-x", trips.updates[0].tripID)
	assert.Equal(t, 4000.0, trips.updates[0].remLoadCap)
	assert.Empty(t, resp.TripID)
}

func TestUseCase_Execute_DanglingOldTripTolerated(t *testing.T) {
	booking := testBooking()
	booking.TripID = "trip-gone"
	bookings := &fakeBookingRepo{booking: booking, source: docstore.SourceLive}
	trips := &fakeTripRepo{trips: testTrips()}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	resp, err := uc.Execute(context.Background(), moveRequest())
	require.NoError(t, err)

	require.Len(t, trips.updates, 1, "nothing to restore, only the new trip is consumed")
	assert.Equal(t, "trip-y", trips.updates[0].tripID)
	assert.Equal(t, "trip-y", resp.TripID)
}

func TestUseCase_Execute_NewTripCapacityExceeded(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{trips: testTrips()}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	req := moveRequest()
	req.VehicleIDs = []string{"veh-1", "veh-2"} // 3000 > 2000 остатка trip-y

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Empty(t, trips.updates, "rejected move must not touch the ledger")
	assert.Nil(t, bookings.updated)
}

func TestUseCase_Execute_StaleTripReadRejected(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{
		trips:   testTrips(),
		sources: map[string]docstore.Source{"trip-y": docstore.SourceCache},
	}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrStaleCapacityRead)
	assert.Empty(t, trips.updates)
}

func TestUseCase_Execute_StaleBookingReadRejectedOnMove(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceCache}
	trips := &fakeTripRepo{trips: testTrips()}
	uc := newUseCase(bookings, trips, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrStaleCapacityRead)
}

func TestUseCase_Execute_RestoreFailureDoesNotStopPipeline(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), source: docstore.SourceLive}
	trips := &fakeTripRepo{
		trips:      testTrips(),
		updateErrs: map[string]error{"trip-x": errors.New("mongo down")},
	}
	cal := &fakeCalendar{}
	uc := newUseCase(bookings, trips, cal)

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrPartialWrite)

	require.Len(t, trips.updates, 1, "consumption still attempted after failed restoration")
	assert.Equal(t, "trip-y", trips.updates[0].tripID)
	require.NotNil(t, bookings.updated, "booking write still attempted")
	assert.Equal(t, "trip-y", bookings.updated.TripID)
	require.Len(t, cal.trips, 1, "only the successful trip write reaches the calendar")
	assert.Equal(t, "trip-y", cal.trips[0].ID)
}

func TestUseCase_Execute_BookingWriteFailureSurfaced(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking:   testBooking(),
		source:    docstore.SourceLive,
		updateErr: errors.New("mongo down"),
	}
	trips := &fakeTripRepo{trips: testTrips()}
	cal := &fakeCalendar{}
	uc := newUseCase(bookings, trips, cal)

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrPartialWrite)
	require.Len(t, trips.updates, 2, "both capacity writes landed before the booking failure")
	assert.Empty(t, cal.bookings)
}
