package delete_trip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	bookingsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/bookings"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
)

type fakeTripRepo struct {
	deleted   []string
	deleteErr error
}

func (f *fakeTripRepo) Delete(_ context.Context, _, tripID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, tripID)
	return nil
}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	listErr    error
	deleteErrs map[string]error
	deleted    []string
}

func (f *fakeBookingRepo) GetByTripID(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if err := f.deleteErrs[id]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCalendar struct {
	removed []string
}

func (f *fakeCalendar) RemoveTrip(tripID string) { f.removed = append(f.removed, tripID) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dependents() []*domain.Booking {
	return []*domain.Booking{
		{ID: "booking-1", TripID: "trip-1"},
		{ID: "booking-2", TripID: "trip-1"},
		{ID: "booking-3", TripID: "trip-1"},
	}
}

func TestUseCase_Execute_CascadeDeletesAllDependents(t *testing.T) {
	trips := &fakeTripRepo{}
	bookings := &fakeBookingRepo{bookings: dependents()}
	cal := &fakeCalendar{}
	uc := NewUseCase(trips, bookings, cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), "truck-1", "trip-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"trip-1"}, trips.deleted)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, []string{"booking-1", "booking-2", "booking-3"}, resp.DeletedBookings)
	assert.Empty(t, resp.FailedBookings)
	assert.Equal(t, []string{"trip-1"}, cal.removed)
}

func TestUseCase_Execute_PartialFailureContinuesCascade(t *testing.T) {
	trips := &fakeTripRepo{}
	bookings := &fakeBookingRepo{
		bookings:   dependents(),
		deleteErrs: map[string]error{"booking-2": errors.New("mongo down")},
	}
	uc := NewUseCase(trips, bookings, &fakeCalendar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), "truck-1", "trip-1")
	require.NoError(t, err)

	assert.Equal(t, StatusPartiallyFailed, resp.Status)
	assert.Equal(t, []string{"booking-1", "booking-3"}, resp.DeletedBookings)
	require.Len(t, resp.FailedBookings, 1)
	assert.Equal(t, "booking-2", resp.FailedBookings[0].BookingID)
	assert.Contains(t, resp.FailedBookings[0].Reason, "mongo down")
}

func TestUseCase_Execute_AlreadyDeletedBookingCountsAsDeleted(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings:   dependents(),
		deleteErrs: map[string]error{"booking-3": bookingsRepo.ErrBookingNotFound},
	}
	uc := NewUseCase(&fakeTripRepo{}, bookings, &fakeCalendar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), "truck-1", "trip-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, []string{"booking-1", "booking-2", "booking-3"}, resp.DeletedBookings)
}

func TestUseCase_Execute_DependentLookupFailureStillDeletesTrip(t *testing.T) {
	trips := &fakeTripRepo{}
	bookings := &fakeBookingRepo{listErr: errors.New("mongo down")}
	cal := &fakeCalendar{}
	uc := NewUseCase(trips, bookings, cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), "truck-1", "trip-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"trip-1"}, trips.deleted, "trip delete precedes the dependent lookup")
	assert.Equal(t, []string{"trip-1"}, cal.removed)
	assert.Equal(t, StatusPartiallyFailed, resp.Status)
	assert.Empty(t, resp.DeletedBookings)
	require.Len(t, resp.FailedBookings, 1)
	assert.Empty(t, resp.FailedBookings[0].BookingID)
	assert.Contains(t, resp.FailedBookings[0].Reason, "mongo down")
}

func TestUseCase_Execute_TripNotFoundAbortsCascade(t *testing.T) {
	trips := &fakeTripRepo{deleteErr: tripsRepo.ErrTripNotFound}
	bookings := &fakeBookingRepo{bookings: dependents()}
	uc := NewUseCase(trips, bookings, &fakeCalendar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "truck-1", "trip-missing")
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.Empty(t, bookings.deleted, "dependents untouched when the trip delete fails")
}

func TestUseCase_Execute_TripDeleteFailureAbortsCascade(t *testing.T) {
	trips := &fakeTripRepo{deleteErr: errors.New("mongo down")}
	bookings := &fakeBookingRepo{bookings: dependents()}
	cal := &fakeCalendar{}
	uc := NewUseCase(trips, bookings, cal, nopLogger{})

	_, err := uc.Execute(context.Background(), "truck-1", "trip-1")
	assert.ErrorIs(t, err, ErrTripWriteFailed)
	assert.Empty(t, bookings.deleted)
	assert.Empty(t, cal.removed)
}
