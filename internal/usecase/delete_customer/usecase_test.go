package delete_customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	customersRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/customers"
	"github.com/m04kA/SMC-TransportService/internal/usecase/delete_booking"
)

type fakeCustomerRepo struct {
	deleted   []string
	deleteErr error
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	listErr  error
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

type fakeBookingDeleter struct {
	errs    map[string]error
	deleted []string
}

func (f *fakeBookingDeleter) Execute(_ context.Context, bookingID string) error {
	if err := f.errs[bookingID]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, bookingID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dependents() []*domain.Booking {
	return []*domain.Booking{
		{ID: "booking-1", TripID: "trip-1"},
		{ID: "booking-2"},
		{ID: "booking-3", TripID: "trip-2"},
	}
}

func TestUseCase_Execute_CascadeDeletesAllBookings(t *testing.T) {
	customers := &fakeCustomerRepo{}
	deleter := &fakeBookingDeleter{}
	uc := NewUseCase(customers, &fakeBookingRepo{bookings: dependents()}, deleter, nopLogger{})

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"cust-1"}, customers.deleted)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, []string{"booking-1", "booking-2", "booking-3"}, resp.DeletedBookings)
	assert.Equal(t, []string{"booking-1", "booking-2", "booking-3"}, deleter.deleted,
		"every booking goes through the full deletion lifecycle")
}

func TestUseCase_Execute_PartialFailureContinuesCascade(t *testing.T) {
	deleter := &fakeBookingDeleter{
		errs: map[string]error{"booking-1": delete_booking.ErrTripWriteFailed},
	}
	uc := NewUseCase(&fakeCustomerRepo{}, &fakeBookingRepo{bookings: dependents()}, deleter, nopLogger{})

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, StatusPartiallyFailed, resp.Status)
	assert.Equal(t, []string{"booking-2", "booking-3"}, resp.DeletedBookings)
	require.Len(t, resp.FailedBookings, 1)
	assert.Equal(t, "booking-1", resp.FailedBookings[0].BookingID)
}

func TestUseCase_Execute_AlreadyDeletedBookingCountsAsDeleted(t *testing.T) {
	deleter := &fakeBookingDeleter{
		errs: map[string]error{"booking-2": delete_booking.ErrBookingNotFound},
	}
	uc := NewUseCase(&fakeCustomerRepo{}, &fakeBookingRepo{bookings: dependents()}, deleter, nopLogger{})

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, []string{"booking-1", "booking-2", "booking-3"}, resp.DeletedBookings)
}

func TestUseCase_Execute_DependentLookupFailureStillDeletesCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{}
	deleter := &fakeBookingDeleter{}
	uc := NewUseCase(customers, &fakeBookingRepo{listErr: errors.New("mongo down")}, deleter, nopLogger{})

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"cust-1"}, customers.deleted, "customer delete precedes the dependent lookup")
	assert.Empty(t, deleter.deleted)
	assert.Equal(t, StatusPartiallyFailed, resp.Status)
	require.Len(t, resp.FailedBookings, 1)
	assert.Empty(t, resp.FailedBookings[0].BookingID)
	assert.Contains(t, resp.FailedBookings[0].Reason, "mongo down")
}

func TestUseCase_Execute_CustomerNotFoundAbortsCascade(t *testing.T) {
	customers := &fakeCustomerRepo{deleteErr: customersRepo.ErrCustomerNotFound}
	deleter := &fakeBookingDeleter{}
	uc := NewUseCase(customers, &fakeBookingRepo{bookings: dependents()}, deleter, nopLogger{})

	_, err := uc.Execute(context.Background(), "cust-missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Empty(t, deleter.deleted)
}

func TestUseCase_Execute_CustomerDeleteFailureAbortsCascade(t *testing.T) {
	customers := &fakeCustomerRepo{deleteErr: errors.New("mongo down")}
	deleter := &fakeBookingDeleter{}
	uc := NewUseCase(customers, &fakeBookingRepo{bookings: dependents()}, deleter, nopLogger{})

	_, err := uc.Execute(context.Background(), "cust-1")
	assert.ErrorIs(t, err, ErrCustomerWriteFailed)
	assert.Empty(t, deleter.deleted)
}
