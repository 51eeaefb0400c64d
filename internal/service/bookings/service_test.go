package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	seasonsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/seasons"
	"github.com/m04kA/SMC-TransportService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	season string
	from   time.Time
	to     time.Time
}

func (f *fakeBookingRepo) GetByPickupRange(_ context.Context, season string, from, to time.Time) ([]*domain.Booking, error) {
	f.season, f.from, f.to = season, from, to
	return f.bookings, f.err
}

type fakeSeasons struct {
	season *domain.Season
	err    error
}

func (f *fakeSeasons) GetActive(_ context.Context) (*domain.Season, error) {
	return f.season, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_ListByPickupRange_QueriesActiveSeason(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "booking-1", PickupAt: date(2025, 11, 3)},
		{ID: "booking-2", PickupAt: date(2025, 11, 5)},
	}}
	svc := NewService(repo, &fakeSeasons{season: &domain.Season{SeasonName: "winter", Year: 2025, IsActive: true}}, nopLogger{})

	resp, err := svc.ListByPickupRange(context.Background(), &models.PickupRangeRequest{
		From: date(2025, 11, 1),
		To:   date(2025, 11, 30),
	})
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, "booking-1", resp[0].ID)
	assert.Equal(t, "winter-2025", repo.season, "range query is scoped to the active season")
	assert.Equal(t, date(2025, 11, 1), repo.from)
	assert.Equal(t, date(2025, 11, 30), repo.to)
}

func TestService_ListByPickupRange_InvalidRange(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSeasons{}, nopLogger{})

	_, err := svc.ListByPickupRange(context.Background(), &models.PickupRangeRequest{
		From: date(2025, 11, 30),
		To:   date(2025, 11, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByPickupRange_NoActiveSeason(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSeasons{err: seasonsRepo.ErrNoActiveSeason}, nopLogger{})

	_, err := svc.ListByPickupRange(context.Background(), &models.PickupRangeRequest{
		From: date(2025, 11, 1),
		To:   date(2025, 11, 30),
	})
	assert.ErrorIs(t, err, ErrNoActiveSeason)
}

func TestService_ListByPickupRange_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("mongo down")}
	svc := NewService(repo, &fakeSeasons{season: &domain.Season{SeasonName: "winter", Year: 2025, IsActive: true}}, nopLogger{})

	_, err := svc.ListByPickupRange(context.Background(), &models.PickupRangeRequest{
		From: date(2025, 11, 1),
		To:   date(2025, 11, 30),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
