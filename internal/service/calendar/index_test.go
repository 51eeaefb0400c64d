package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/pkg/ptr"
)

type fakeTripRepo struct {
	trips []*domain.Trip
	err   error
}

func (f *fakeTripRepo) GetBySeason(_ context.Context, _ string) ([]*domain.Trip, error) {
	return f.trips, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetBySeason(_ context.Context, _ string) ([]*domain.Booking, error) {
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

func makeTrip(id string, departure time.Time) domain.Trip {
	return domain.Trip{
		ID:            id,
		TruckID:       "truck-1",
		DepartureDate: departure,
		Origin:        "north",
		Destination:   "south",
		RemLoadCap:    4000,
		RemCarCap:     3,
		Season:        "winter-2025",
	}
}

func makeBooking(id, tripID string) domain.Booking {
	return domain.Booking{
		ID:     id,
		TripID: tripID,
		Season: "winter-2025",
	}
}

func newTestIndex(trips []*domain.Trip, bookings []*domain.Booking) *Index {
	return NewIndex(
		&fakeTripRepo{trips: trips},
		&fakeBookingRepo{bookings: bookings},
		&fakeSeasons{season: &domain.Season{SeasonName: "winter", Year: 2025, IsActive: true}},
		nopLogger{},
	)
}

func TestIndex_UpsertTrip_BucketsByDisplayDate(t *testing.T) {
	idx := newTestIndex(nil, nil)

	trip := makeTrip("t1", date(2025, 11, 10))
	idx.UpsertTrip(trip)

	got, err := idx.Query(date(2025, 11, 1), date(2025, 11, 30))
	require.NoError(t, err)
	require.Len(t, got["2025-11-10"], 1)
	assert.Equal(t, "trip-t1", got["2025-11-10"][0].ID)

	// DelayDate переопределяет корзину отображения
	trip.DelayDate = ptr.Ptr(date(2025, 11, 12))
	idx.UpsertTrip(trip)

	got, err = idx.Query(date(2025, 11, 1), date(2025, 11, 30))
	require.NoError(t, err)
	assert.Empty(t, got["2025-11-10"], "old bucket must be pruned")
	require.Len(t, got["2025-11-12"], 1)
}

func TestIndex_UpsertTrip_PreservesBookings(t *testing.T) {
	idx := newTestIndex(nil, nil)

	trip := makeTrip("t1", date(2025, 11, 10))
	idx.UpsertTrip(trip)
	idx.UpsertBooking(makeBooking("b1", "t1"))

	// Перенос рейса на другую дату не теряет его бронирования
	trip.DelayDate = ptr.Ptr(date(2025, 11, 20))
	idx.UpsertTrip(trip)

	got, err := idx.Query(date(2025, 11, 20), date(2025, 11, 20))
	require.NoError(t, err)
	require.Len(t, got["2025-11-20"], 1)
	require.Len(t, got["2025-11-20"][0].Bookings, 1)
	assert.Equal(t, "b1", got["2025-11-20"][0].Bookings[0].ID)
}

func TestIndex_RemoveTrip_ScansAllBuckets(t *testing.T) {
	idx := newTestIndex(nil, nil)

	idx.UpsertTrip(makeTrip("t1", date(2025, 11, 10)))
	idx.UpsertTrip(makeTrip("t2", date(2025, 11, 11)))

	idx.RemoveTrip("t1")

	got, err := idx.Query(date(2025, 11, 1), date(2025, 11, 30))
	require.NoError(t, err)
	assert.Empty(t, got["2025-11-10"])
	assert.Len(t, got["2025-11-11"], 1)
}

func TestIndex_BookingSplice(t *testing.T) {
	idx := newTestIndex(nil, nil)
	idx.UpsertTrip(makeTrip("t1", date(2025, 11, 10)))

	b := makeBooking("b1", "t1")
	idx.UpsertBooking(b)

	// Обновление существующего бронирования заменяет его, а не дублирует
	note := "updated"
	b.Notes = &note
	idx.UpsertBooking(b)

	got, err := idx.Query(date(2025, 11, 10), date(2025, 11, 10))
	require.NoError(t, err)
	require.Len(t, got["2025-11-10"][0].Bookings, 1)
	require.NotNil(t, got["2025-11-10"][0].Bookings[0].Notes)

	idx.RemoveBooking("t1", "b1")
	got, err = idx.Query(date(2025, 11, 10), date(2025, 11, 10))
	require.NoError(t, err)
	assert.Empty(t, got["2025-11-10"][0].Bookings)
}

func TestIndex_UpsertBooking_UnassignedIgnored(t *testing.T) {
	idx := newTestIndex(nil, nil)
	idx.UpsertTrip(makeTrip("t1", date(2025, 11, 10)))

	idx.UpsertBooking(makeBooking("b1", ""))

	got, err := idx.Query(date(2025, 11, 10), date(2025, 11, 10))
	require.NoError(t, err)
	assert.Empty(t, got["2025-11-10"][0].Bookings)
}

func TestIndex_RebuildMatchesIncrementalPatching(t *testing.T) {
	trip1 := makeTrip("t1", date(2025, 11, 10))
	trip2 := makeTrip("t2", date(2025, 11, 10))
	trip3 := makeTrip("t3", date(2025, 12, 1))
	b1 := makeBooking("b1", "t1")
	b2 := makeBooking("b2", "t1")
	b3 := makeBooking("b3", "t3")

	// Индекс, наполненный инкрементальными правками
	incremental := newTestIndex(nil, nil)
	incremental.UpsertTrip(trip1)
	incremental.UpsertTrip(trip2)
	incremental.UpsertTrip(trip3)
	incremental.UpsertBooking(b1)
	incremental.UpsertBooking(b2)
	incremental.UpsertBooking(b3)
	// Лишние операции, которые должны быть нейтральными
	incremental.UpsertTrip(trip2)
	incremental.RemoveBooking("t1", "no-such-booking")

	// Индекс, перестроенный с нуля из тех же данных
	rebuilt := newTestIndex(
		[]*domain.Trip{&trip1, &trip2, &trip3},
		[]*domain.Booking{&b1, &b2, &b3},
	)
	require.NoError(t, rebuilt.Rebuild(context.Background()))

	from, to := date(2025, 11, 1), date(2025, 12, 31)
	gotIncremental, err := incremental.Query(from, to)
	require.NoError(t, err)
	gotRebuilt, err := rebuilt.Query(from, to)
	require.NoError(t, err)

	assert.Equal(t, gotRebuilt, gotIncremental)
}

func TestIndex_Rebuild_Idempotent(t *testing.T) {
	trip := makeTrip("t1", date(2025, 11, 10))
	b := makeBooking("b1", "t1")

	idx := newTestIndex([]*domain.Trip{&trip}, []*domain.Booking{&b})

	require.NoError(t, idx.Rebuild(context.Background()))
	first, err := idx.Query(date(2025, 11, 1), date(2025, 11, 30))
	require.NoError(t, err)

	require.NoError(t, idx.Rebuild(context.Background()))
	second, err := idx.Query(date(2025, 11, 1), date(2025, 11, 30))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIndex_Query_InvalidRange(t *testing.T) {
	idx := newTestIndex(nil, nil)

	_, err := idx.Query(date(2025, 11, 30), date(2025, 11, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIndex_Query_ReturnsCopies(t *testing.T) {
	idx := newTestIndex(nil, nil)
	idx.UpsertTrip(makeTrip("t1", date(2025, 11, 10)))
	idx.UpsertBooking(makeBooking("b1", "t1"))

	got, err := idx.Query(date(2025, 11, 10), date(2025, 11, 10))
	require.NoError(t, err)
	got["2025-11-10"][0].Bookings[0].ID = "mutated"

	again, err := idx.Query(date(2025, 11, 10), date(2025, 11, 10))
	require.NoError(t, err)
	assert.Equal(t, "b1", again["2025-11-10"][0].Bookings[0].ID)
}
