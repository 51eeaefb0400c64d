package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// Index производный календарный индекс: dateKey (YYYY-MM-DD) -> упорядоченный
// список событий. Событие: рейс плюс его текущие бронирования.
// Индекс является чистой функцией от текущих множеств рейсов и бронирований активного
// сезона: инкрементальные правки вносят пайплайны после своих записей,
// а Rebuild перестраивает индекс с нуля, это авторитетный путь восстановления,
// если инкрементальные правки разошлись с хранилищем
type Index struct {
	mu      sync.RWMutex
	buckets map[string][]*domain.CalendarEvent

	tripRepo    TripRepository
	bookingRepo BookingRepository
	seasons     SeasonProvider
	logger      Logger
}

// NewIndex создает пустой индекс
func NewIndex(tripRepo TripRepository, bookingRepo BookingRepository, seasons SeasonProvider, logger Logger) *Index {
	return &Index{
		buckets:     make(map[string][]*domain.CalendarEvent),
		tripRepo:    tripRepo,
		bookingRepo: bookingRepo,
		seasons:     seasons,
		logger:      logger,
	}
}

// UpsertTrip вносит рейс в индекс: событие с тем же синтетическим id удаляется
// из старой корзины, корзина пересчитывается от DelayDate ?? DepartureDate,
// событие вставляется в новую корзину; бронирования события сохраняются
func (i *Index) UpsertTrip(trip domain.Trip) {
	i.mu.Lock()
	defer i.mu.Unlock()

	eventID := domain.CalendarEventID(trip.ID)
	removed := i.removeEventLocked(eventID)

	event := &domain.CalendarEvent{ID: eventID, Trip: trip}
	if removed != nil {
		event.Bookings = removed.Bookings
	}

	key := domain.DateKey(trip.DisplayDate())
	i.buckets[key] = insertSorted(i.buckets[key], event)
}

// RemoveTrip удаляет событие рейса, в какой бы корзине оно ни находилось
// Полный проход по корзинам: дата рейса могла измениться после последнего обновления индекса
func (i *Index) RemoveTrip(tripID string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.removeEventLocked(domain.CalendarEventID(tripID))
}

// UpsertBooking вносит бронирование в событие владеющего рейса
// Корзина события не меняется; бронирование без рейса в индекс не попадает
func (i *Index) UpsertBooking(booking domain.Booking) {
	if !booking.IsAssigned() {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	event := i.findEventLocked(domain.CalendarEventID(booking.TripID))
	if event == nil {
		// Событие рейса еще не создано или рейс удален, инкрементальная правка
		// невозможна, расхождение устранит Rebuild
		i.logger.Warn("calendar: no event for trip id=%s, booking id=%s not indexed", booking.TripID, booking.ID)
		return
	}

	for idx, b := range event.Bookings {
		if b.ID == booking.ID {
			event.Bookings[idx] = booking
			return
		}
	}
	event.Bookings = append(event.Bookings, booking)
}

// RemoveBooking удаляет бронирование из события владеющего рейса
func (i *Index) RemoveBooking(tripID, bookingID string) {
	if tripID == "" {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	event := i.findEventLocked(domain.CalendarEventID(tripID))
	if event == nil {
		return
	}

	for idx, b := range event.Bookings {
		if b.ID == bookingID {
			event.Bookings = append(event.Bookings[:idx], event.Bookings[idx+1:]...)
			return
		}
	}
}

// Rebuild перестраивает индекс с нуля из текущих множеств рейсов и бронирований
// активного сезона. Повторное перестроение от тех же данных дает тот же индекс
func (i *Index) Rebuild(ctx context.Context) error {
	season, err := i.seasons.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("%w: get active season: %v", ErrRebuildFailed, err)
	}

	trips, err := i.tripRepo.GetBySeason(ctx, season.Key())
	if err != nil {
		return fmt.Errorf("%w: load trips: %v", ErrRebuildFailed, err)
	}

	bookings, err := i.bookingRepo.GetBySeason(ctx, season.Key())
	if err != nil {
		return fmt.Errorf("%w: load bookings: %v", ErrRebuildFailed, err)
	}

	// Бронирования группируются по владеющему рейсу
	byTrip := make(map[string][]domain.Booking)
	for _, b := range bookings {
		if b.IsAssigned() {
			byTrip[b.TripID] = append(byTrip[b.TripID], *b)
		}
	}

	buckets := make(map[string][]*domain.CalendarEvent)
	for _, trip := range trips {
		event := &domain.CalendarEvent{
			ID:       domain.CalendarEventID(trip.ID),
			Trip:     *trip,
			Bookings: byTrip[trip.ID],
		}
		key := domain.DateKey(trip.DisplayDate())
		buckets[key] = insertSorted(buckets[key], event)
	}

	i.mu.Lock()
	i.buckets = buckets
	i.mu.Unlock()

	i.logger.Info("calendar: index rebuilt, season=%s, trips=%d, bookings=%d", season.Key(), len(trips), len(bookings))
	return nil
}

// Query возвращает срез индекса, ограниченный диапазоном дат (границы включаются)
// Возвращаются копии: вызывающая сторона не может изменить индекс
func (i *Index) Query(from, to time.Time) (map[string][]domain.CalendarEvent, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	fromKey := domain.DateKey(from)
	toKey := domain.DateKey(to)

	i.mu.RLock()
	defer i.mu.RUnlock()

	result := make(map[string][]domain.CalendarEvent)
	for key, events := range i.buckets {
		// Ключи YYYY-MM-DD сравниваются лексикографически
		if key < fromKey || key > toKey {
			continue
		}
		copied := make([]domain.CalendarEvent, len(events))
		for idx, e := range events {
			copied[idx] = *e
			copied[idx].Bookings = append([]domain.Booking(nil), e.Bookings...)
		}
		result[key] = copied
	}
	return result, nil
}

// removeEventLocked удаляет событие из любой корзины, пустые корзины вычищаются
// Возвращает удаленное событие или nil
func (i *Index) removeEventLocked(eventID string) *domain.CalendarEvent {
	for key, events := range i.buckets {
		for idx, e := range events {
			if e.ID != eventID {
				continue
			}
			events = append(events[:idx], events[idx+1:]...)
			if len(events) == 0 {
				delete(i.buckets, key)
			} else {
				i.buckets[key] = events
			}
			return e
		}
	}
	return nil
}

// findEventLocked ищет событие по синтетическому id во всех корзинах
func (i *Index) findEventLocked(eventID string) *domain.CalendarEvent {
	for _, events := range i.buckets {
		for _, e := range events {
			if e.ID == eventID {
				return e
			}
		}
	}
	return nil
}

// insertSorted вставляет событие, сохраняя порядок корзины:
// по дате отправления рейса, затем по id события
func insertSorted(events []*domain.CalendarEvent, event *domain.CalendarEvent) []*domain.CalendarEvent {
	events = append(events, event)
	sort.SliceStable(events, func(a, b int) bool {
		if !events[a].Trip.DepartureDate.Equal(events[b].Trip.DepartureDate) {
			return events[a].Trip.DepartureDate.Before(events[b].Trip.DepartureDate)
		}
		return events[a].ID < events[b].ID
	})
	return events
}
