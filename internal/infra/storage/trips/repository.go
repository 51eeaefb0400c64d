package trips

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

const collection = "trips"

// Repository адаптер хранилища рейсов
// Рейсы адресуются парой (truckID, tripID): в document store это плоская
// коллекция trips с полем truckId, но вызывающие стороны двухчастную
// адресацию trucks/{truckId}/trips/{tripId} не теряют
type Repository struct {
	col *docstore.Collection
}

// NewRepository создает репозиторий рейсов
func NewRepository(client *docstore.Client) *Repository {
	return &Repository{col: client.Collection(collection)}
}

// Create создает рейс; id и метки времени присваивает хранилище
func (r *Repository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	now := time.Now()
	trip.ID = docstore.NewID()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := r.col.Insert(ctx, trip.ID, trip); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrWriteFailed, err)
	}
	return trip, nil
}

// GetByID получает рейс по паре (truckID, tripID)
// Возвращает источник чтения: данные из кеша могут быть устаревшими
func (r *Repository) GetByID(ctx context.Context, truckID, tripID string) (*domain.Trip, docstore.Source, error) {
	var trip domain.Trip
	source, err := r.col.Get(ctx, tripID, &trip)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, source, ErrTripNotFound
		}
		return nil, source, fmt.Errorf("%w: GetByID: %v", ErrReadFailed, err)
	}

	// Рейс принадлежит ровно одному грузовику
	if trip.TruckID != truckID {
		return nil, source, ErrTripNotFound
	}
	return &trip, source, nil
}

// GetBySeason получает все рейсы сезона, отсортированные по дате отправления
func (r *Repository) GetBySeason(ctx context.Context, season string) ([]*domain.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "departureDate", Value: 1}})

	var result []*domain.Trip
	if _, err := r.col.Query(ctx, bson.M{"season": season}, opts, &result); err != nil {
		return nil, fmt.Errorf("%w: GetBySeason: %v", ErrReadFailed, err)
	}
	return result, nil
}

// UpdateCapacity записывает счетчики емкости рейса
// Единственная точка записи леджера: вызывается пайплайнами создания,
// редактирования и удаления бронирований
func (r *Repository) UpdateCapacity(ctx context.Context, tripID string, remLoadCap float64, remCarCap int, paidBookings int) error {
	fields := bson.M{
		"remLoadCap":   remLoadCap,
		"remCarCap":    remCarCap,
		"paidBookings": paidBookings,
		"updatedAt":    time.Now(),
	}

	if err := r.col.Update(ctx, tripID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("%w: UpdateCapacity: %v", ErrWriteFailed, err)
	}
	return nil
}

// Update записывает изменяемые поля рейса
func (r *Repository) Update(ctx context.Context, trip *domain.Trip) error {
	fields := bson.M{
		"loadNumber":    trip.LoadNumber,
		"departureDate": trip.DepartureDate,
		"arrivalDate":   trip.ArrivalDate,
		"origin":        trip.Origin,
		"destination":   trip.Destination,
		"remLoadCap":    trip.RemLoadCap,
		"remCarCap":     trip.RemCarCap,
		"delayDate":     trip.DelayDate,
		"paidBookings":  trip.PaidBookings,
		"updatedAt":     time.Now(),
	}

	if err := r.col.Update(ctx, trip.ID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("%w: Update: %v", ErrWriteFailed, err)
	}
	return nil
}

// Delete удаляет рейс
func (r *Repository) Delete(ctx context.Context, truckID, tripID string) error {
	// Проверяем принадлежность грузовику до удаления
	if _, _, err := r.GetByID(ctx, truckID, tripID); err != nil {
		return err
	}

	if err := r.col.Delete(ctx, tripID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("%w: Delete: %v", ErrWriteFailed, err)
	}
	return nil
}
