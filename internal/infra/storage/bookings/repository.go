package bookings

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

const collection = "bookings"

// Repository адаптер хранилища бронирований (плоская коллекция bookings)
type Repository struct {
	col *docstore.Collection
}

// NewRepository создает репозиторий бронирований
func NewRepository(client *docstore.Client) *Repository {
	return &Repository{col: client.Collection(collection)}
}

// Create создает бронирование; id, метку времени и производные недели присваивает хранилище
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = docstore.NewID()
	booking.CreatedAt = time.Now()
	booking.ArrivalWeek = domain.WeekOfYear(booking.ArrivalAt)
	booking.PickupWeek = domain.WeekOfYear(booking.PickupAt)

	if err := r.col.Insert(ctx, booking.ID, booking); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrWriteFailed, err)
	}
	return booking, nil
}

// GetByID получает бронирование по ID
// Возвращает источник чтения: данные из кеша могут быть устаревшими
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, docstore.Source, error) {
	var booking domain.Booking
	source, err := r.col.Get(ctx, id, &booking)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, source, ErrBookingNotFound
		}
		return nil, source, fmt.Errorf("%w: GetByID: %v", ErrReadFailed, err)
	}
	return &booking, source, nil
}

// GetByTripID получает все бронирования, ссылающиеся на рейс
func (r *Repository) GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error) {
	var result []*domain.Booking
	if _, err := r.col.Query(ctx, bson.M{"tripId": tripID}, nil, &result); err != nil {
		return nil, fmt.Errorf("%w: GetByTripID: %v", ErrReadFailed, err)
	}
	return result, nil
}

// GetByCustomerID получает все бронирования клиента
func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	var result []*domain.Booking
	if _, err := r.col.Query(ctx, bson.M{"customer.customerId": customerID}, nil, &result); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID: %v", ErrReadFailed, err)
	}
	return result, nil
}

// GetBySeason получает все бронирования сезона, отсортированные по дате создания
func (r *Repository) GetBySeason(ctx context.Context, season string) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	var result []*domain.Booking
	if _, err := r.col.Query(ctx, bson.M{"season": season}, opts, &result); err != nil {
		return nil, fmt.Errorf("%w: GetBySeason: %v", ErrReadFailed, err)
	}
	return result, nil
}

// GetByPickupRange получает бронирования сезона с датой забора в указанном диапазоне
// Границы диапазона включаются
func (r *Repository) GetByPickupRange(ctx context.Context, season string, from, to time.Time) ([]*domain.Booking, error) {
	filter := bson.M{
		"season":   season,
		"pickupAt": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "pickupAt", Value: 1}})

	var result []*domain.Booking
	if _, err := r.col.Query(ctx, filter, opts, &result); err != nil {
		return nil, fmt.Errorf("%w: GetByPickupRange: %v", ErrReadFailed, err)
	}
	return result, nil
}

// Update записывает изменяемые поля бронирования
// Снимок клиента не перезаписывается: он снят в момент создания
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	fields := bson.M{
		"vehicleIds":     booking.VehicleIDs,
		"paycheck":       booking.Paycheck,
		"arrivalAt":      booking.ArrivalAt,
		"pickupAt":       booking.PickupAt,
		"arrivalWeek":    domain.WeekOfYear(booking.ArrivalAt),
		"pickupWeek":     domain.WeekOfYear(booking.PickupAt),
		"arrivalAddress": booking.ArrivalAddress,
		"pickupAddress":  booking.PickupAddress,
		"truckId":        booking.TruckID,
		"tripId":         booking.TripID,
		"from":           booking.From,
		"to":             booking.To,
		"notes":          booking.Notes,
	}

	if err := r.col.Update(ctx, booking.ID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Update: %v", ErrWriteFailed, err)
	}
	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.col.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Delete: %v", ErrWriteFailed, err)
	}
	return nil
}
