package models

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// CreateTripRequest запрос на создание рейса
type CreateTripRequest struct {
	TruckID       string
	LoadNumber    int
	DepartureDate time.Time
	ArrivalDate   time.Time
	Origin        string
	Destination   string
	DelayDate     *time.Time
}

// UpdateTripRequest запрос на обновление рейса. Счетчики емкости и сезон
// не заменяются: они живут в пайплайнах бронирований
type UpdateTripRequest struct {
	TruckID       string
	TripID        string
	LoadNumber    int
	DepartureDate time.Time
	ArrivalDate   time.Time
	Origin        string
	Destination   string
	DelayDate     *time.Time
}

// SelectableTripsRequest запрос на подбор рейсов для черновика бронирования
// Origin опционален: пустое значение не фильтрует по региону отправления
type SelectableTripsRequest struct {
	Origin         string
	DesiredPickup  time.Time
	DesiredArrival time.Time
	VehicleCount   int
	VehicleWeight  float64
}

// TripResponse рейс в ответе сервиса
type TripResponse struct {
	ID            string
	TruckID       string
	LoadNumber    int
	DepartureDate time.Time
	ArrivalDate   time.Time
	Origin        string
	Destination   string
	RemLoadCap    float64
	RemCarCap     int
	DelayDate     *time.Time
	Season        string
	PaidBookings  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FromDomainTrip конвертирует доменный рейс в ответ сервиса
func FromDomainTrip(trip *domain.Trip) *TripResponse {
	return &TripResponse{
		ID:            trip.ID,
		TruckID:       trip.TruckID,
		LoadNumber:    trip.LoadNumber,
		DepartureDate: trip.DepartureDate,
		ArrivalDate:   trip.ArrivalDate,
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		RemLoadCap:    trip.RemLoadCap,
		RemCarCap:     trip.RemCarCap,
		DelayDate:     trip.DelayDate,
		Season:        trip.Season,
		PaidBookings:  trip.PaidBookings,
		CreatedAt:     trip.CreatedAt,
		UpdatedAt:     trip.UpdatedAt,
	}
}

// FromDomainTripList конвертирует список доменных рейсов
func FromDomainTripList(trips []*domain.Trip) []*TripResponse {
	result := make([]*TripResponse, 0, len(trips))
	for _, t := range trips {
		result = append(result, FromDomainTrip(t))
	}
	return result
}
