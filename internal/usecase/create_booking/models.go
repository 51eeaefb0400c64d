package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// Request модель запроса на создание бронирования
// TripID пуст, если рейс не выбран: бронирование создается без влияния на емкость
type Request struct {
	CustomerID     string
	VehicleIDs     []string
	Paycheck       domain.Paycheck
	ArrivalAt      time.Time
	PickupAt       time.Time
	ArrivalAddress string
	PickupAddress  string
	TruckID        string
	TripID         string
	From           string
	To             string
	Notes          *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string
	Customer       domain.CustomerSnapshot
	VehicleIDs     []string
	Paycheck       domain.Paycheck
	ArrivalAt      time.Time
	PickupAt       time.Time
	ArrivalWeek    int
	PickupWeek     int
	ArrivalAddress string
	PickupAddress  string
	TruckID        string
	TripID         string
	From           string
	To             string
	Notes          *string
	Season         string
	CreatedAt      time.Time
}

// fromDomainBooking конвертирует доменное бронирование в ответ usecase
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		Customer:       b.Customer,
		VehicleIDs:     b.VehicleIDs,
		Paycheck:       b.Paycheck,
		ArrivalAt:      b.ArrivalAt,
		PickupAt:       b.PickupAt,
		ArrivalWeek:    b.ArrivalWeek,
		PickupWeek:     b.PickupWeek,
		ArrivalAddress: b.ArrivalAddress,
		PickupAddress:  b.PickupAddress,
		TruckID:        b.TruckID,
		TripID:         b.TripID,
		From:           b.From,
		To:             b.To,
		Notes:          b.Notes,
		Season:         b.Season,
		CreatedAt:      b.CreatedAt,
	}
}
