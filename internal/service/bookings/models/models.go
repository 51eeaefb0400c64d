package models

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// PickupRangeRequest запрос на список бронирований по окну дат забора
// Границы окна включаются
type PickupRangeRequest struct {
	From time.Time
	To   time.Time
}

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
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

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
