package list_bookings

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/service/bookings/models"
)

// PaycheckModel данные чека в HTTP-моделях
type PaycheckModel struct {
	CheckNumber string  `json:"checkNumber"`
	BankName    string  `json:"bankName"`
	Amount      float64 `json:"amount"`
}

// VehicleModel автомобиль снимка в HTTP-моделях
type VehicleModel struct {
	ID           string  `json:"id"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"licensePlate"`
	Weight       float64 `json:"weight"`
}

// CustomerModel снимок клиента в HTTP-моделях
type CustomerModel struct {
	CustomerID string         `json:"customerId"`
	Name       string         `json:"name"`
	Phone      string         `json:"phone"`
	Vehicles   []VehicleModel `json:"vehicles"`
}

// BookingModel бронирование в HTTP-ответе списка
type BookingModel struct {
	ID             string        `json:"id"`
	Customer       CustomerModel `json:"customer"`
	VehicleIDs     []string      `json:"vehicleIds"`
	Paycheck       PaycheckModel `json:"paycheck"`
	ArrivalAt      string        `json:"arrivalAt"`
	PickupAt       string        `json:"pickupAt"`
	ArrivalWeek    int           `json:"arrivalWeek"`
	PickupWeek     int           `json:"pickupWeek"`
	ArrivalAddress string        `json:"arrivalAddress"`
	PickupAddress  string        `json:"pickupAddress"`
	TruckID        string        `json:"truckId,omitempty"`
	TripID         string        `json:"tripId,omitempty"`
	From           string        `json:"from"`
	To             string        `json:"to"`
	Notes          *string       `json:"notes,omitempty"`
	Season         string        `json:"season"`
	CreatedAt      string        `json:"createdAt"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingModel `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp []*models.BookingResponse) *ListBookingsResponse {
	result := &ListBookingsResponse{Bookings: make([]BookingModel, 0, len(resp))}
	for _, b := range resp {
		vehicles := make([]VehicleModel, 0, len(b.Customer.Vehicles))
		for _, v := range b.Customer.Vehicles {
			vehicles = append(vehicles, VehicleModel{
				ID:           v.ID,
				Model:        v.Model,
				LicensePlate: v.LicensePlate,
				Weight:       v.Weight,
			})
		}

		result.Bookings = append(result.Bookings, BookingModel{
			ID: b.ID,
			Customer: CustomerModel{
				CustomerID: b.Customer.CustomerID,
				Name:       b.Customer.Name,
				Phone:      b.Customer.Phone,
				Vehicles:   vehicles,
			},
			VehicleIDs: b.VehicleIDs,
			Paycheck: PaycheckModel{
				CheckNumber: b.Paycheck.CheckNumber,
				BankName:    b.Paycheck.BankName,
				Amount:      b.Paycheck.Amount,
			},
			ArrivalAt:      b.ArrivalAt.Format(domain.DateFormat),
			PickupAt:       b.PickupAt.Format(domain.DateFormat),
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
			CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
