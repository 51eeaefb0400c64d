package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	createBooking "github.com/m04kA/SMC-TransportService/internal/usecase/create_booking"
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

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID     string        `json:"customerId"`
	VehicleIDs     []string      `json:"vehicleIds"`
	Paycheck       PaycheckModel `json:"paycheck"`
	ArrivalAt      string        `json:"arrivalAt"` // "2025-11-20"
	PickupAt       string        `json:"pickupAt"`  // "2025-11-01"
	ArrivalAddress string        `json:"arrivalAddress"`
	PickupAddress  string        `json:"pickupAddress"`
	TruckID        string        `json:"truckId,omitempty"`
	TripID         string        `json:"tripId,omitempty"`
	From           string        `json:"from"`
	To             string        `json:"to"`
	Notes          *string       `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	arrivalAt, err := time.Parse(domain.DateFormat, r.ArrivalAt)
	if err != nil {
		return nil, err
	}
	pickupAt, err := time.Parse(domain.DateFormat, r.PickupAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: r.CustomerID,
		VehicleIDs: r.VehicleIDs,
		Paycheck: domain.Paycheck{
			CheckNumber: r.Paycheck.CheckNumber,
			BankName:    r.Paycheck.BankName,
			Amount:      r.Paycheck.Amount,
		},
		ArrivalAt:      arrivalAt,
		PickupAt:       pickupAt,
		ArrivalAddress: r.ArrivalAddress,
		PickupAddress:  r.PickupAddress,
		TruckID:        r.TruckID,
		TripID:         r.TripID,
		From:           r.From,
		To:             r.To,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	vehicles := make([]VehicleModel, 0, len(resp.Customer.Vehicles))
	for _, v := range resp.Customer.Vehicles {
		vehicles = append(vehicles, VehicleModel{
			ID:           v.ID,
			Model:        v.Model,
			LicensePlate: v.LicensePlate,
			Weight:       v.Weight,
		})
	}

	return &BookingResponse{
		ID: resp.ID,
		Customer: CustomerModel{
			CustomerID: resp.Customer.CustomerID,
			Name:       resp.Customer.Name,
			Phone:      resp.Customer.Phone,
			Vehicles:   vehicles,
		},
		VehicleIDs: resp.VehicleIDs,
		Paycheck: PaycheckModel{
			CheckNumber: resp.Paycheck.CheckNumber,
			BankName:    resp.Paycheck.BankName,
			Amount:      resp.Paycheck.Amount,
		},
		ArrivalAt:      resp.ArrivalAt.Format(domain.DateFormat),
		PickupAt:       resp.PickupAt.Format(domain.DateFormat),
		ArrivalWeek:    resp.ArrivalWeek,
		PickupWeek:     resp.PickupWeek,
		ArrivalAddress: resp.ArrivalAddress,
		PickupAddress:  resp.PickupAddress,
		TruckID:        resp.TruckID,
		TripID:         resp.TripID,
		From:           resp.From,
		To:             resp.To,
		Notes:          resp.Notes,
		Season:         resp.Season,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
