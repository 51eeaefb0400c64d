package update_trip

import (
	"time"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

// UpdateTripRequest HTTP request model. Отсутствие delayDate снимает
// задержку с рейса
type UpdateTripRequest struct {
	LoadNumber    int     `json:"loadNumber"`
	DepartureDate string  `json:"departureDate"` // "2025-11-10"
	ArrivalDate   string  `json:"arrivalDate"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DelayDate     *string `json:"delayDate,omitempty"`
}

// TripResponse HTTP response model
type TripResponse struct {
	ID            string  `json:"id"`
	TruckID       string  `json:"truckId"`
	LoadNumber    int     `json:"loadNumber"`
	DepartureDate string  `json:"departureDate"`
	ArrivalDate   string  `json:"arrivalDate"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	RemLoadCap    float64 `json:"remLoadCap"`
	RemCarCap     int     `json:"remCarCap"`
	DelayDate     *string `json:"delayDate,omitempty"`
	Season        string  `json:"season"`
	PaidBookings  int     `json:"paidBookings"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTripRequest) ToServiceRequest(truckID, tripID string) (*models.UpdateTripRequest, error) {
	departure, err := time.Parse(domain.DateFormat, r.DepartureDate)
	if err != nil {
		return nil, err
	}
	arrival, err := time.Parse(domain.DateFormat, r.ArrivalDate)
	if err != nil {
		return nil, err
	}

	var delay *time.Time
	if r.DelayDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.DelayDate)
		if err != nil {
			return nil, err
		}
		delay = &d
	}

	return &models.UpdateTripRequest{
		TruckID:       truckID,
		TripID:        tripID,
		LoadNumber:    r.LoadNumber,
		DepartureDate: departure,
		ArrivalDate:   arrival,
		Origin:        r.Origin,
		Destination:   r.Destination,
		DelayDate:     delay,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TripResponse) *TripResponse {
	var delay *string
	if resp.DelayDate != nil {
		d := resp.DelayDate.Format(domain.DateFormat)
		delay = &d
	}

	return &TripResponse{
		ID:            resp.ID,
		TruckID:       resp.TruckID,
		LoadNumber:    resp.LoadNumber,
		DepartureDate: resp.DepartureDate.Format(domain.DateFormat),
		ArrivalDate:   resp.ArrivalDate.Format(domain.DateFormat),
		Origin:        resp.Origin,
		Destination:   resp.Destination,
		RemLoadCap:    resp.RemLoadCap,
		RemCarCap:     resp.RemCarCap,
		DelayDate:     delay,
		Season:        resp.Season,
		PaidBookings:  resp.PaidBookings,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
