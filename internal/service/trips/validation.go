package trips

import (
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/service/trips/models"
)

// validateCreateRequest валидирует запрос на создание рейса
func validateCreateRequest(req *models.CreateTripRequest) error {
	if req.TruckID == "" {
		return fmt.Errorf("%w: truckId is required", ErrInvalidInput)
	}
	if req.LoadNumber <= 0 {
		return fmt.Errorf("%w: loadNumber must be positive", ErrInvalidInput)
	}
	if req.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidInput)
	}
	if req.ArrivalDate.IsZero() {
		return fmt.Errorf("%w: arrivalDate is required", ErrInvalidInput)
	}
	if req.ArrivalDate.Before(req.DepartureDate) {
		return fmt.Errorf("%w: arrivalDate must not be before departureDate", ErrInvalidInput)
	}
	if req.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidInput)
	}
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}
	return nil
}

// validateUpdateRequest валидирует запрос на обновление рейса
func validateUpdateRequest(req *models.UpdateTripRequest) error {
	if req.TruckID == "" {
		return fmt.Errorf("%w: truckId is required", ErrInvalidInput)
	}
	if req.TripID == "" {
		return fmt.Errorf("%w: tripId is required", ErrInvalidInput)
	}
	if req.LoadNumber <= 0 {
		return fmt.Errorf("%w: loadNumber must be positive", ErrInvalidInput)
	}
	if req.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidInput)
	}
	if req.ArrivalDate.IsZero() {
		return fmt.Errorf("%w: arrivalDate is required", ErrInvalidInput)
	}
	if req.ArrivalDate.Before(req.DepartureDate) {
		return fmt.Errorf("%w: arrivalDate must not be before departureDate", ErrInvalidInput)
	}
	if req.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidInput)
	}
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}
	return nil
}

// validateSelectableRequest валидирует запрос подбора рейсов
func validateSelectableRequest(req *models.SelectableTripsRequest) error {
	if req.DesiredPickup.IsZero() {
		return fmt.Errorf("%w: pickup date is required", ErrInvalidInput)
	}
	if req.DesiredArrival.IsZero() {
		return fmt.Errorf("%w: arrival date is required", ErrInvalidInput)
	}
	if req.DesiredArrival.Before(req.DesiredPickup) {
		return fmt.Errorf("%w: arrival date must not be before pickup date", ErrInvalidInput)
	}
	if req.VehicleCount <= 0 {
		return fmt.Errorf("%w: vehicle count must be positive", ErrInvalidInput)
	}
	if req.VehicleWeight < 0 {
		return fmt.Errorf("%w: vehicle weight must not be negative", ErrInvalidInput)
	}
	return nil
}
