package edit_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if len(req.VehicleIDs) == 0 {
		return fmt.Errorf("%w: at least one vehicle is required", ErrInvalidInput)
	}
	if len(req.VehicleIDs) > domain.MaxVehiclesPerBooking {
		return fmt.Errorf("%w: at most %d vehicles per booking", ErrInvalidInput, domain.MaxVehiclesPerBooking)
	}
	seen := make(map[string]struct{}, len(req.VehicleIDs))
	for _, id := range req.VehicleIDs {
		if id == "" {
			return fmt.Errorf("%w: vehicle id must not be empty", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate vehicle id %q", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.PickupAt.IsZero() {
		return fmt.Errorf("%w: pickupAt is required", ErrInvalidInput)
	}
	if req.ArrivalAt.IsZero() {
		return fmt.Errorf("%w: arrivalAt is required", ErrInvalidInput)
	}
	if req.ArrivalAt.Before(req.PickupAt) {
		return fmt.Errorf("%w: arrivalAt must not be before pickupAt", ErrInvalidInput)
	}

	if req.TripID != "" && req.TruckID == "" {
		return fmt.Errorf("%w: truckId is required when tripId is set", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateVehiclesInSnapshot проверяет, что все автомобили взяты из снимка бронирования
func validateVehiclesInSnapshot(snapshot domain.CustomerSnapshot, vehicleIDs []string) error {
	for _, id := range vehicleIDs {
		if _, ok := snapshot.VehicleByID(id); !ok {
			return fmt.Errorf("%w: vehicle %q does not belong to customer %s", ErrInvalidInput, id, snapshot.CustomerID)
		}
	}
	return nil
}

// validateEligibility проверяет, что новый рейс может принять бронирование
func validateEligibility(trip *domain.Trip, req *Request, weight float64, count int) error {
	if req.From != "" && trip.Origin != req.From {
		return fmt.Errorf("%w: trip origin %q, requested %q", ErrRouteMismatch, trip.Origin, req.From)
	}
	if !trip.DepartsWithin(req.PickupAt, req.ArrivalAt) {
		return fmt.Errorf("%w: departure %s, window %s..%s",
			ErrDateWindowViolation,
			trip.DepartureDate.Format(domain.DateFormat),
			req.PickupAt.Format(domain.DateFormat),
			req.ArrivalAt.Format(domain.DateFormat))
	}
	if !trip.CanFit(weight, count) {
		return fmt.Errorf("%w: need weight=%.1f count=%d, remaining weight=%.1f count=%d",
			ErrCapacityExceeded, weight, count, trip.RemLoadCap, trip.RemCarCap)
	}
	return nil
}
