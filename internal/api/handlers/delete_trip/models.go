package delete_trip

import (
	deleteTrip "github.com/m04kA/SMC-TransportService/internal/usecase/delete_trip"
)

// FailedBooking бронирование, не удаленное в каскаде
type FailedBooking struct {
	BookingID string `json:"bookingId"`
	Reason    string `json:"reason"`
}

// CascadeResponse HTTP response model
type CascadeResponse struct {
	TripID          string          `json:"tripId"`
	Status          string          `json:"status"`
	DeletedBookings []string        `json:"deletedBookings"`
	FailedBookings  []FailedBooking `json:"failedBookings,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteTrip.Response) *CascadeResponse {
	failed := make([]FailedBooking, 0, len(resp.FailedBookings))
	for _, f := range resp.FailedBookings {
		failed = append(failed, FailedBooking{BookingID: f.BookingID, Reason: f.Reason})
	}

	deleted := resp.DeletedBookings
	if deleted == nil {
		deleted = []string{}
	}

	return &CascadeResponse{
		TripID:          resp.TripID,
		Status:          resp.Status,
		DeletedBookings: deleted,
		FailedBookings:  failed,
	}
}
