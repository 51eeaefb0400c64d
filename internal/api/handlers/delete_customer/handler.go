package delete_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
	deleteCustomer "github.com/m04kA/SMC-TransportService/internal/usecase/delete_customer"
)

const msgCustomerNotFound = "клиент не найден"

type Handler struct {
	useCase DeleteCustomerUseCase
	logger  Logger
}

func NewHandler(useCase DeleteCustomerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// FailedBooking бронирование, не удаленное в каскаде
type FailedBooking struct {
	BookingID string `json:"bookingId"`
	Reason    string `json:"reason"`
}

// CascadeResponse HTTP response model
type CascadeResponse struct {
	CustomerID      string          `json:"customerId"`
	Status          string          `json:"status"`
	DeletedBookings []string        `json:"deletedBookings"`
	FailedBookings  []FailedBooking `json:"failedBookings,omitempty"`
}

// Handle DELETE /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	result, err := h.useCase.Execute(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, deleteCustomer.ErrInvalidInput):
			h.logger.Warn("DELETE /customers/%s - Invalid input: %v", customerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, deleteCustomer.ErrCustomerNotFound):
			h.logger.Warn("DELETE /customers/%s - Customer not found", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("DELETE /customers/%s - Failed to delete customer: %v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	deleted := result.DeletedBookings
	if deleted == nil {
		deleted = []string{}
	}
	failed := make([]FailedBooking, 0, len(result.FailedBookings))
	for _, f := range result.FailedBookings {
		failed = append(failed, FailedBooking{BookingID: f.BookingID, Reason: f.Reason})
	}

	h.logger.Info("DELETE /customers/%s - Customer deleted: status=%s, bookings_deleted=%d, bookings_failed=%d",
		customerID, result.Status, len(deleted), len(failed))
	handlers.RespondJSON(w, http.StatusOK, &CascadeResponse{
		CustomerID:      result.CustomerID,
		Status:          result.Status,
		DeletedBookings: deleted,
		FailedBookings:  failed,
	})
}
