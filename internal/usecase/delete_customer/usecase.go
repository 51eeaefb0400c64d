package delete_customer

import (
	"context"
	"errors"
	"fmt"

	customersRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/customers"
	"github.com/m04kA/SMC-TransportService/internal/usecase/delete_booking"
)

// UseCase use case каскадного удаления клиента
// Сначала удаляется клиент, затем каждое его бронирование проходит полный
// жизненный цикл удаления: рейсы получают емкость обратно. Этим каскад
// отличается от удаления рейса, где возвращать емкость уже некому
type UseCase struct {
	customerRepo   CustomerRepository
	bookingRepo    BookingRepository
	bookingDeleter BookingDeleter
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	bookingDeleter BookingDeleter,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo:   customerRepo,
		bookingRepo:    bookingRepo,
		bookingDeleter: bookingDeleter,
		logger:         logger,
	}
}

// Execute выполняет каскадное удаление клиента
func (uc *UseCase) Execute(ctx context.Context, customerID string) (*Response, error) {
	uc.logger.Info("DeleteCustomer: customer=%s", customerID)

	// 1. Валидация входных данных
	if customerID == "" {
		return nil, fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}

	// 2. Удаление клиента, первая запись каскада
	if err := uc.customerRepo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			uc.logger.Warn("DeleteCustomer: customer id=%s not found", customerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("DeleteCustomer: failed to delete customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: %v", ErrCustomerWriteFailed, err)
	}

	// 3. Список бронирований клиента
	// Сбой чтения прерывает только этот шаг: клиент уже удален, бронирования
	// остаются висячими и попадают в частичный результат
	resp := &Response{CustomerID: customerID, Status: StatusCompleted}
	dependents, err := uc.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		uc.logger.Error("DeleteCustomer: customer id=%s deleted but failed to list bookings: %v", customerID, err)
		resp.Status = StatusPartiallyFailed
		resp.FailedBookings = append(resp.FailedBookings, FailedItem{
			Reason: fmt.Sprintf("failed to list dependent bookings: %v", err),
		})
		return resp, nil
	}

	// 4. Удаление бронирований по полному жизненному циклу, по одному и до конца
	for _, booking := range dependents {
		if err := uc.bookingDeleter.Execute(ctx, booking.ID); err != nil {
			if errors.Is(err, delete_booking.ErrBookingNotFound) {
				resp.DeletedBookings = append(resp.DeletedBookings, booking.ID)
				continue
			}
			uc.logger.Error("DeleteCustomer: failed to delete booking id=%s: %v", booking.ID, err)
			resp.FailedBookings = append(resp.FailedBookings, FailedItem{
				BookingID: booking.ID,
				Reason:    err.Error(),
			})
			continue
		}
		resp.DeletedBookings = append(resp.DeletedBookings, booking.ID)
	}
	if len(resp.FailedBookings) > 0 {
		resp.Status = StatusPartiallyFailed
	}

	uc.logger.Info("DeleteCustomer: customer id=%s deleted, bookings deleted=%d, failed=%d",
		customerID, len(resp.DeletedBookings), len(resp.FailedBookings))
	return resp, nil
}
