package delete_customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("delete_customer: customer not found")

	// ErrCustomerWriteFailed возвращается при сбое удаления клиента
	// Каскад не запускается: бронирования клиента не тронуты
	ErrCustomerWriteFailed = errors.New("delete_customer: failed to delete customer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_customer: invalid input data")
)
