package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customers.repository: customer not found")

	// ErrReadFailed возвращается, когда чтение не удалось ни из основного источника, ни из кеша
	ErrReadFailed = errors.New("customers.repository: read failed")

	// ErrWriteFailed возвращается при сбое записи в основной источник
	ErrWriteFailed = errors.New("customers.repository: write failed")
)
