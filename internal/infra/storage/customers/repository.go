package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

const collection = "customers"

// Repository адаптер хранилища клиентов
// Движку бронирований от клиента нужны две операции: чтение для снимка
// при создании бронирования и удаление в каскаде deleteCustomer
type Repository struct {
	col *docstore.Collection
}

// NewRepository создает репозиторий клиентов
func NewRepository(client *docstore.Client) *Repository {
	return &Repository{col: client.Collection(collection)}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	if _, err := r.col.Get(ctx, id, &customer); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrReadFailed, err)
	}
	return &customer, nil
}

// Delete удаляет клиента
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.col.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("%w: Delete: %v", ErrWriteFailed, err)
	}
	return nil
}
