package trucks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

const collection = "trucks"

// Repository адаптер хранилища грузовиков
// Грузовик читается при создании рейса: его номинальные емкости
// инициализируют счетчики нового рейса
type Repository struct {
	col *docstore.Collection
}

// NewRepository создает репозиторий грузовиков
func NewRepository(client *docstore.Client) *Repository {
	return &Repository{col: client.Collection(collection)}
}

// GetByID получает грузовик по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Truck, error) {
	var truck domain.Truck
	if _, err := r.col.Get(ctx, id, &truck); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrTruckNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrReadFailed, err)
	}
	return &truck, nil
}
