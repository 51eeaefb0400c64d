package seasons

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-TransportService/internal/domain"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
)

const collection = "seasons"

// Repository адаптер хранилища сезонов
// Выступает явным ActiveSeasonProvider: операции движка получают активный
// сезон через этот репозиторий, а не через глобальное состояние
type Repository struct {
	col *docstore.Collection
}

// NewRepository создает репозиторий сезонов
func NewRepository(client *docstore.Client) *Repository {
	return &Repository{col: client.Collection(collection)}
}

// GetActive возвращает активный сезон
// Активным должен быть не более чем один сезон; при нарушении берется первый
func (r *Repository) GetActive(ctx context.Context) (*domain.Season, error) {
	opts := options.Find().SetLimit(1)

	var result []*domain.Season
	if _, err := r.col.Query(ctx, bson.M{"isActive": true}, opts, &result); err != nil {
		return nil, fmt.Errorf("%w: GetActive: %v", ErrReadFailed, err)
	}
	if len(result) == 0 {
		return nil, ErrNoActiveSeason
	}
	return result[0], nil
}
