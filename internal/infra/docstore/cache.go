package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache снимки документов и результатов запросов в Redis
// Обновляется при каждом успешном чтении и записи в основной источник,
// читается только когда основной источник недоступен
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache создает кеш поверх подключения к Redis
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// documentKey ключ снимка документа
func documentKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

// queryKey ключ снимка результата запроса
func queryKey(collection, fingerprint string) string {
	return fmt.Sprintf("query:%s:%s", collection, fingerprint)
}

// SetDocument сохраняет JSON-снимок документа
func (c *Cache) SetDocument(ctx context.Context, collection, id string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cache: failed to marshal document %s/%s: %w", collection, id, err)
	}
	return c.rdb.Set(ctx, documentKey(collection, id), payload, c.ttl).Err()
}

// GetDocument читает JSON-снимок документа
// Возвращает false без ошибки, если снимка нет
func (c *Cache) GetDocument(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	payload, err := c.rdb.Get(ctx, documentKey(collection, id)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: failed to get document %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("cache: failed to unmarshal document %s/%s: %w", collection, id, err)
	}
	return true, nil
}

// DeleteDocument удаляет снимок документа
func (c *Cache) DeleteDocument(ctx context.Context, collection, id string) error {
	return c.rdb.Del(ctx, documentKey(collection, id)).Err()
}

// SetQuery сохраняет JSON-снимок результата запроса
func (c *Cache) SetQuery(ctx context.Context, collection, fingerprint string, docs interface{}) error {
	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("cache: failed to marshal query result %s: %w", collection, err)
	}
	return c.rdb.Set(ctx, queryKey(collection, fingerprint), payload, c.ttl).Err()
}

// GetQuery читает JSON-снимок результата запроса
// Возвращает false без ошибки, если снимка нет
func (c *Cache) GetQuery(ctx context.Context, collection, fingerprint string, out interface{}) (bool, error) {
	payload, err := c.rdb.Get(ctx, queryKey(collection, fingerprint)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: failed to get query result %s: %w", collection, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("cache: failed to unmarshal query result %s: %w", collection, err)
	}
	return true, nil
}
