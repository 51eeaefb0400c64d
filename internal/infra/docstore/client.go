package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Source источник, из которого фактически прочитан документ
type Source int

const (
	// SourceLive документ прочитан из основного источника
	SourceLive Source = iota
	// SourceCache документ прочитан из кеша после сбоя основного источника
	// Данные могли устареть: вызывающая сторона не должна опираться на них
	// как на единственное основание для проверки емкости перед записью
	SourceCache
)

// Recorder интерфейс записи метрик операций со стором
type Recorder interface {
	ObserveStoreOp(collection, operation string, start time.Time, err error)
	ObserveCacheFallback(collection string, hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент document store: чтения идут сначала в основной источник (MongoDB),
// при его сбое в кеш (Redis); записи идут только в основной источник
// Транзакции сознательно не используются: каждая запись затрагивает отдельный документ
type Client struct {
	db           *mongo.Database
	cache        *Cache
	metrics      Recorder
	log          Logger
	queryTimeout time.Duration
}

// NewClient создает клиент document store
// metrics может быть nil, если сбор метрик выключен
func NewClient(db *mongo.Database, cache *Cache, metrics Recorder, log Logger, queryTimeout time.Duration) *Client {
	return &Client{
		db:           db,
		cache:        cache,
		metrics:      metrics,
		log:          log,
		queryTimeout: queryTimeout,
	}
}

// NewID генерирует идентификатор нового документа
func NewID() string {
	return uuid.NewString()
}

// Collection возвращает обертку над коллекцией
func (c *Client) Collection(name string) *Collection {
	return &Collection{
		name:   name,
		col:    c.db.Collection(name),
		client: c,
	}
}

// Collection обертка над коллекцией с fallback-чтениями и метриками
type Collection struct {
	name   string
	col    *mongo.Collection
	client *Client
}

// observe записывает метрику операции, если сбор метрик включен
func (c *Collection) observe(operation string, start time.Time, err error) {
	if c.client.metrics != nil {
		c.client.metrics.ObserveStoreOp(c.name, operation, start, err)
	}
}

// withTimeout ограничивает операцию таймаутом запроса
func (c *Collection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.client.queryTimeout)
}

// Get читает документ по полю id: сначала из основного источника, при сбое из кеша
// ErrNotFound от основного источника считается окончательным ответом, fallback не выполняется
func (c *Collection) Get(ctx context.Context, id string, out interface{}) (Source, error) {
	start := time.Now()

	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	err := c.col.FindOne(opCtx, bson.M{"id": id}).Decode(out)
	c.observe("get", start, err)

	if err == nil {
		// Обновляем снимок в кеше на случай будущих fallback-чтений
		if cacheErr := c.client.cache.SetDocument(ctx, c.name, id, out); cacheErr != nil {
			c.client.log.Warn("docstore: failed to refresh cache for %s/%s: %v", c.name, id, cacheErr)
		}
		return SourceLive, nil
	}
	if err == mongo.ErrNoDocuments {
		return SourceLive, ErrNotFound
	}

	// Основной источник недоступен, пробуем кеш
	c.client.log.Warn("docstore: live read failed for %s/%s, falling back to cache: %v", c.name, id, err)
	hit, cacheErr := c.client.cache.GetDocument(ctx, c.name, id, out)
	if c.client.metrics != nil {
		c.client.metrics.ObserveCacheFallback(c.name, hit && cacheErr == nil)
	}
	if cacheErr == nil && hit {
		return SourceCache, nil
	}
	if cacheErr != nil {
		return SourceCache, fmt.Errorf("%w: %s/%s: live: %v, cache: %v", ErrRead, c.name, id, err, cacheErr)
	}
	return SourceCache, fmt.Errorf("%w: %s/%s: live: %v, cache: miss", ErrRead, c.name, id, err)
}

// Query выполняет запрос по фильтру: сначала в основном источнике, при сбое в кеше
// Снимок результата кешируется по отпечатку фильтра и опций
func (c *Collection) Query(ctx context.Context, filter bson.M, opts *options.FindOptions, out interface{}) (Source, error) {
	start := time.Now()
	fingerprint := queryFingerprint(filter, opts)

	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	cur, err := c.col.Find(opCtx, filter, opts)
	if err == nil {
		err = cur.All(opCtx, out)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDecode, c.name, err)
		}
	}
	c.observe("query", start, err)

	if err == nil {
		if cacheErr := c.client.cache.SetQuery(ctx, c.name, fingerprint, out); cacheErr != nil {
			c.client.log.Warn("docstore: failed to refresh query cache for %s: %v", c.name, cacheErr)
		}
		return SourceLive, nil
	}

	c.client.log.Warn("docstore: live query failed for %s, falling back to cache: %v", c.name, err)
	hit, cacheErr := c.client.cache.GetQuery(ctx, c.name, fingerprint, out)
	if c.client.metrics != nil {
		c.client.metrics.ObserveCacheFallback(c.name, hit && cacheErr == nil)
	}
	if cacheErr == nil && hit {
		return SourceCache, nil
	}
	if cacheErr != nil {
		return SourceCache, fmt.Errorf("%w: %s: live: %v, cache: %v", ErrRead, c.name, err, cacheErr)
	}
	return SourceCache, fmt.Errorf("%w: %s: live: %v, cache: miss", ErrRead, c.name, err)
}

// Insert вставляет документ с уже присвоенным полем id
func (c *Collection) Insert(ctx context.Context, id string, doc interface{}) error {
	start := time.Now()

	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.col.InsertOne(opCtx, doc)
	c.observe("insert", start, err)

	if err != nil {
		return fmt.Errorf("%w: insert %s/%s: %v", ErrWrite, c.name, id, err)
	}

	if cacheErr := c.client.cache.SetDocument(ctx, c.name, id, doc); cacheErr != nil {
		c.client.log.Warn("docstore: failed to cache inserted document %s/%s: %v", c.name, id, cacheErr)
	}
	return nil
}

// Update частично обновляет документ по полю id
// Снимок в кеше инвалидируется: частичное обновление не дает полного документа
func (c *Collection) Update(ctx context.Context, id string, fields bson.M) error {
	start := time.Now()

	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.col.UpdateOne(opCtx, bson.M{"id": id}, bson.M{"$set": fields})
	c.observe("update", start, err)

	if err != nil {
		return fmt.Errorf("%w: update %s/%s: %v", ErrWrite, c.name, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	if cacheErr := c.client.cache.DeleteDocument(ctx, c.name, id); cacheErr != nil {
		c.client.log.Warn("docstore: failed to invalidate cache for %s/%s: %v", c.name, id, cacheErr)
	}
	return nil
}

// Delete удаляет документ по полю id
func (c *Collection) Delete(ctx context.Context, id string) error {
	start := time.Now()

	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.col.DeleteOne(opCtx, bson.M{"id": id})
	c.observe("delete", start, err)

	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrWrite, c.name, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	if cacheErr := c.client.cache.DeleteDocument(ctx, c.name, id); cacheErr != nil {
		c.client.log.Warn("docstore: failed to invalidate cache for %s/%s: %v", c.name, id, cacheErr)
	}
	return nil
}

// queryFingerprint строит стабильный отпечаток запроса для ключа кеша
func queryFingerprint(filter bson.M, opts *options.FindOptions) string {
	payload, err := json.Marshal(filter)
	if err != nil {
		payload = []byte(fmt.Sprintf("%v", filter))
	}
	if opts != nil {
		var limit int64
		if opts.Limit != nil {
			limit = *opts.Limit
		}
		return fmt.Sprintf("%s|sort=%v|limit=%d", payload, opts.Sort, limit)
	}
	return string(payload)
}
