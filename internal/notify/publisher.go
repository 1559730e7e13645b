package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cat_finder_system/internal/models"
)

const (
	eventQueueKey = "realtime_events"
)

// Типы событий, рассылаемых подключенным клиентам
const (
	EventNewCat     = "NEW_CAT"
	EventNewReport  = "NEW_REPORT"
	EventCatUpdated = "CAT_UPDATED"
)

// EventData - полезная нагрузка события
type EventData struct {
	CatID string      `json:"catId,omitempty"`
	Cat   *models.Cat `json:"cat,omitempty"`
}

// Event - событие об изменении данных. Если Targets пуст, событие
// рассылается всем подключенным клиентам.
type Event struct {
	Type      string      `json:"type"`
	Data      EventData   `json:"data"`
	Targets   []uuid.UUID `json:"targets,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	return nil
}
