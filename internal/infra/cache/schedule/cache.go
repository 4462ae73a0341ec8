package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "availability:schedule:"

// Результаты обращения к кешу для метрик
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Cache read-through кеш расписаний бизнеса в redis.
// Ошибки redis не ломают запрос: они логируются, и расписание читается из Loader.
type Cache struct {
	client   Client
	loader   Loader
	ttl      time.Duration
	logger   Logger
	recorder Recorder
}

// NewCache создает кеш расписаний
func NewCache(client Client, loader Loader, ttl time.Duration, logger Logger, recorder Recorder) *Cache {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Cache{
		client:   client,
		loader:   loader,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

// LoadSchedule возвращает расписание из кеша или загружает его и кладет в кеш
func (c *Cache) LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error) {
	key := cacheKey(businessID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedSchedule
		if err := json.Unmarshal(data, &cached); err == nil {
			c.recorder.ObserveCache(ResultHit)
			return cached.toDomain(), nil
		}
		c.logger.Warn("schedule.cache: corrupted entry %s, reloading: %v", key, err)
		c.recorder.ObserveCache(ResultError)
	case errors.Is(err, redis.Nil):
		c.recorder.ObserveCache(ResultMiss)
	default:
		c.logger.Warn("schedule.cache: get %s failed: %v", key, err)
		c.recorder.ObserveCache(ResultError)
	}

	schedule, err := c.loader.LoadSchedule(ctx, businessID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, schedule)
	return schedule, nil
}

func (c *Cache) store(ctx context.Context, key string, schedule *domain.BusinessSchedule) {
	data, err := json.Marshal(fromDomain(schedule))
	if err != nil {
		c.logger.Warn("schedule.cache: marshal %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("schedule.cache: set %s failed: %v", key, err)
	}
}

func cacheKey(businessID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, businessID)
}
