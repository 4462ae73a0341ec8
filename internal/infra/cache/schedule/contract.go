package schedule

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Loader источник расписаний (репозиторий postgres)
type Loader interface {
	LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error)
}

// Client подмножество команд redis, которое использует кеш. Реализуется *redis.Client.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Recorder интерфейс для метрик кеша
type Recorder interface {
	ObserveCache(result string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveCache(string) {}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
