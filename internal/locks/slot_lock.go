package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/tutor-scheduler/internal/config"
)

// SlotLocker serializa o check-then-create de um slot entre instâncias.
// Best effort: o índice único do banco é quem garante a exclusividade final.
type SlotLocker interface {
	AcquireSlot(ctx context.Context, tutorID uint, date, hhmm string, ttl time.Duration) (bool, error)
	ReleaseSlot(ctx context.Context, tutorID uint, date, hhmm string) error
}

type RedisSlotLocker struct {
	client *redis.Client
}

func NewRedisSlotLocker(cfg *config.Config) *RedisSlotLocker {
	return &RedisSlotLocker{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func (l *RedisSlotLocker) AcquireSlot(
	ctx context.Context,
	tutorID uint,
	date string,
	hhmm string,
	ttl time.Duration,
) (bool, error) {
	return l.client.SetNX(ctx, slotKey(tutorID, date, hhmm), "locked", ttl).Result()
}

func (l *RedisSlotLocker) ReleaseSlot(
	ctx context.Context,
	tutorID uint,
	date string,
	hhmm string,
) error {
	return l.client.Del(ctx, slotKey(tutorID, date, hhmm)).Err()
}

func slotKey(tutorID uint, date, hhmm string) string {
	return fmt.Sprintf("lock:slot:%d:%s:%s", tutorID, date, hhmm)
}

var _ SlotLocker = (*RedisSlotLocker)(nil)
