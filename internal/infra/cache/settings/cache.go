package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const keyPrefix = "venue_booking:settings:"

// ErrCache возвращается при ошибках работы с Redis
var ErrCache = errors.New("settings.cache: redis error")

// Client подмножество команд *redis.Client, которое использует кэш
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache кэш настроек аккаунта в Redis (JSON)
type Cache struct {
	client Client
	ttl    time.Duration
}

func NewCache(client Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(accountID int64) string {
	return keyPrefix + strconv.FormatInt(accountID, 10)
}

// Get возвращает настройки из кэша; ok=false при промахе
func (c *Cache) Get(ctx context.Context, accountID int64) (*domain.AccountSettings, bool, error) {
	raw, err := c.client.Get(ctx, key(accountID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	var s domain.AccountSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, fmt.Errorf("%w: Get - decode: %v", ErrCache, err)
	}

	return &s, true, nil
}

func (c *Cache) Set(ctx context.Context, s *domain.AccountSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, key(s.AccountID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, accountID int64) error {
	if err := c.client.Del(ctx, key(accountID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}

// Noop кэш-заглушка, используется когда Redis выключен в конфигурации
type Noop struct{}

func (Noop) Get(context.Context, int64) (*domain.AccountSettings, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, *domain.AccountSettings) error { return nil }

func (Noop) Invalidate(context.Context, int64) error { return nil }
