package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avolkov/lotomart/internal/domain"
)

func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// Cache keeps winning numbers in redis so repeated settlement and history
// reads skip the database. The database stays the source of truth; entries
// expire on their own.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(gameID, date string) string { return "draw:" + gameID + ":" + date }

// GetWinningNumbers returns nil on a cache miss.
func (c *Cache) GetWinningNumbers(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error) {
	b, err := c.client.Get(ctx, key(gameID, date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var wn domain.WinningNumbers
	if err := json.Unmarshal(b, &wn); err != nil {
		return nil, err
	}
	return &wn, nil
}

func (c *Cache) SetWinningNumbers(ctx context.Context, wn *domain.WinningNumbers) error {
	b, err := json.Marshal(wn)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(wn.GameID, wn.DrawDate), b, c.ttl).Err()
}
