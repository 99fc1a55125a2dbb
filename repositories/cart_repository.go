package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"bean-bloom/models"
)

// CartStorage is the persistence slot behind a cart store: a single
// keyed value holding the JSON-encoded line-item list. The stored form
// must round-trip, so both implementations keep the raw JSON as the
// source of truth.
type CartStorage interface {
	Load() ([]models.LineItem, error)
	Save(items []models.LineItem) error
}

// RedisCartStorage keeps the cart under one Redis key, the server-side
// analog of the browser's local-storage slot.
type RedisCartStorage struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisCartStorage(client *redis.Client, key string) *RedisCartStorage {
	return &RedisCartStorage{
		client: client,
		key:    key,
		ttl:    30 * 24 * time.Hour,
	}
}

func (s *RedisCartStorage) Load() ([]models.LineItem, error) {
	raw, err := s.client.Get(context.Background(), s.key).Result()
	if err == redis.Nil {
		return []models.LineItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisCartStorage) Save(items []models.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), s.key, string(raw), s.ttl).Err()
}

// MemoryCartStorage holds the encoded slot in memory. Used by tests and
// as a fallback when Redis is unavailable.
type MemoryCartStorage struct {
	Raw []byte
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{}
}

func (s *MemoryCartStorage) Load() ([]models.LineItem, error) {
	if len(s.Raw) == 0 {
		return []models.LineItem{}, nil
	}
	var items []models.LineItem
	if err := json.Unmarshal(s.Raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MemoryCartStorage) Save(items []models.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.Raw = raw
	return nil
}
