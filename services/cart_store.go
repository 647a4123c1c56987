package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// cartTTL bounds abandoned carts; every write refreshes it.
const cartTTL = 7 * 24 * time.Hour

// RedisCartStore keeps each cart as a Redis hash keyed by session token.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (map[int]int, error) {
	raw, err := s.client.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	cart := map[int]int{}
	for field, value := range raw {
		productID, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(value)
		if err != nil || qty <= 0 {
			continue
		}
		cart[productID] = qty
	}
	return cart, nil
}

func (s *RedisCartStore) Put(ctx context.Context, sessionID string, cart map[int]int) error {
	key := cartKey(sessionID)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(cart) > 0 {
		fields := make(map[string]interface{}, len(cart))
		for productID, qty := range cart {
			fields[strconv.Itoa(productID)] = qty
		}
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, cartTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

// MemoryCartStore backs carts when Redis is not configured, and in tests.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]map[int]int
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string]map[int]int{}}
}

func (s *MemoryCartStore) Get(ctx context.Context, sessionID string) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := map[int]int{}
	for productID, qty := range s.carts[sessionID] {
		cart[productID] = qty
	}
	return cart, nil
}

func (s *MemoryCartStore) Put(ctx context.Context, sessionID string, cart map[int]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[int]int, len(cart))
	for productID, qty := range cart {
		copied[productID] = qty
	}
	s.carts[sessionID] = copied
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
