// Package cartstore persists shopping carts in Redis. Carts are volatile
// pre-checkout state: a JSON blob per customer with a sliding TTL, dropped
// entirely on checkout.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched cart survives before Redis drops it.
const DefaultTTL = 7 * 24 * time.Hour

type storedLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RedisCartStore implements ports.CartStore on a Redis client.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store with the default TTL.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: DefaultTTL}
}

// Get retrieves a customer's cart. A missing key reads as an empty cart.
func (s *RedisCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, key(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(customerID)
	}
	if err != nil {
		return nil, err
	}

	var stored []storedLine
	if err = json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("corrupt cart for %s: %w", customerID, err)
	}

	lines := make([]cart.Line, 0, len(stored))
	for _, line := range stored {
		productID, idErr := kernel.UUIDFromString(line.ProductID)
		if idErr != nil {
			return nil, fmt.Errorf("corrupt cart for %s: %w", customerID, idErr)
		}
		lines = append(lines, cart.Line{ProductID: productID, Quantity: line.Quantity})
	}

	return cart.RestoreCart(customerID, lines)
}

// Save replaces the stored cart and refreshes its TTL. An empty cart is
// removed instead of stored.
func (s *RedisCartStore) Save(ctx context.Context, aggregate *cart.Cart) error {
	if aggregate.IsEmpty() {
		return s.Clear(ctx, aggregate.CustomerID())
	}

	stored := make([]storedLine, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		stored = append(stored, storedLine{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key(aggregate.CustomerID()), raw, s.ttl).Err()
}

// Clear removes the customer's cart.
func (s *RedisCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	return s.client.Del(ctx, key(customerID)).Err()
}

func key(customerID kernel.UUID) string {
	return "cart:" + customerID.String()
}
