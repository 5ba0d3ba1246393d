package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodcourt/internal/cart"

	"github.com/go-redis/redis/v8"
)

// Client is a cart.Store backed by Redis. Saves publish the new snapshot on a
// per-key channel so other sessions watching the same cart pick it up.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, cartTTL time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: cartTTL}, nil
}

func cartKey(key string) string {
	return "cart:" + key
}

func changeChannel(key string) string {
	return "cartchange:" + key
}

func (c *Client) Save(ctx context.Context, key string, state cart.State) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart state: %w", err)
	}

	if err := c.rdb.Set(ctx, cartKey(key), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return c.rdb.Publish(ctx, changeChannel(key), jsonData).Err()
}

func (c *Client) Load(ctx context.Context, key string) (cart.State, bool, error) {
	val, err := c.rdb.Get(ctx, cartKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return cart.Empty(), false, nil
		}
		return cart.Empty(), false, fmt.Errorf("failed to load cart: %w", err)
	}

	var state cart.State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return cart.Empty(), false, fmt.Errorf("failed to unmarshal cart state: %w", err)
	}
	return state, true, nil
}

// Watch subscribes to the cart's change channel until ctx is cancelled.
func (c *Client) Watch(ctx context.Context, key string) (<-chan cart.State, error) {
	sub := c.rdb.Subscribe(ctx, changeChannel(key))
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to cart changes: %w", err)
	}

	out := make(chan cart.State)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var state cart.State
				if err := json.Unmarshal([]byte(msg.Payload), &state); err != nil {
					continue
				}
				select {
				case out <- state:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
