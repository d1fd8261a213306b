package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Backend implements ports.WorldBackend using Redis.
// World and container state survive the process, so several runs can act on the same world.
type Backend struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Backend)

// WithTTL sets the expiration for world keys.
func WithTTL(ttl time.Duration) Option {
	return func(b *Backend) {
		b.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(b *Backend) {
		b.prefix = prefix
	}
}

// New creates a new Redis backend with options.
func New(address, password string, db int, opts ...Option) *Backend {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis backend from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Backend {
	b := &Backend{
		client: client,
		prefix: "htn:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Client exposes the underlying client, e.g. to build a Locker on it.
func (b *Backend) Client() *backend.Client {
	return b.client
}

// Prefix returns the key prefix.
func (b *Backend) Prefix() string {
	return b.prefix
}

// World returns the world stored under id.
func (b *Backend) World(ctx context.Context, id string) (domain.World, error) {
	return &World{client: b.client, key: b.prefix + "world:" + id + ":holding", ttl: b.ttl}, nil
}

// Container returns the container stored under id.
func (b *Backend) Container(ctx context.Context, id string) (ports.Inventory, error) {
	return &Container{client: b.client, id: id, key: b.prefix + "container:" + id + ":items", ttl: b.ttl}, nil
}

// World implements domain.World on a single Redis key.
type World struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

// Holding returns the held item identity, or "".
func (w *World) Holding(ctx context.Context) (string, error) {
	val, err := w.client.Get(ctx, w.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// SetHolding replaces the held identity. An empty id deletes the key.
func (w *World) SetHolding(ctx context.Context, id string) error {
	if id == "" {
		if err := w.client.Del(ctx, w.key).Err(); err != nil {
			return fmt.Errorf("failed to delete from redis: %w", err)
		}
		return nil
	}
	if err := w.client.Set(ctx, w.key, id, w.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Container implements ports.Inventory on a Redis list.
type Container struct {
	client *backend.Client
	id     string
	key    string
	ttl    time.Duration
}

// Identity implements domain.Identifier.
func (c *Container) Identity() string { return c.id }

// AddItem appends the item identity to the list.
func (c *Container) AddItem(ctx context.Context, item *domain.Item) error {
	pipe := c.client.TxPipeline()
	pipe.RPush(ctx, c.key, item.ID)
	if c.ttl > 0 {
		pipe.Expire(ctx, c.key, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Items returns the stored identities, in insertion order.
func (c *Container) Items(ctx context.Context) ([]string, error) {
	items, err := c.client.LRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return items, nil
}
