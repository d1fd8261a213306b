package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/htn"
	"github.com/aretw0/htn/internal/logging"
	"github.com/aretw0/htn/pkg/adapters/memory"
	"github.com/aretw0/htn/pkg/adapters/redis"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Backend bundles where worlds live with the locker that guards them.
type Backend struct {
	Worlds ports.WorldBackend
	Locker ports.DistributedLocker
	close  func() error
}

// Close releases the backend connection, if any.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// NewLogger builds the command logger from the flags. Logs go to stderr.
func NewLogger(opts Options) (*slog.Logger, error) {
	return newLogger(os.Stderr, opts)
}

func newLogger(w io.Writer, opts Options) (*slog.Logger, error) {
	level := slog.LevelInfo
	if opts.LogLevel != "" {
		var err error
		if level, err = logging.ParseLevel(opts.LogLevel); err != nil {
			return nil, err
		}
	}
	if opts.Debug {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(w, level, opts.LogJSON), nil
}

// NewBackend connects to Redis when a URL is configured, otherwise uses memory.
func NewBackend(ctx context.Context, opts Options) (*Backend, error) {
	if opts.RedisURL == "" {
		return &Backend{Worlds: memory.NewBackend(), Locker: memory.NewLocker()}, nil
	}

	redisOpts, err := backend.ParseURL(opts.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: redis url: %v", domain.ErrInvalidArgument, err)
	}
	client := backend.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", redisOpts.Addr, err)
	}

	var adapterOpts []redis.Option
	if opts.RedisPrefix != "" {
		adapterOpts = append(adapterOpts, redis.WithPrefix(opts.RedisPrefix))
	}
	worlds := redis.NewFromClient(client, adapterOpts...)
	return &Backend{
		Worlds: worlds,
		Locker: redis.NewLocker(client, worlds.Prefix()),
		close:  client.Close,
	}, nil
}

// NewEngine initializes an engine with standard CLI conventions.
func NewEngine(opts Options, logger *slog.Logger, b *Backend, extra ...htn.Option) *htn.Engine {
	engineOpts := []htn.Option{htn.WithLogger(logger)}
	if opts.Debug {
		engineOpts = append(engineOpts, htn.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if b != nil && b.Locker != nil {
		engineOpts = append(engineOpts, htn.WithLocker(b.Locker, htn.DefaultLockTTL))
	}
	return htn.New(append(engineOpts, extra...)...)
}
