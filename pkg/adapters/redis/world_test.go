package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/htn/pkg/adapters/redis"
	"github.com/aretw0/htn/pkg/ports/tests"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Backend) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redis.NewFromClient(client, opts...)
}

func TestRedisWorld_Contract(t *testing.T) {
	_, b := setup(t)
	world, err := b.World(context.Background(), "lab")
	require.NoError(t, err)
	tests.RunWorldContract(t, world)
}

func TestRedisContainer_Contract(t *testing.T) {
	_, b := setup(t)
	inv, err := b.Container(context.Background(), "box")
	require.NoError(t, err)
	tests.RunInventoryContract(t, inv, "box")
}

func TestRedisLocker_Contract(t *testing.T) {
	_, b := setup(t)
	tests.RunLockerContract(t, redis.NewLocker(b.Client(), b.Prefix()))
}

func TestRedisLocker_StaleUnlockKeepsNewOwner(t *testing.T) {
	ctx := context.Background()
	mr, b := setup(t)
	first := redis.NewLocker(b.Client(), b.Prefix())
	second := redis.NewLocker(b.Client(), b.Prefix())

	unlockFirst, err := first.Lock(ctx, "lab", time.Second)
	require.NoError(t, err)
	firstToken, err := mr.Get("htn:lock:lab")
	require.NoError(t, err)
	_, err = uuid.Parse(firstToken)
	assert.NoError(t, err)

	// The first holder stalls past its TTL and someone else takes over.
	mr.FastForward(2 * time.Second)
	unlockSecond, err := second.Lock(ctx, "lab", time.Minute)
	require.NoError(t, err)
	secondToken, err := mr.Get("htn:lock:lab")
	require.NoError(t, err)
	assert.NotEqual(t, firstToken, secondToken)

	require.NoError(t, unlockFirst(ctx))
	assert.True(t, mr.Exists("htn:lock:lab"))

	require.NoError(t, unlockSecond(ctx))
	assert.False(t, mr.Exists("htn:lock:lab"))
}

func TestRedisWorld_SharedAcrossHandles(t *testing.T) {
	ctx := context.Background()
	mr, b := setup(t, redis.WithPrefix("test:"))

	w1, _ := b.World(ctx, "lab")
	require.NoError(t, w1.SetHolding(ctx, "cup"))

	raw, err := mr.Get("test:world:lab:holding")
	require.NoError(t, err)
	assert.Equal(t, "cup", raw)

	w2, _ := b.World(ctx, "lab")
	held, err := w2.Holding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cup", held)
}

func TestRedisWorld_TTL_Expiration(t *testing.T) {
	ctx := context.Background()
	mr, b := setup(t, redis.WithTTL(time.Second))

	world, _ := b.World(ctx, "lab")
	require.NoError(t, world.SetHolding(ctx, "cup"))

	mr.FastForward(2 * time.Second)

	held, err := world.Holding(ctx)
	require.NoError(t, err)
	assert.Empty(t, held)
}

func TestRedisWorld_ConnectionError(t *testing.T) {
	ctx := context.Background()
	mr, b := setup(t)
	world, _ := b.World(ctx, "lab")
	mr.Close()

	_, err := world.Holding(ctx)
	assert.Error(t, err)
	assert.Error(t, world.SetHolding(ctx, "cup"))
}
