package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type fakeRedis struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	default:
		f.values[key] = fmt.Sprint(v)
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, "", 12*time.Hour)

	assert.Equal(t, DefaultRedisKey, store.Key)

	creds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, creds.IsZero())

	require.NoError(t, store.Save(ctx, Credentials{AccessToken: "a1", RefreshToken: "r1"}))
	assert.JSONEq(t, `{"access":"a1","refresh":"r1"}`, client.values[DefaultRedisKey])
	assert.Equal(t, 12*time.Hour, client.ttls[DefaultRedisKey])

	creds, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Credentials{AccessToken: "a1", RefreshToken: "r1"}, creds)

	require.NoError(t, store.Clear(ctx))
	creds, err = store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, creds.IsZero())
}

func TestRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	client.failErr = errors.New("connection reset")
	store := NewRedisStore(client, "team:session", 0)

	_, err := store.Load(ctx)
	assert.ErrorContains(t, err, "failed to read team:session from redis")

	err = store.Save(ctx, Credentials{AccessToken: "a"})
	assert.ErrorContains(t, err, "failed to write team:session to redis")

	err = store.Clear(ctx)
	assert.ErrorContains(t, err, "failed to delete team:session from redis")

	client.failErr = nil
	client.values["team:session"] = "not json"
	_, err = store.Load(ctx)
	assert.ErrorContains(t, err, "failed to decode credentials")
}

func TestRedisStore_Container(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, RedisOptions{Addr: fmt.Sprintf("%s:%s", host, port.Port()), MaxAttempts: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	first := NewState(NewRedisStore(client, "hrctl:test", time.Minute))
	second := NewState(NewRedisStore(client, "hrctl:test", time.Minute))

	require.NoError(t, first.Replace(ctx, Credentials{AccessToken: "old", RefreshToken: "r1"}))

	creds, err := first.Refresh(ctx, "old", func(context.Context, string) (Credentials, error) {
		return Credentials{AccessToken: "new", RefreshToken: "r2"}, nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new", creds.AccessToken)

	creds, err = second.Refresh(ctx, "old", func(context.Context, string) (Credentials, error) {
		t.Error("second process must reuse the rotated pair")
		return Credentials{}, nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, Credentials{AccessToken: "new", RefreshToken: "r2"}, creds)
}
