package locker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryRedis encodes values the same way the redis repository does.
type memoryRedis struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return m.err
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], m.err
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = string(data)
	return true, nil
}

func TestLockService_TryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	redis := newMemoryRedis()
	service := NewLockService(redis, zap.NewNop())

	acquired, value, err := service.TryLock(ctx, "relatorio:abc", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)
	require.NotEmpty(t, value)

	again, otherValue, err := service.TryLock(ctx, "relatorio:abc", time.Second)
	require.NoError(t, err)
	assert.False(t, again)
	assert.Empty(t, otherValue)

	err = service.Unlock(ctx, "relatorio:abc", "someone-else")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Contains(t, customErr.Unwrap().Error(), "owned by another holder")

	require.NoError(t, service.Unlock(ctx, "relatorio:abc", value))
	acquired, _, err = service.TryLock(ctx, "relatorio:abc", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockService_UnlockExpiredLock(t *testing.T) {
	service := NewLockService(newMemoryRedis(), zap.NewNop())
	assert.NoError(t, service.Unlock(context.Background(), "relatorio:gone", "value"))
}

func TestLockService_RedisFailure(t *testing.T) {
	redis := newMemoryRedis()
	redis.err = errors.New("connection refused")
	service := NewLockService(redis, zap.NewNop())

	acquired, _, err := service.TryLock(context.Background(), "relatorio:abc", time.Second)
	assert.False(t, acquired)
	assert.ErrorContains(t, err, "connection refused")

	assert.ErrorContains(t, service.Unlock(context.Background(), "relatorio:abc", "v"), "connection refused")
}

func TestNoopLocker(t *testing.T) {
	locker := NewNoopLocker()
	acquired, _, err := locker.TryLock(context.Background(), "k", time.Second)
	assert.NoError(t, err)
	assert.True(t, acquired)
	assert.NoError(t, locker.Unlock(context.Background(), "k", ""))
}
