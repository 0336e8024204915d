package gridapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

func TestMemoryCacheSetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := gridapi.NewMemoryCache(10)

	entry := &gridapi.CacheEntry{
		Data:      []byte(`{"id":"emp-1"}`),
		ExpiresAt: time.Now().Add(time.Minute),
	}

	require.NoError(t, cache.Set(ctx, "GET /v1/employees/emp-1", entry))

	got, err := cache.Get(ctx, "GET /v1/employees/emp-1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)
	assert.True(t, cache.Has(ctx, "GET /v1/employees/emp-1"))
}

func TestMemoryCacheMiss(t *testing.T) {
	t.Parallel()

	cache := gridapi.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "missing")
	require.ErrorIs(t, err, gridapi.ErrCacheKeyNotFound)
}

func TestMemoryCacheExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := gridapi.NewMemoryCache(10)

	entry := &gridapi.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Second),
	}

	require.NoError(t, cache.Set(ctx, "key", entry))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, gridapi.ErrCacheEntryExpired)
	assert.False(t, cache.Has(ctx, "key"))
}

func TestMemoryCacheZeroExpiryNeverExpires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := gridapi.NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "key", &gridapi.CacheEntry{Data: []byte("pinned")}))

	got, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("pinned"), got.Data)
}

func TestMemoryCacheEviction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := gridapi.NewMemoryCache(2)

	older := &gridapi.CacheEntry{Data: []byte("a"), ExpiresAt: time.Now().Add(time.Minute)}
	newer := &gridapi.CacheEntry{Data: []byte("b"), ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, cache.Set(ctx, "a", older))
	require.NoError(t, cache.Set(ctx, "b", newer))
	require.NoError(t, cache.Set(ctx, "c", &gridapi.CacheEntry{
		Data:      []byte("c"),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	// The entry closest to expiry was evicted to make room.
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))
	assert.True(t, cache.Has(ctx, "c"))
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := gridapi.NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "a", &gridapi.CacheEntry{Data: []byte("a")}))
	require.NoError(t, cache.Set(ctx, "b", &gridapi.CacheEntry{Data: []byte("b")}))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *gridapi.CacheConfig
		wantNil bool
	}{
		{
			name:    "nil config uses memory default",
			config:  nil,
			wantNil: false,
		},
		{
			name:    "memory cache",
			config:  &gridapi.CacheConfig{Type: gridapi.CacheTypeMemory, MaxSize: 16},
			wantNil: false,
		},
		{
			name:    "disabled cache",
			config:  &gridapi.CacheConfig{Type: gridapi.CacheTypeNone},
			wantNil: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cache, err := gridapi.NewCacheFromConfig(tt.config)
			require.NoError(t, err)
			assert.NotNil(t, cache)
		})
	}
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cache, err := gridapi.NewCacheFromConfig(&gridapi.CacheConfig{Type: gridapi.CacheTypeNone})
	require.NoError(t, err)

	require.NoError(t, cache.Set(ctx, "key", &gridapi.CacheEntry{Data: []byte("x")}))

	_, err = cache.Get(ctx, "key")
	require.ErrorIs(t, err, gridapi.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
}
