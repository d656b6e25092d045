package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "hostbot/internal/adapters/redis"
	"hostbot/internal/app"
	"hostbot/internal/domain"
)

func TestQuote_CorruptCacheEntryIsRecomputed(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
	q := app.NewQueryService(nil, cache, time.Minute)
	f := domain.PricingFactors{Season: domain.SeasonNormal, DaysUntilArrival: 10, NightsStayed: 2}

	// prime the entry to learn its key, then corrupt it
	_, err := q.Quote(context.Background(), 100, f)
	require.NoError(t, err)
	keys := mr.Keys()
	require.Len(t, keys, 1)
	require.NoError(t, mr.Set(keys[0], "not-json"))

	p, err := q.Quote(context.Background(), 100, f)
	require.NoError(t, err)
	assert.Equal(t, 100, p)

	got, err := mr.Get(keys[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":100}`, got, "corrupt entry must be overwritten")
}

func TestQuote_NonPositiveCachedPriceIsRecomputed(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(nil, cache, time.Minute)
	f := domain.PricingFactors{Season: domain.SeasonLow, DaysUntilArrival: 10, NightsStayed: 7}

	_, err := q.Quote(context.Background(), 100, f)
	require.NoError(t, err)
	for k := range cache.store {
		cache.store[k] = []byte(`{"price":0}`)
	}

	p, err := q.Quote(context.Background(), 100, f)
	require.NoError(t, err)
	assert.Equal(t, 72, p)
}
