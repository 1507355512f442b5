package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func testQuotes(courierID string) []model.CourierQuote {
	return []model.CourierQuote{
		{CourierID: courierID, Price: decimal.NewFromFloat(50), EstimatedDays: 3},
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key1", testQuotes("bluedart"))
	got, ok := c.Get("key1")
	require.True(t, ok)
	assert.Equal(t, testQuotes("bluedart"), got)
}

func TestShardedCache_Invalidate(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	c.Set("key1", testQuotes("bluedart"))
	c.Invalidate("key1")

	_, ok := c.Get("key1")
	assert.False(t, ok)
}

func TestShardedCache_Clear(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("key%d", i), testQuotes("bluedart"))
	}
	c.Clear()

	for i := 0; i < 10; i++ {
		_, ok := c.Get(fmt.Sprintf("key%d", i))
		assert.False(t, ok)
	}
	assert.Zero(t, c.Metrics().Size)
}

func TestShardedCache_TTLExpiration(t *testing.T) {
	c := NewShardedCache(100, 20*time.Millisecond, 4)
	defer c.Stop()

	c.Set("key1", testQuotes("bluedart"))
	_, ok := c.Get("key1")
	require.True(t, ok)

	// The cached clock can lag by up to 100ms, so wait past that too.
	time.Sleep(150 * time.Millisecond)

	_, ok = c.Get("key1")
	assert.False(t, ok)
}

func TestShardedCache_CapacityEviction(t *testing.T) {
	// 4 shards with total capacity 4 means one entry per shard; a second
	// entry hashing to the same shard evicts the first.
	c := NewShardedCache(4, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 32; i++ {
		c.Set(fmt.Sprintf("key%d", i), testQuotes("bluedart"))
	}

	m := c.Metrics()
	assert.LessOrEqual(t, m.Size, 4)
	assert.Greater(t, m.Evictions, int64(0))
}

func TestShardedCache_Metrics(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	c.Set("key1", testQuotes("bluedart"))
	c.Get("key1")
	c.Get("key1")
	c.Get("nope")

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}

func TestNewShardedCache_RoundsShardsToPowerOfTwo(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 5)
	defer c.Stop()

	assert.Equal(t, 8, c.numShards)

	d := NewShardedCache(100, time.Minute, 0)
	defer d.Stop()
	assert.Equal(t, 16, d.numShards)
}
