package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New[string](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", "value")
	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)

	c.Set("key", "overwritten")
	got, ok = c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "overwritten", got)
}

func TestZeroTTLIsExpired(t *testing.T) {
	c := New[int](time.Minute)

	c.SetWithTTL("key", 42, 0)
	_, ok := c.Get("key")
	assert.False(t, ok, "zero TTL entry must be absent on the next get")

	// The expired entry was evicted by Get.
	assert.Equal(t, 0, c.Len())
}

func TestNegativeTTLIsExpired(t *testing.T) {
	c := New[int](time.Minute)

	c.SetWithTTL("key", 42, -time.Second)
	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestDeleteAndClear(t *testing.T) {
	c := New[int](time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCleanupExpired(t *testing.T) {
	c := New[int](time.Minute)

	c.SetWithTTL("expired1", 1, 0)
	c.SetWithTTL("expired2", 2, -time.Second)
	c.Set("alive", 3)

	removed := c.CleanupExpired()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get("alive")
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestDefaultTTLFallback(t *testing.T) {
	c := New[int](0)
	assert.Equal(t, DefaultTTL, c.defaultTTL)
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key_%d", i%10)
			c.Set(key, i)
			c.Get(key)
			c.CleanupExpired()
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 10)
}
