package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/cache"
)

func TestStore_PutAndGet(t *testing.T) {
	s, err := cache.New(4)
	require.NoError(t, err)

	s.Put("k", "out")
	got, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "out", got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s, err := cache.New(2)
	require.NoError(t, err)

	s.Put("a", "1")
	s.Put("b", "2")
	_, _ = s.Get("a")
	s.Put("c", "3")

	_, ok := s.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_ZeroSizeDisables(t *testing.T) {
	s, err := cache.New(0)
	require.NoError(t, err)

	s.Put("k", "v")
	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ConcurrentUse(t *testing.T) {
	s, err := cache.New(16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			s.Put(key, key)
			got, ok := s.Get(key)
			assert.True(t, ok)
			assert.Equal(t, key, got)
		}()
	}
	wg.Wait()
}
