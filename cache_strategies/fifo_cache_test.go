package cache_strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestFIFOCacheEviction(t *testing.T) {
	c := NewFIFOCache(3, zaptest.NewLogger(t))
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())

	// 命中不改变顺序
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("d", 4)
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []string{"b", "c", "d"}, c.Keys())
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestFIFOCacheUpdateKeepsPosition(t *testing.T) {
	c := NewFIFOCache(2, nil)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, _ := c.Get("a")
	assert.Equal(t, 10, v)

	c.Put("c", 3)
	assert.Equal(t, []string{"b", "c"}, c.Keys())
}

func TestFIFOCacheRemove(t *testing.T) {
	c := NewFIFOCache(4, nil)
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Put(k, k)
	}

	assert.True(t, c.Remove("b"))
	assert.Equal(t, []string{"a", "c", "d"}, c.Keys())
	assert.True(t, c.Remove("d"))
	assert.True(t, c.Remove("a"))
	assert.Equal(t, []string{"c"}, c.Keys())
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 1, c.Size())

	c.Put("e", 5)
	assert.Equal(t, []string{"c", "e"}, c.Keys())
}

func TestFIFOCacheClear(t *testing.T) {
	c := NewFIFOCache(2, nil)
	c.Put("a", 1)
	c.Clear()
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, []string{}, c.Keys())

	c.Put("b", 2)
	assert.Equal(t, []string{"b"}, c.Keys())
}

func TestFIFOCacheDemo(t *testing.T) {
	assert.NotPanics(t, func() { FIFOCacheDemo(3, zaptest.NewLogger(t)) })
}
