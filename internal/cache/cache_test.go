package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest []string
	assert.False(t, c.GetJSON(ctx, "k", &dest))

	c.SetJSON(ctx, "k", []string{"a"}, time.Minute)
	c.Delete(ctx, "k")
}

func TestNewWithoutAddr(t *testing.T) {
	assert.Nil(t, New("", ""))
}
