package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_DisabledIsAlwaysMiss(t *testing.T) {
	c := New("", "", 0)
	ctx := context.Background()

	c.SetJSON(ctx, "k", []string{"v"}, time.Minute)

	var out []string
	assert.False(t, c.GetJSON(ctx, "k", &out))
	assert.Nil(t, out)
	assert.NoError(t, c.Close())
}

func TestClient_NilIsSafe(t *testing.T) {
	var c *Client
	var out map[string]string

	assert.False(t, c.GetJSON(context.Background(), "k", &out))
	c.SetJSON(context.Background(), "k", out, time.Minute)
	assert.NoError(t, c.Close())
}

func TestClient_UnreachableRedisIsMiss(t *testing.T) {
	// Port 1 is never a redis server; every call fails and is swallowed.
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	c.SetJSON(ctx, "k", "v", time.Minute)
	var out string
	assert.False(t, c.GetJSON(ctx, "k", &out))
}
