package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/comedor/config"
)

func TestNewRedisDisabled(t *testing.T) {
	c, err := NewRedis(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNewRedisPings(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedis(context.Background(), config.RedisConfig{Enabled: true, Addr: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, c)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(context.Background(), config.RedisConfig{Enabled: true, Addr: addr})
	assert.Error(t, err)
}
