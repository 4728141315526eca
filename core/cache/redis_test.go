package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Address: "localhost:6379"}.Enabled())
	assert.Equal(t, 24*time.Hour, Config{}.TTL())
	assert.Equal(t, time.Minute, Config{TTLSeconds: 60}.TTL())
}

func TestNewRedis(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		c, err := NewRedis(context.Background(), Config{})
		assert.ErrorIs(t, err, ErrDisabled)
		assert.Nil(t, c)
	})

	t.Run("Unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		c, err := NewRedis(ctx, Config{Address: "127.0.0.1:1"})
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestOptions(t *testing.T) {
	t.Run("HostPort", func(t *testing.T) {
		opts, err := options(Config{Address: "cache:6379", Password: "pw", DB: 2})
		require.NoError(t, err)
		assert.Equal(t, "cache:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("URL", func(t *testing.T) {
		opts, err := options(Config{Address: "redis://:secret@cache:6380/3"})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("InvalidURL", func(t *testing.T) {
		_, err := options(Config{Address: "redis://cache:6379/notadb"})
		assert.Error(t, err)
	})
}

func TestRedisCache_CloseNil(t *testing.T) {
	var c *RedisCache
	assert.NoError(t, c.Close())
}
