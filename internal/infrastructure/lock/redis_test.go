package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Planta-api/internal/infrastructure/lock"
)

// Sin servidor el fallo es de conexión, no de contención.
func TestRedis_ServidorCaidoNoEsContencion(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	l := lock.NewRedis(rdb, time.Second, zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	unlock, err := l.Lock(ctx, "inv-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, lock.ErrNotObtained)
	assert.Nil(t, unlock)
}
