package redis

import (
	"errors"
	"time"

	"github.com/gavelauto/goapi/base/ctx"
)

const (
	// Forever means the key has no associated expire
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("key not found")

	// ErrPoolNotReady is returned when no usable pool can serve the command
	ErrPoolNotReady = errors.New("redis pool not ready")
)

// Service abstract the redis layer
type Service interface {
	// Get returns the value of key, ErrNotFound if the key does not exist
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets key to hold val with the given expire, use Forever to skip the TTL
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys, returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// Exists returns if the key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// TTL returns the remaining time to live of a key in seconds
	TTL(context ctx.Ctx, key string) (int, error)

	// Incrby increments the number stored at key by val and returns the new value
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
