package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStorageUnavailable is an exported constant or variable used by the console core.
var ErrStorageUnavailable = errors.New("session storage unavailable")

const redisStorageTimeout = 5 * time.Second

// RedisStorage shares one console session across replicas of a
// server-rendered embedding. Token and identity live under two keys but are
// always written and deleted in one transaction.
//
// RedisStorage instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RedisStorage struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStorage creates a Redis-backed storage adapter. prefix namespaces
// the keys, e.g. "gc:console-1".
func NewRedisStorage(client redis.UniversalClient, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = "gc"
	}
	return &RedisStorage{redis: client, prefix: prefix}
}

func (r *RedisStorage) tokenKey() string {
	return r.prefix + ":token"
}

func (r *RedisStorage) identityKey() string {
	return r.prefix + ":user"
}

// Read describes the read operation and its observable behavior.
// A half-present pair (token without identity or the reverse) reads as
// present-but-torn; the Store above erases it.
func (r *RedisStorage) Read() (Record, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisStorageTimeout)
	defer cancel()

	values, err := r.redis.MGet(ctx, r.tokenKey(), r.identityKey()).Result()
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	rec := Record{
		Token:    redisString(values[0]),
		Identity: redisString(values[1]),
	}
	if rec.Token == "" && rec.Identity == "" {
		return Record{}, false, nil
	}
	return rec, true, nil
}

// Write describes the write operation and its observable behavior.
func (r *RedisStorage) Write(rec Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisStorageTimeout)
	defer cancel()

	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenKey(), rec.Token, 0)
		pipe.Set(ctx, r.identityKey(), rec.Identity, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Erase describes the erase operation and its observable behavior.
func (r *RedisStorage) Erase() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisStorageTimeout)
	defer cancel()

	if err := r.redis.Del(ctx, r.tokenKey(), r.identityKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func redisString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
