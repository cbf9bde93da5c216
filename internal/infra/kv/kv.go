package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("kv: key not found")

// Store is the persistent key-value medium behind the local slots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	DriverBadger = "badger"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Options struct {
	Driver   string
	Path     string
	RedisURL string
}

// Open returns the store selected by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverBadger:
		return OpenBadger(opts.Path)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisURL)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kv: unknown driver %q", opts.Driver)
	}
}
