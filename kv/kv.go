package kv

import (
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Del when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore represents an interface for a key-value storage system
// providing basic operations plus atomic counters
type KeyValueStore interface {
	// Set stores a key-value pair with optional expiration duration
	Set(key, value string, exp time.Duration) error
	// Get retrieves the value associated with the given key
	Get(key string) (string, error)
	// Del removes the key-value pair and returns the deleted key
	Del(key string) (string, error)
	// Incr atomically increments the counter stored at key and returns
	// the new value
	Incr(key string) (int64, error)
	// Ping reports whether the store is reachable
	Ping() error
}
