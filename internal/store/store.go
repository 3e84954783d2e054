package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Keys used by the booking engine. Every component persists through the same
// Store interface, so swapping the file backend for Redis or Postgres does
// not touch workflow logic.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "current_user"
	KeyBookings    = "bookings"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a durable key-value store. Put is synchronous: once it returns,
// a process restart observes the written value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// GetJSON loads key into dst. A missing key leaves dst untouched and
// returns ErrKeyNotFound.
func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func PutJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, data)
}
