package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
)

// ErrAuthExpired is returned for any read performed against a session
// that no longer exists. Callers must treat it as a hard stop for the
// current run, distinct from item-level failures.
var ErrAuthExpired = errors.New("session expired")

const keyPrefix = "session:"

// Store keeps admin sessions in redis with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) Store {
	if rdb == nil {
		panic("rdb is nil")
	}
	return Store{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s Store) Start(ctx context.Context, adminID string) (string, error) {
	token := shortuuid.New()

	err := s.rdb.Set(ctx, keyPrefix+token, adminID, s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("could not store session: %w", err)
	}

	return token, nil
}

// Validate returns the admin the token belongs to, or ErrAuthExpired if
// the session is gone.
func (s Store) Validate(ctx context.Context, token string) (string, error) {
	adminID, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrAuthExpired
	}
	if err != nil {
		return "", fmt.Errorf("could not read session: %w", err)
	}

	return adminID, nil
}

func (s Store) Revoke(ctx context.Context, token string) error {
	err := s.rdb.Del(ctx, keyPrefix+token).Err()
	if err != nil {
		return fmt.Errorf("could not revoke session: %w", err)
	}
	return nil
}
