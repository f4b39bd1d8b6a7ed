// Package session holds the staff member's authentication state: the bearer
// token, its durable persistence, and the normalized profile. The Manager is
// constructed explicitly and injected wherever it is needed; there is no
// package-level session state.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
)

// SessionTokenKey is the fixed key the token is persisted under.
const SessionTokenKey = "gymdesk:session:token"

// ErrNoToken is returned by a TokenStore when no token is persisted.
var ErrNoToken = errors.New("no session token stored")

// TokenStore persists the single session token under a fixed key.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

// RedisTokenStore keeps the token in Redis so a restart preserves the login.
// No TTL is set; the remote API decides when the token stops being valid.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore wraps an already-connected Redis client.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, SessionTokenKey, token, 0).Err()
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, SessionTokenKey).Result()
	if err == redis.Nil {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context) error {
	return s.client.Del(ctx, SessionTokenKey).Err()
}

// MemoryTokenStore is an in-process TokenStore, used in tests and when no
// Redis is configured.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryTokenStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
