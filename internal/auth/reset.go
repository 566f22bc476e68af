package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ResetTokenTTL bounds how long a password-reset link stays usable.
const ResetTokenTTL = 30 * time.Minute

// ErrResetTokenInvalid is returned when a reset token is unknown,
// expired, or already used.
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// TokenStore issues and consumes one-shot password-reset tokens.
// Consume returns the email the token was issued for and invalidates
// the token in the same step, so a link can never be replayed.
type TokenStore interface {
	Issue(email string) (string, error)
	Consume(token string) (string, error)
}

const resetKeyPrefix = "pwreset:"

// RedisTokenStore keeps reset tokens in redis, expiring with the key.
type RedisTokenStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisTokenStore(rdb *redis.Client, ctx context.Context) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb, ctx: ctx}
}

func (s *RedisTokenStore) Issue(email string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(s.ctx, resetKeyPrefix+token, email, ResetTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStore) Consume(token string) (string, error) {
	email, err := s.rdb.GetDel(s.ctx, resetKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrResetTokenInvalid
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

type memoryToken struct {
	email   string
	expires time.Time
}

// InMemoryTokenStore backs the handler test suites.
type InMemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
}

func NewInMemoryTokenStore() *InMemoryTokenStore {
	return &InMemoryTokenStore{tokens: map[string]memoryToken{}}
}

func (s *InMemoryTokenStore) Issue(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.tokens[token] = memoryToken{email: email, expires: time.Now().Add(ResetTokenTTL)}
	return token, nil
}

func (s *InMemoryTokenStore) Consume(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok || time.Now().After(entry.expires) {
		return "", ErrResetTokenInvalid
	}
	delete(s.tokens, token)
	return entry.email, nil
}
