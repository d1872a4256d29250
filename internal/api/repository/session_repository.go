package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository.session")

// SessionRepository is the store for live sessions, keyed by token hash.
// A user has at most one live session: storing a new one revokes the
// previous token immediately.
type SessionRepository interface {
	Store(ctx context.Context, token, userID string, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (string, error)
}

type redisSessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a new Redis-based SessionRepository.
func NewSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{
		rdb: rdb,
	}
}

// Store records token -> user id and the reverse mapping, dropping the
// user's previous session key first.
func (r *redisSessionRepository) Store(ctx context.Context, token, userID string, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "SessionRepository.Store")
	defer span.End()

	userKey := fmt.Sprintf("user_session:%s", userID)
	previous, err := r.rdb.Get(ctx, userKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read previous session: %w", err)
	}

	pipe := r.rdb.Pipeline()
	if previous != "" {
		pipe.Del(ctx, fmt.Sprintf("session:%s", previous))
	}
	hash := hashToken(token)
	pipe.Set(ctx, fmt.Sprintf("session:%s", hash), userID, ttl)
	pipe.Set(ctx, userKey, hash, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Resolve maps a presented token back to a user id. Returns "" when the
// token has no live session (never issued, revoked, or aged out).
func (r *redisSessionRepository) Resolve(ctx context.Context, token string) (string, error) {
	ctx, span := tracer.Start(ctx, "SessionRepository.Resolve")
	defer span.End()

	userID, err := r.rdb.Get(ctx, fmt.Sprintf("session:%s", hashToken(token))).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
