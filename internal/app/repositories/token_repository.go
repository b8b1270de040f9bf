package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
)

// Redis key prefix for refresh tokens
const refreshTokenKeyPrefix = "auth:refresh:"

// TokenRepository stores refresh tokens in Redis with a TTL. The key is the
// opaque token value; the stored value is the owning user ID.
type TokenRepository struct {
	client *redis.Client
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

// Save stores a refresh token for a user with the given TTL
func (r *TokenRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, refreshTokenKeyPrefix+token, userID, ttl).Err()
}

// Resolve returns the user ID owning a refresh token.
// Unknown or expired tokens yield apperrors.ErrTokenNotFound.
func (r *TokenRepository) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrTokenNotFound
		}
		return "", err
	}
	return userID, nil
}

// Delete removes a refresh token. Deleting an absent token is not an error.
func (r *TokenRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, refreshTokenKeyPrefix+token).Err()
}
