package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tuniskill/internal/cache"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	revokedAccessPrefix   = "blacklist:access_token:"
)

var (
	// ErrRefreshTokenNotFound is returned when a refresh token is unknown or expired.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrAccessTokenRevoked is returned for an access token revoked at logout.
	ErrAccessTokenRevoked = errors.New("access token revoked")
)

// RefreshSession is what gets stored under a refresh token ID.
type RefreshSession struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// TokenStoreInterface defines token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, session RefreshSession, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (*RefreshSession, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
	BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps refresh sessions in redis.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, session RefreshSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal refresh session: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken loads the session for tokenID. With redis down every
// refresh token reads as missing.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (*RefreshSession, error) {
	data, _ := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if data == nil {
		return nil, ErrRefreshTokenNotFound
	}

	var session RefreshSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal refresh session: %w", err)
	}
	return &session, nil
}

func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}

// BlacklistAccessToken marks an access token as revoked until it expires.
func (s *TokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, revokedAccessPrefix+tokenID, []byte("1"), ttl)
}

// IsAccessTokenBlacklisted reports whether tokenID was revoked. With redis
// down nothing reads as revoked.
func (s *TokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	data, _ := s.cache.Get(ctx, revokedAccessPrefix+tokenID)
	return data != nil, nil
}
