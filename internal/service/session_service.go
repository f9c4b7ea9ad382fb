package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/microblog/internal/model"
)

const sessionKeyPrefix = "session:"

// Claims is the JWT payload for an authenticated session.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens. Each token's jti
// is tracked in Redis so logout revokes it before expiry.
type SessionService interface {
	Issue(ctx context.Context, userID string) (token string, err error)
	// Validate returns the authenticated user id for a live token.
	Validate(ctx context.Context, token string) (userID string, err error)
	Revoke(ctx context.Context, token string) error
}

type sessionService struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewSessionService(rdb *redis.Client, secret string, ttl time.Duration) SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionService{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

func (s *sessionService) Issue(ctx context.Context, userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+claims.ID, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *sessionService) Validate(ctx context.Context, token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		return "", fmt.Errorf("check session: %w", err)
	}
	if n == 0 {
		return "", fmt.Errorf("session revoked: %w", model.ErrUnauthorized)
	}
	return claims.UserID, nil
}

func (s *sessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	return s.rdb.Del(ctx, sessionKeyPrefix+claims.ID).Err()
}

func (s *sessionService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid session token: %w", model.ErrUnauthorized)
	}
	return claims, nil
}
