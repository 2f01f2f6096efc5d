package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/voyagehq/voyagecms/internal/config"
	"github.com/voyagehq/voyagecms/internal/domain"
)

var tracer = otel.Tracer("auth")

// AuthService resolves credentials to a requester identity. Admin routes
// carry a bearer token; the legacy dashboard still sends a session cookie,
// which is looked up in redis. Issuing either credential is the session
// provider's job, not ours.
type AuthService struct {
	config config.Auth
	rdb    *redis.Client
}

func NewAuthService(config config.Auth, rdb *redis.Client) *AuthService {
	return &AuthService{
		config: config,
		rdb:    rdb,
	}
}

type AuthResult struct {
	UserID string
	Role   string
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) AuthBearer(ctx context.Context, token string) (*AuthResult, error) {
	_, span := tracer.Start(ctx, "Auth.Service.AuthBearer")
	defer span.End()

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, domain.AuthError{Reason: "invalid token"}
	}
	if !parsed.Valid || claims.Subject == "" {
		span.RecordError(fmt.Errorf("token has no subject"))
		return nil, domain.AuthError{Reason: "invalid token"}
	}

	role := claims.Role
	if role == "" {
		role = domain.RoleViewer
	}

	return &AuthResult{UserID: claims.Subject, Role: role}, nil
}

type sessionRecord struct {
	UserID    string    `json:"userID"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *AuthService) AuthSession(ctx context.Context, sessionID string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.AuthSession")
	defer span.End()

	raw, err := s.rdb.Get(ctx, "session:"+sessionID).Result()
	if err == redis.Nil {
		return nil, domain.AuthError{Reason: "session not found"}
	}
	if err != nil {
		span.RecordError(errors.Wrap(err, "session lookup failed"))
		return nil, err
	}

	var session sessionRecord
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		span.RecordError(errors.Wrap(err, "corrupt session record"))
		return nil, domain.AuthError{Reason: "invalid session"}
	}

	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		return nil, domain.AuthError{Reason: "session expired"}
	}

	role := session.Role
	if role == "" {
		role = domain.RoleViewer
	}

	return &AuthResult{UserID: session.UserID, Role: role}, nil
}
