package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voyagehq/voyagecms/internal/config"
	"github.com/voyagehq/voyagecms/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims tokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestAuthBearer(t *testing.T) {
	svc := NewAuthService(config.Auth{TokenSecret: testSecret}, nil)
	ctx := context.Background()

	token := signToken(t, testSecret, tokenClaims{
		Role: domain.RoleEditor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	result, err := svc.AuthBearer(ctx, token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if result.UserID != "user-42" || result.Role != domain.RoleEditor {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestAuthBearerDefaultsToViewer(t *testing.T) {
	svc := NewAuthService(config.Auth{TokenSecret: testSecret}, nil)

	token := signToken(t, testSecret, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"},
	})

	result, err := svc.AuthBearer(context.Background(), token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if result.Role != domain.RoleViewer {
		t.Fatalf("expected viewer role, got %q", result.Role)
	}
}

func TestAuthBearerRejections(t *testing.T) {
	svc := NewAuthService(config.Auth{TokenSecret: testSecret}, nil)
	ctx := context.Background()

	cases := map[string]string{
		"wrong secret": signToken(t, "other-secret", tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"},
		}),
		"expired": signToken(t, testSecret, tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}),
		"no subject": signToken(t, testSecret, tokenClaims{}),
		"garbage":    "not-a-token",
	}

	for name, token := range cases {
		_, err := svc.AuthBearer(ctx, token)
		var aerr domain.AuthError
		if err == nil || !errors.As(err, &aerr) {
			t.Fatalf("%s: expected AuthError, got %v", name, err)
		}
	}
}
