package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/voyagehq/voyagecms/internal/config"
	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/present/rest/presenter"
	"github.com/voyagehq/voyagecms/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth   *service.AuthService
	config config.Auth
}

func NewAuthMiddleware(
	auth *service.AuthService,
	config config.Auth,
) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		config: config,
	}
}

// IdentifyRequester resolves the credential carried by the request, if any,
// and stores the requester identity in the context. It never rejects; route
// guards decide what anonymous requesters may do.
func (s *AuthMiddleware) IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyRequester")
		defer span.End()

		var result *service.AuthResult

		authHeader := c.Request().Header.Get("authorization")
		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 || split[0] != "Bearer" {
				span.RecordError(fmt.Errorf("invalid authorization header"))
				goto checkCookie
			}

			res, err := s.auth.AuthBearer(ctx, split[1])
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyRequester: bearer auth failed"))
				goto checkCookie
			}
			result = res
		}

	checkCookie:
		if result == nil {
			cookie, err := c.Cookie(s.config.SessionCookie)
			if err == nil && cookie.Value != "" {
				res, err := s.auth.AuthSession(ctx, cookie.Value)
				if err != nil {
					span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyRequester: session auth failed"))
				} else {
					result = res
				}
			}
		}

		if result != nil {
			ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, result.UserID)
			ctx = context.WithValue(ctx, domain.RequesterRoleCtxKey, result.Role)
			span.SetAttributes(attribute.String("RequesterId", result.UserID))
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireEditor guards mutation routes: the requester must be identified
// and hold an editor or admin role.
func RequireEditor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, _ := ctx.Value(domain.RequesterIdCtxKey).(string)
		if id == "" {
			return presenter.Unauthorized(c, "authentication required")
		}

		role, _ := ctx.Value(domain.RequesterRoleCtxKey).(string)
		if !domain.CanEdit(role) {
			return presenter.Forbidden(c, "content editor role required")
		}

		return next(c)
	}
}
