package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// IdentifySyncClient marks the request context when it carries a valid
// sync token. Requests without one pass through unmarked; handlers decide
// whether the function they dispatch needs it.
func (s *AuthMiddleware) IdentifySyncClient(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.IdentifySyncClient")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skipCheckAuthorization
			}

			err := s.auth.AuthSyncToken(ctx, token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifySyncClient: s.auth.AuthSyncToken failed"))
				goto skipCheckAuthorization
			}

			ctx = context.WithValue(ctx, domain.SyncClientCtxKey, true)
			span.SetAttributes(attribute.Bool("SyncClient", true))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// IsSyncClient reports whether IdentifySyncClient accepted the request.
func IsSyncClient(ctx context.Context) bool {
	ok, _ := ctx.Value(domain.SyncClientCtxKey).(bool)
	return ok
}
