// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehive/internal/adapters/http/httperr"
	"notehive/internal/domain/entities"
	"notehive/internal/ports/api"
	svc "notehive/internal/ports/services"
	"notehive/pkg/logger"
)

// AuthContextKey - ключ Locals, под которым хранится контекст авторизации.
const AuthContextKey = "authContext"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidClaims      = "token claims are incomplete"
	ErrorTenantNotResolved  = "tenant from token not resolved"
)

// bearerPrefix - префикс схемы авторизации.
const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО аутентификации: извлекает
// bearer-токен, проверяет его и строит контекст авторизации из свежего
// состояния арендатора. Все дефекты токена дают одинаковый 401;
// валидный токен исчезнувшего арендатора - отдельный случай 404.
func NewAuthMiddleware(tokenSvc svc.TokenService, resolver api.TenantResolver) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return httperr.Send(ctx, entities.ErrUnauthorized)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return httperr.Send(ctx, entities.ErrUnauthorized)
		}

		claims, err := tokenSvc.Validate(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return httperr.Send(ctx, entities.ErrUnauthorized)
		}

		if claims.UserID == "" || claims.Tenant.IsZero() {
			log.Debug(requestCtx, ErrorInvalidClaims)
			return httperr.Send(ctx, entities.ErrUnauthorized)
		}

		tenant, err := resolver.Resolve(requestCtx, claims.Tenant)
		if err != nil {
			if errors.Is(err, entities.ErrTenantNotFound) {
				log.Debug(requestCtx, ErrorTenantNotResolved, zap.String("ref", claims.Tenant.Value))
				return httperr.Send(ctx, entities.ErrTenantNotFound)
			}
			return httperr.Send(ctx, err)
		}

		ctx.Locals(AuthContextKey, &entities.AuthContext{
			UserID:     claims.UserID,
			TenantID:   tenant.ID,
			TenantSlug: tenant.Slug,
			Role:       claims.Role,
			// План берется из хранилища, а не из claims: токен мог
			// быть выпущен до смены плана.
			SubscriptionPlan: tenant.SubscriptionPlan,
		})

		if err := ctx.Next(); err != nil {
			return fmt.Errorf("request processing error: %w", err)
		}
		return nil
	}
}

// AuthContextFromLocals извлекает контекст авторизации из Locals.
func AuthContextFromLocals(ctx fiber.Ctx) (*entities.AuthContext, bool) {
	actx, ok := ctx.Locals(AuthContextKey).(*entities.AuthContext)
	return actx, ok
}
