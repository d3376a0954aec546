// Package tenants содержит HTTP обработчики управления арендаторами.
package tenants

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehive/internal/adapters/http/dto"
	"notehive/internal/adapters/http/httperr"
	"notehive/internal/adapters/http/middleware"
	"notehive/internal/domain/entities"
	"notehive/internal/ports/api"
	"notehive/pkg/logger"
)

// Константы для логирования.
const (
	LogUpgradeRequest  = "tenant upgrade request"
	LogUpgradeSuccess  = "tenant upgraded to pro"
	ErrorNoAuthContext = "auth context missing in request"

	MsgUpgraded = "Subscription upgraded to Pro successfully"
)

// Handler обрабатывает HTTP запросы управления арендаторами.
type Handler struct {
	tenantUseCase api.TenantUseCase
}

// NewHandler создает новый обработчик арендаторов.
func NewHandler(tenantUseCase api.TenantUseCase) *Handler {
	return &Handler{tenantUseCase: tenantUseCase}
}

// Upgrade переводит арендатора на план pro.
func (h *Handler) Upgrade(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	slug := ctx.Params("slug")
	log.Debug(requestCtx, LogUpgradeRequest, zap.String("slug", slug))

	actx, ok := middleware.AuthContextFromLocals(ctx)
	if !ok {
		log.Error(requestCtx, ErrorNoAuthContext)
		return httperr.Send(ctx, entities.ErrUnauthorized)
	}

	tenant, err := h.tenantUseCase.UpgradeToPro(requestCtx, actx, slug)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	log.Info(requestCtx, LogUpgradeSuccess, zap.String("slug", tenant.Slug))

	if err := ctx.Status(fiber.StatusOK).JSON(dto.UpgradeResponse{
		Message: MsgUpgraded,
		Tenant:  dto.NewTenantPayload(tenant),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
