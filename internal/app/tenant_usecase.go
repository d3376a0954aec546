package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"notehive/internal/domain/entities"
	"notehive/internal/ports/api"
	"notehive/internal/ports/repositories"
	"notehive/pkg/logger"
)

const (
	methodUpgradeToPro = "UpgradeToPro"

	msgUpgradingTenant     = "upgrading tenant to pro"
	msgUpgradeNotAdmin     = "upgrade attempt by non-admin"
	msgUpgradeOtherTenant  = "upgrade attempt on foreign tenant"
	msgUpgradeTargetAbsent = "upgrade target tenant not found"
	msgTenantUpgraded      = "tenant upgraded to pro"

	errCtxCheckingRole   = "checking role"
	errCtxCheckingTenant = "checking tenant ownership"
	errCtxUpgradingPlan  = "upgrading plan"
)

// TenantUseCaseImpl реализует интерфейс api.TenantUseCase.
type TenantUseCaseImpl struct {
	tenantRepo repositories.TenantRepository
}

// NewTenantUseCase создает новый экземпляр сценария управления арендатором.
func NewTenantUseCase(tenantRepo repositories.TenantRepository) api.TenantUseCase {
	return &TenantUseCaseImpl{tenantRepo: tenantRepo}
}

// UpgradeToPro переводит арендатора на план pro. Доступно только
// администратору и только для собственного арендатора. Повторный
// перевод уже переведенного арендатора - успех, а не ошибка.
func (t *TenantUseCaseImpl) UpgradeToPro(ctx context.Context, actx *entities.AuthContext, targetSlug string) (*entities.Tenant, error) {
	targetSlug = strings.ToLower(targetSlug)

	log := logger.Log(ctx).With(
		zap.String("method", methodUpgradeToPro),
		zap.String("userID", actx.UserID),
		zap.String("targetSlug", targetSlug),
	)
	log.Debug(ctx, msgUpgradingTenant)

	if actx.Role != entities.RoleAdmin {
		log.Debug(ctx, msgUpgradeNotAdmin, zap.String("role", string(actx.Role)))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRole, entities.ErrForbidden)
	}

	if actx.TenantSlug != targetSlug {
		log.Debug(ctx, msgUpgradeOtherTenant, zap.String("ownSlug", actx.TenantSlug))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingTenant, entities.ErrForbidden)
	}

	tenant, err := t.tenantRepo.UpdatePlanBySlug(ctx, targetSlug, entities.PlanPro)
	if err != nil {
		if errors.Is(err, entities.ErrTenantNotFound) {
			log.Debug(ctx, msgUpgradeTargetAbsent)
			return nil, fmt.Errorf("%s: %w", errCtxUpgradingPlan, entities.ErrTenantNotFound)
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpgradingPlan, err)
	}

	log.Info(ctx, msgTenantUpgraded, zap.String("tenantID", tenant.ID))
	return tenant, nil
}
