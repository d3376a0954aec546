// Package app содержит сценарии использования сервиса заметок.
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
	methodResolve = "Resolve"

	msgResolvingTenant     = "resolving tenant reference"
	msgTenantResolvedByID  = "tenant resolved by id"
	msgTenantResolvedSlug  = "tenant resolved by slug"
	msgTenantNotResolved   = "tenant not resolved"
	msgErrLookupTenantByID = "error looking up tenant by id"

	errCtxResolvingTenant = "resolving tenant"
)

// TenantResolverImpl реализует интерфейс api.TenantResolver.
// Ссылка пробуется сначала как канонический id, затем как slug:
// ранее выпущенные токены могли хранить slug вместо id.
type TenantResolverImpl struct {
	tenantRepo repositories.TenantRepository
}

// NewTenantResolver создает новый резолвер арендаторов.
func NewTenantResolver(tenantRepo repositories.TenantRepository) api.TenantResolver {
	return &TenantResolverImpl{tenantRepo: tenantRepo}
}

// Resolve разрешает ссылку на арендатора в каноническую запись.
func (r *TenantResolverImpl) Resolve(ctx context.Context, ref entities.TenantRef) (*entities.Tenant, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolve), zap.String("ref", ref.Value))
	log.Debug(ctx, msgResolvingTenant)

	if ref.IsZero() {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingTenant, entities.ErrTenantNotFound)
	}

	if ref.Kind == entities.TenantRefByID {
		tenant, err := r.tenantRepo.FindByID(ctx, ref.Value)
		if err == nil {
			log.Debug(ctx, msgTenantResolvedByID, zap.String("tenantID", tenant.ID))
			return tenant, nil
		}
		if !errors.Is(err, entities.ErrTenantNotFound) {
			log.Error(ctx, msgErrLookupTenantByID, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxResolvingTenant, err)
		}
	}

	tenant, err := r.tenantRepo.FindBySlug(ctx, strings.ToLower(ref.Value))
	if err != nil {
		if errors.Is(err, entities.ErrTenantNotFound) {
			log.Debug(ctx, msgTenantNotResolved)
			return nil, fmt.Errorf("%s: %w", errCtxResolvingTenant, entities.ErrTenantNotFound)
		}
		return nil, fmt.Errorf("%s: %w", errCtxResolvingTenant, err)
	}

	log.Debug(ctx, msgTenantResolvedSlug, zap.String("tenantID", tenant.ID))
	return tenant, nil
}
