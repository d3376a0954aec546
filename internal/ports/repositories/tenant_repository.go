package repositories

import (
	"context"

	"notehive/internal/domain/entities"
)

// TenantRepository определяет интерфейс для работы с хранилищем арендаторов.
type TenantRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Tenant, error)
	Create(ctx context.Context, tenant *entities.Tenant) (*entities.Tenant, error)
	Count(ctx context.Context) (int, error)
	UpdatePlanBySlug(ctx context.Context, slug string, plan entities.Plan) (*entities.Tenant, error)
}
