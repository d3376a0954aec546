package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notehive/internal/domain/entities"
	"notehive/internal/ports/repositories"
	"notehive/pkg/logger"
)

// TenantRepository реализует интерфейс repositories.TenantRepository.
type TenantRepository struct {
	pool PgxPoolInterface
}

// NewTenantRepository создает новый экземпляр репозитория арендаторов.
func NewTenantRepository(pool PgxPoolInterface) repositories.TenantRepository {
	return &TenantRepository{pool: pool}
}

// FindByID находит арендатора по каноническому идентификатору.
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*entities.Tenant, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tenant"), zap.String("method", "FindByID"))

	query := `
        SELECT id, slug, name, subscription_plan, created_at
        FROM tenants
        WHERE id = $1
    `

	var tenant entities.Tenant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.Name,
		&tenant.SubscriptionPlan,
		&tenant.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tenant not found", zap.String("id", id))
			return nil, entities.ErrTenantNotFound
		}
		log.Error(ctx, "error finding tenant by id", zap.Error(err))
		return nil, fmt.Errorf("error querying tenant by id: %w", err)
	}

	return &tenant, nil
}

// FindBySlug находит арендатора по slug (сравнение в нижнем регистре).
func (r *TenantRepository) FindBySlug(ctx context.Context, slug string) (*entities.Tenant, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tenant"), zap.String("method", "FindBySlug"))

	query := `
        SELECT id, slug, name, subscription_plan, created_at
        FROM tenants
        WHERE slug = lower($1)
    `

	var tenant entities.Tenant
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.Name,
		&tenant.SubscriptionPlan,
		&tenant.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tenant not found", zap.String("slug", slug))
			return nil, entities.ErrTenantNotFound
		}
		log.Error(ctx, "error finding tenant by slug", zap.Error(err))
		return nil, fmt.Errorf("error querying tenant by slug: %w", err)
	}

	return &tenant, nil
}

// Create создает нового арендатора.
func (r *TenantRepository) Create(ctx context.Context, tenant *entities.Tenant) (*entities.Tenant, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tenant"), zap.String("method", "Create"))

	query := `
        INSERT INTO tenants (slug, name, subscription_plan)
        VALUES (lower($1), $2, $3)
        RETURNING id, slug, name, subscription_plan, created_at
    `

	var createdTenant entities.Tenant
	err := r.pool.QueryRow(ctx, query,
		tenant.Slug,
		tenant.Name,
		tenant.SubscriptionPlan,
	).Scan(
		&createdTenant.ID,
		&createdTenant.Slug,
		&createdTenant.Name,
		&createdTenant.SubscriptionPlan,
		&createdTenant.CreatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating tenant", zap.Error(err))
		return nil, fmt.Errorf("error creating tenant: %w", err)
	}

	return &createdTenant, nil
}

// Count возвращает общее число арендаторов.
func (r *TenantRepository) Count(ctx context.Context) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tenant"), zap.String("method", "Count"))

	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tenants`).Scan(&count)
	if err != nil {
		log.Error(ctx, "error counting tenants", zap.Error(err))
		return 0, fmt.Errorf("error counting tenants: %w", err)
	}

	return count, nil
}

// UpdatePlanBySlug устанавливает тарифный план арендатора по slug.
// Операция идемпотентна: повторная установка того же плана не ошибка.
func (r *TenantRepository) UpdatePlanBySlug(ctx context.Context, slug string, plan entities.Plan) (*entities.Tenant, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tenant"), zap.String("method", "UpdatePlanBySlug"))

	query := `
        UPDATE tenants
        SET subscription_plan = $2
        WHERE slug = lower($1)
        RETURNING id, slug, name, subscription_plan, created_at
    `

	var updatedTenant entities.Tenant
	err := r.pool.QueryRow(ctx, query, slug, plan).Scan(
		&updatedTenant.ID,
		&updatedTenant.Slug,
		&updatedTenant.Name,
		&updatedTenant.SubscriptionPlan,
		&updatedTenant.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tenant not found for plan update", zap.String("slug", slug))
			return nil, entities.ErrTenantNotFound
		}
		log.Error(ctx, "error updating tenant plan", zap.Error(err))
		return nil, fmt.Errorf("error updating tenant plan: %w", err)
	}

	return &updatedTenant, nil
}
