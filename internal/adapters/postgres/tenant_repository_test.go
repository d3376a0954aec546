package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehive/internal/adapters/postgres"
	"notehive/internal/domain/entities"
)

func TestTenantRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение арендатора по id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "slug", "name", "subscription_plan", "created_at"}).
			AddRow("tenant-1", "acme", "Acme", entities.PlanFree, now)

		mock.ExpectQuery("SELECT id, slug, name, subscription_plan, created_at").
			WithArgs("tenant-1").
			WillReturnRows(rows)

		repo := postgres.NewTenantRepository(mock)

		tenant, err := repo.FindByID(ctx, "tenant-1")

		require.NoError(t, err)
		assert.Equal(t, "acme", tenant.Slug)
		assert.Equal(t, entities.PlanFree, tenant.SubscriptionPlan)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Арендатор не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, slug, name, subscription_plan, created_at").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewTenantRepository(mock)

		tenant, err := repo.FindByID(ctx, "missing")

		require.ErrorIs(t, err, entities.ErrTenantNotFound)
		assert.Nil(t, tenant)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantRepository_FindBySlug(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Поиск по slug нечувствителен к регистру", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "slug", "name", "subscription_plan", "created_at"}).
			AddRow("tenant-1", "acme", "Acme", entities.PlanPro, now)

		mock.ExpectQuery("SELECT id, slug, name, subscription_plan, created_at").
			WithArgs("Acme").
			WillReturnRows(rows)

		repo := postgres.NewTenantRepository(mock)

		tenant, err := repo.FindBySlug(ctx, "Acme")

		require.NoError(t, err)
		assert.Equal(t, "acme", tenant.Slug)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantRepository_UpdatePlanBySlug(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Перевод на план pro", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "slug", "name", "subscription_plan", "created_at"}).
			AddRow("tenant-1", "acme", "Acme", entities.PlanPro, now)

		mock.ExpectQuery("UPDATE tenants").
			WithArgs("acme", entities.PlanPro).
			WillReturnRows(rows)

		repo := postgres.NewTenantRepository(mock)

		tenant, err := repo.UpdatePlanBySlug(ctx, "acme", entities.PlanPro)

		require.NoError(t, err)
		assert.Equal(t, entities.PlanPro, tenant.SubscriptionPlan)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Несуществующий slug дает NotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE tenants").
			WithArgs("missing", entities.PlanPro).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewTenantRepository(mock)

		tenant, err := repo.UpdatePlanBySlug(ctx, "missing", entities.PlanPro)

		require.ErrorIs(t, err, entities.ErrTenantNotFound)
		assert.Nil(t, tenant)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantRepository_Count(t *testing.T) {
	ctx := testContext(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(rows)

	repo := postgres.NewTenantRepository(mock)

	count, err := repo.Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
