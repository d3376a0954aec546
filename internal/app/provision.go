package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notehive/internal/domain/entities"
	"notehive/internal/ports/repositories"
	svc "notehive/internal/ports/services"
	"notehive/pkg/logger"
)

const (
	msgProvisioning        = "provisioning demo tenants and users"
	msgProvisioningSkipped = "provisioning skipped: tenants already exist"
	msgProvisioningDone    = "provisioning complete"

	errCtxCountingTenants = "counting tenants"
	errCtxHashingPassword = "hashing seed password"
	errCtxCreatingTenant  = "creating seed tenant"
	errCtxCreatingUser    = "creating seed user"
)

// seedPassword - пароль всех демонстрационных пользователей.
const seedPassword = "password"

// seedTenants описывает демонстрационных арендаторов.
var seedTenants = []entities.Tenant{
	{Slug: "acme", Name: "Acme Corporation", SubscriptionPlan: entities.PlanFree},
	{Slug: "globex", Name: "Globex Corporation", SubscriptionPlan: entities.PlanFree},
}

// seedUsers описывает демонстрационных пользователей по slug арендатора.
var seedUsers = []struct {
	Email      string
	Role       entities.Role
	TenantSlug string
}{
	{Email: "admin@acme.test", Role: entities.RoleAdmin, TenantSlug: "acme"},
	{Email: "user@acme.test", Role: entities.RoleMember, TenantSlug: "acme"},
	{Email: "admin@globex.test", Role: entities.RoleAdmin, TenantSlug: "globex"},
	{Email: "user@globex.test", Role: entities.RoleMember, TenantSlug: "globex"},
}

// Provisioner выполняет идемпотентное первичное наполнение хранилища.
// Запускается один раз при старте процесса; если арендаторы уже
// существуют, ничего не делает.
type Provisioner struct {
	tenantRepo  repositories.TenantRepository
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewProvisioner создает новый экземпляр Provisioner.
func NewProvisioner(
	tenantRepo repositories.TenantRepository,
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
) *Provisioner {
	return &Provisioner{
		tenantRepo:  tenantRepo,
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Run наполняет хранилище демонстрационными данными, если оно пусто.
func (p *Provisioner) Run(ctx context.Context) error {
	log := logger.Log(ctx)

	count, err := p.tenantRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCountingTenants, err)
	}
	if count > 0 {
		log.Info(ctx, msgProvisioningSkipped, zap.Int("tenants", count))
		return nil
	}

	log.Info(ctx, msgProvisioning)

	hash, err := p.passwordSvc.Hash(ctx, seedPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	tenantIDs := make(map[string]string, len(seedTenants))
	for _, tenant := range seedTenants {
		created, err := p.tenantRepo.Create(ctx, &tenant)
		if err != nil {
			return fmt.Errorf("%s %q: %w", errCtxCreatingTenant, tenant.Slug, err)
		}
		tenantIDs[created.Slug] = created.ID
	}

	for _, user := range seedUsers {
		_, err := p.userRepo.Create(ctx, &entities.User{
			Email:        user.Email,
			PasswordHash: hash,
			Role:         user.Role,
			TenantID:     tenantIDs[user.TenantSlug],
		})
		if err != nil {
			return fmt.Errorf("%s %q: %w", errCtxCreatingUser, user.Email, err)
		}
	}

	log.Info(ctx, msgProvisioningDone,
		zap.Int("tenants", len(seedTenants)),
		zap.Int("users", len(seedUsers)))
	return nil
}
