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
	svc "notehive/internal/ports/services"
	"notehive/pkg/logger"
)

const (
	methodLogin = "Login"

	msgLoginAttempt     = "login attempt"
	msgLoginNonExistent = "login attempt with non-existent email"
	msgInvalidPassword  = "invalid password provided"
	msgTenantMissing    = "tenant of authenticated user is missing"
	msgUserLoggedIn     = "user logged in successfully"

	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrIssuingToken      = "failed to issue session token"

	errCtxValidatingLogin    = "validating login request"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxResolvingUserHome  = "resolving user tenant"
	errCtxIssuingToken       = "issuing token"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	tenantRepo  repositories.TenantRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сценария аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	tenantRepo repositories.TenantRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		tenantRepo:  tenantRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login проверяет учетные данные и выпускает токен сессии.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingLogin, entities.ErrMissingCredentials)
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	tenant, err := a.tenantRepo.FindByID(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, entities.ErrTenantNotFound) {
			log.Warn(ctx, msgTenantMissing, zap.String("tenantID", user.TenantID))
			return nil, fmt.Errorf("%s: %w", errCtxResolvingUserHome, entities.ErrTenantNotFound)
		}
		return nil, fmt.Errorf("%s: %w", errCtxResolvingUserHome, err)
	}

	token, err := a.tokenSvc.Issue(ctx, user, tenant)
	if err != nil {
		log.Error(ctx, msgErrIssuingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID), zap.String("tenantID", tenant.ID))
	return &api.LoginResult{User: user, Tenant: tenant, Token: token}, nil
}
