package services

import (
	"context"

	"notehive/internal/domain/entities"
)

// TokenService определяет интерфейс для выпуска и проверки токенов сессии.
// Validate не имеет побочных эффектов: любая некорректность токена
// (подпись, срок, формат claims) выражается ошибкой entities.ErrInvalidToken
// или entities.ErrExpiredToken.
type TokenService interface {
	Issue(ctx context.Context, user *entities.User, tenant *entities.Tenant) (string, error)
	Validate(ctx context.Context, token string) (*entities.Claims, error)
}
