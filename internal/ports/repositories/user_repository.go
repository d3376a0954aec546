// Package repositories определяет интерфейсы репозиториев.
package repositories

import (
	"context"

	"notehive/internal/domain/entities"
)

// UserRepository определяет интерфейс для работы с хранилищем пользователей.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
}
