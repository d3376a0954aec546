// Package api определяет интерфейсы сценариев использования,
// потребляемые HTTP-адаптером.
package api

import (
	"context"

	"notehive/internal/domain/entities"
)

// LoginResult - результат успешного входа: пользователь, его арендатор
// и выпущенный токен сессии.
type LoginResult struct {
	User   *entities.User
	Tenant *entities.Tenant
	Token  string
}

// AuthUseCase определяет сценарии аутентификации.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// TenantResolver разрешает ссылку на арендатора (id или slug)
// в каноническую запись.
type TenantResolver interface {
	Resolve(ctx context.Context, ref entities.TenantRef) (*entities.Tenant, error)
}

// NotesUseCase определяет сценарии работы с заметками.
// Каждая операция ограничена контекстом авторизации.
type NotesUseCase interface {
	List(ctx context.Context, actx *entities.AuthContext) ([]*entities.Note, error)
	Get(ctx context.Context, actx *entities.AuthContext, noteID string) (*entities.Note, error)
	Create(ctx context.Context, actx *entities.AuthContext, title, content string) (*entities.Note, error)
	Update(ctx context.Context, actx *entities.AuthContext, noteID, title, content string) (*entities.Note, error)
	Delete(ctx context.Context, actx *entities.AuthContext, noteID string) error
}

// TenantUseCase определяет сценарии управления арендатором.
type TenantUseCase interface {
	UpgradeToPro(ctx context.Context, actx *entities.AuthContext, targetSlug string) (*entities.Tenant, error)
}
