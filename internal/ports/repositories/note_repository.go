package repositories

import (
	"context"

	"notehive/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Все операции чтения и мутации ограничены парой (tenantID, userID);
// CountByTenant считает заметки всего арендатора для проверки квоты.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	FindByID(ctx context.Context, noteID, tenantID, userID string) (*entities.Note, error)
	ListByOwner(ctx context.Context, tenantID, userID string) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, noteID, tenantID, userID string) error
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
