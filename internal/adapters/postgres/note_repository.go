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

// NoteRepository реализует интерфейс repositories.NoteRepository.
// Каждый запрос включает tenant_id и user_id: заметка чужого
// пользователя или арендатора неотличима от несуществующей.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID), zap.String("tenantID", note.TenantID))

	query := `
        INSERT INTO notes (title, content, user_id, tenant_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, content, user_id, tenant_id, created_at, updated_at
    `

	var createdNote entities.Note
	err := r.pool.QueryRow(ctx, query,
		note.Title,
		note.Content,
		note.UserID,
		note.TenantID,
	).Scan(
		&createdNote.ID,
		&createdNote.Title,
		&createdNote.Content,
		&createdNote.UserID,
		&createdNote.TenantID,
		&createdNote.CreatedAt,
		&createdNote.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", createdNote.ID))
	return &createdNote, nil
}

// FindByID получает заметку по ID в рамках пары (tenant, user).
func (r *NoteRepository) FindByID(ctx context.Context, noteID, tenantID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID))

	query := `
        SELECT id, title, content, user_id, tenant_id, created_at, updated_at
        FROM notes
        WHERE id = $1 AND tenant_id = $2 AND user_id = $3
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, noteID, tenantID, userID).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.UserID,
		&note.TenantID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByOwner получает заметки пары (tenant, user), новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, tenantID, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByOwner"))
	log.Debug(ctx, "listing notes", zap.String("tenantID", tenantID), zap.String("userID", userID))

	query := `
        SELECT id, title, content, user_id, tenant_id, created_at, updated_at
        FROM notes
        WHERE tenant_id = $1 AND user_id = $2
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, tenantID, userID)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.UserID,
			&note.TenantID,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет заметку в рамках пары (tenant, user) и обновляет updated_at.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	query := `
        UPDATE notes
        SET title = $4, content = $5, updated_at = now()
        WHERE id = $1 AND tenant_id = $2 AND user_id = $3
        RETURNING id, title, content, user_id, tenant_id, created_at, updated_at
    `

	var updatedNote entities.Note
	err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.TenantID,
		note.UserID,
		note.Title,
		note.Content,
	).Scan(
		&updatedNote.ID,
		&updatedNote.Title,
		&updatedNote.Content,
		&updatedNote.UserID,
		&updatedNote.TenantID,
		&updatedNote.CreatedAt,
		&updatedNote.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned", zap.String("noteID", note.ID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updatedNote, nil
}

// Delete удаляет заметку в рамках пары (tenant, user).
func (r *NoteRepository) Delete(ctx context.Context, noteID, tenantID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND tenant_id = $2 AND user_id = $3`,
		noteID, tenantID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

// CountByTenant считает заметки всего арендатора (по всем пользователям).
func (r *NoteRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "CountByTenant"))

	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE tenant_id = $1`,
		tenantID,
	).Scan(&count)

	if err != nil {
		log.Error(ctx, "failed to count notes", zap.Error(err))
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return count, nil
}
