package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"notehive/internal/domain/entities"
	"notehive/internal/ports/api"
	"notehive/internal/ports/cache"
	"notehive/internal/ports/repositories"
	"notehive/pkg/logger"
)

const (
	methodListNotes  = "List"
	methodGetNote    = "Get"
	methodCreateNote = "Create"
	methodUpdateNote = "Update"
	methodDeleteNote = "Delete"

	msgListingNotes     = "listing notes"
	msgNotesFromCache   = "notes served from cache"
	msgGettingNote      = "getting note"
	msgCreatingNote     = "creating note"
	msgQuotaReached     = "free plan note quota reached"
	msgNoteCreated      = "note created"
	msgUpdatingNote     = "updating note"
	msgDeletingNote     = "deleting note"
	msgErrReadCache     = "failed to read notes cache"
	msgErrWriteCache    = "failed to write notes cache"
	msgErrDropCache     = "failed to invalidate notes cache"
	msgErrCountingNotes = "failed to count tenant notes"

	errCtxValidatingNote = "validating note"
	errCtxCheckingQuota  = "checking note quota"
	errCtxCreatingNote   = "creating note"
	errCtxListingNotes   = "listing notes"
	errCtxGettingNote    = "getting note"
	errCtxUpdatingNote   = "updating note"
	errCtxDeletingNote   = "deleting note"
)

// notesCacheKeyPrefix - префикс ключа кэша списка заметок.
const notesCacheKeyPrefix = "notes:"

// NotesUseCaseImpl реализует интерфейс api.NotesUseCase.
// Список заметок кэшируется по ключу пары (tenant, user); любая мутация
// пары инвалидирует ключ, поэтому чтение после записи остается согласованным.
// Проверка квоты всегда идет в хранилище, минуя кэш.
type NotesUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewNotesUseCase создает новый экземпляр сценария работы с заметками.
func NewNotesUseCase(noteRepo repositories.NoteRepository, noteCache cache.Cache) api.NotesUseCase {
	return &NotesUseCaseImpl{
		noteRepo: noteRepo,
		cache:    noteCache,
	}
}

// notesCacheKey возвращает ключ кэша списка заметок пары (tenant, user).
func notesCacheKey(tenantID, userID string) string {
	return notesCacheKeyPrefix + tenantID + ":" + userID
}

// validateNoteInput проверяет заголовок и содержимое заметки.
// Заголовок нормализуется обрезкой пробелов.
func validateNoteInput(title, content string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", entities.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > entities.MaxTitleLength {
		return "", entities.ErrTitleTooLong
	}
	if strings.TrimSpace(content) == "" {
		return "", entities.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > entities.MaxContentLength {
		return "", entities.ErrContentTooLong
	}
	return title, nil
}

// List возвращает заметки пары (tenant, user), новые первыми.
func (n *NotesUseCaseImpl) List(ctx context.Context, actx *entities.AuthContext) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodListNotes),
		zap.String("tenantID", actx.TenantID),
		zap.String("userID", actx.UserID),
	)
	log.Debug(ctx, msgListingNotes)

	key := notesCacheKey(actx.TenantID, actx.UserID)

	// Сбой кэша не должен ломать запрос: идем в хранилище.
	cached, err := n.cache.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, msgErrReadCache, zap.Error(err))
	} else if cached != "" {
		var notes []*entities.Note
		if err := json.Unmarshal([]byte(cached), &notes); err == nil {
			log.Debug(ctx, msgNotesFromCache, zap.Int("count", len(notes)))
			return notes, nil
		}
	}

	notes, err := n.noteRepo.ListByOwner(ctx, actx.TenantID, actx.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	if encoded, err := json.Marshal(notes); err == nil {
		if err := n.cache.Set(ctx, key, string(encoded), 0); err != nil {
			log.Warn(ctx, msgErrWriteCache, zap.Error(err))
		}
	}

	return notes, nil
}

// Get возвращает заметку пары (tenant, user). Чужая заметка
// неотличима от несуществующей.
func (n *NotesUseCaseImpl) Get(ctx context.Context, actx *entities.AuthContext, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgGettingNote)

	note, err := n.noteRepo.FindByID(ctx, noteID, actx.TenantID, actx.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}
	return note, nil
}

// Create создает заметку после проверки квоты плана free.
// План берется из контекста авторизации, который middleware строит из
// свежего состояния арендатора на каждый запрос, а не из claims токена.
// Проверка квоты и вставка не атомарны: две конкурентные вставки могут
// обе пройти проверку. Для масштаба системы это принятый компромисс.
func (n *NotesUseCaseImpl) Create(ctx context.Context, actx *entities.AuthContext, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodCreateNote),
		zap.String("tenantID", actx.TenantID),
		zap.String("userID", actx.UserID),
	)
	log.Debug(ctx, msgCreatingNote)

	title, err := validateNoteInput(title, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	if actx.SubscriptionPlan == entities.PlanFree {
		count, err := n.noteRepo.CountByTenant(ctx, actx.TenantID)
		if err != nil {
			log.Error(ctx, msgErrCountingNotes, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxCheckingQuota, err)
		}
		if count >= entities.FreePlanNoteLimit {
			log.Debug(ctx, msgQuotaReached, zap.Int("count", count))
			return nil, fmt.Errorf("%s: %w", errCtxCheckingQuota, entities.ErrQuotaExceeded)
		}
	}

	note, err := n.noteRepo.Create(ctx, &entities.Note{
		Title:    title,
		Content:  content,
		UserID:   actx.UserID,
		TenantID: actx.TenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	n.invalidateCache(ctx, actx)

	log.Info(ctx, msgNoteCreated, zap.String("noteID", note.ID))
	return note, nil
}

// Update обновляет заметку пары (tenant, user) с той же валидацией, что и Create.
func (n *NotesUseCaseImpl) Update(ctx context.Context, actx *entities.AuthContext, noteID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgUpdatingNote)

	title, err := validateNoteInput(title, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	note, err := n.noteRepo.Update(ctx, &entities.Note{
		ID:       noteID,
		Title:    title,
		Content:  content,
		UserID:   actx.UserID,
		TenantID: actx.TenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	n.invalidateCache(ctx, actx)

	return note, nil
}

// Delete удаляет заметку пары (tenant, user).
func (n *NotesUseCaseImpl) Delete(ctx context.Context, actx *entities.AuthContext, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgDeletingNote)

	if err := n.noteRepo.Delete(ctx, noteID, actx.TenantID, actx.UserID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	n.invalidateCache(ctx, actx)

	return nil
}

// invalidateCache сбрасывает кэш списка заметок пары (tenant, user).
func (n *NotesUseCaseImpl) invalidateCache(ctx context.Context, actx *entities.AuthContext) {
	if err := n.cache.Delete(ctx, notesCacheKey(actx.TenantID, actx.UserID)); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrDropCache, zap.Error(err))
	}
}
