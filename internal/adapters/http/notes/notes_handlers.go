// Package notes содержит HTTP обработчики для работы с заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehive/internal/adapters/http/dto"
	"notehive/internal/adapters/http/httperr"
	"notehive/internal/adapters/http/middleware"
	"notehive/internal/domain/entities"
	"notehive/internal/ports/api"
	"notehive/pkg/logger"
)

// Константы для логирования.
const (
	LogListNotes  = "list notes request"
	LogGetNote    = "get note request"
	LogCreateNote = "create note request"
	LogUpdateNote = "update note request"
	LogDeleteNote = "delete note request"

	ErrorParsingBody   = "error parsing request body"
	ErrorNoAuthContext = "auth context missing in request"

	MsgNoteDeleted = "Note deleted successfully"
)

// Handler обрабатывает HTTP запросы к заметкам.
type Handler struct {
	notesUseCase api.NotesUseCase
}

// NewHandler создает новый обработчик заметок.
func NewHandler(notesUseCase api.NotesUseCase) *Handler {
	return &Handler{notesUseCase: notesUseCase}
}

// authContext извлекает контекст авторизации, установленный промежуточным ПО.
func authContext(ctx fiber.Ctx) (*entities.AuthContext, error) {
	actx, ok := middleware.AuthContextFromLocals(ctx)
	if !ok {
		requestCtx := ctx.Context()
		logger.Log(requestCtx).Error(requestCtx, ErrorNoAuthContext)
		return nil, entities.ErrUnauthorized
	}
	return actx, nil
}

// List возвращает заметки текущего пользователя.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogListNotes)

	actx, err := authContext(ctx)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	noteList, err := h.notesUseCase.List(requestCtx, actx)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(noteList); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get возвращает одну заметку по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogGetNote, zap.String("noteID", ctx.Params("id")))

	actx, err := authContext(ctx)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	note, err := h.notesUseCase.Get(requestCtx, actx, ctx.Params("id"))
	if err != nil {
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Create создает новую заметку.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogCreateNote)

	actx, err := authContext(ctx)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorParsingBody, zap.Error(err))
		return httperr.Send(ctx, entities.ErrEmptyTitle)
	}

	note, err := h.notesUseCase.Create(requestCtx, actx, req.Title, req.Content)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	log.Info(requestCtx, "note created", zap.String("noteID", note.ID))

	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update обновляет существующую заметку.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogUpdateNote, zap.String("noteID", ctx.Params("id")))

	actx, err := authContext(ctx)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorParsingBody, zap.Error(err))
		return httperr.Send(ctx, entities.ErrEmptyTitle)
	}

	note, err := h.notesUseCase.Update(requestCtx, actx, ctx.Params("id"), req.Title, req.Content)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete удаляет заметку.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogDeleteNote, zap.String("noteID", ctx.Params("id")))

	actx, err := authContext(ctx)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	if err := h.notesUseCase.Delete(requestCtx, actx, ctx.Params("id")); err != nil {
		return httperr.Send(ctx, err)
	}

	log.Info(requestCtx, "note deleted", zap.String("noteID", ctx.Params("id")))

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgNoteDeleted,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
