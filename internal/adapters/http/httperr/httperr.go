// Package httperr переводит доменные ошибки в HTTP-ответы.
// Каждая ошибка нижних слоев отображается ровно в один статус;
// неизвестные ошибки становятся 500 с обезличенным сообщением.
package httperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehive/internal/domain/entities"
	"notehive/pkg/logger"
)

// Сообщения, видимые вызывающему.
const (
	MsgMissingCredentials = "Email and password are required"
	MsgTitleContentNeeded = "Title and content are required"
	MsgTitleTooLong       = "Title must be at most 200 characters"
	MsgContentTooLong     = "Content must be at most 10000 characters"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUnauthorized       = "Unauthorized"
	MsgForbidden          = "Forbidden"
	MsgQuotaExceeded      = "Free plan limit reached. Upgrade to Pro for unlimited notes."
	MsgNoteNotFound       = "Note not found"
	MsgTenantNotFound     = "Tenant not found"
	MsgInternalError      = "Internal server error"
)

// statusAndMessage возвращает HTTP-статус и сообщение для доменной ошибки.
func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrMissingCredentials):
		return fiber.StatusBadRequest, MsgMissingCredentials
	case errors.Is(err, entities.ErrEmptyTitle), errors.Is(err, entities.ErrEmptyContent):
		return fiber.StatusBadRequest, MsgTitleContentNeeded
	case errors.Is(err, entities.ErrTitleTooLong):
		return fiber.StatusBadRequest, MsgTitleTooLong
	case errors.Is(err, entities.ErrContentTooLong):
		return fiber.StatusBadRequest, MsgContentTooLong
	case errors.Is(err, entities.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, MsgInvalidCredentials
	case errors.Is(err, entities.ErrUnauthorized),
		errors.Is(err, entities.ErrInvalidToken),
		errors.Is(err, entities.ErrExpiredToken):
		return fiber.StatusUnauthorized, MsgUnauthorized
	case errors.Is(err, entities.ErrQuotaExceeded):
		return fiber.StatusForbidden, MsgQuotaExceeded
	case errors.Is(err, entities.ErrForbidden):
		return fiber.StatusForbidden, MsgForbidden
	case errors.Is(err, entities.ErrNoteNotFound):
		return fiber.StatusNotFound, MsgNoteNotFound
	case errors.Is(err, entities.ErrTenantNotFound):
		return fiber.StatusNotFound, MsgTenantNotFound
	default:
		return fiber.StatusInternalServerError, MsgInternalError
	}
}

// Send отправляет JSON-ответ об ошибке. Детали внутренних ошибок
// логируются на сервере и никогда не попадают в тело ответа.
func Send(ctx fiber.Ctx, err error) error {
	status, message := statusAndMessage(err)

	if status == fiber.StatusInternalServerError {
		requestCtx := ctx.Context()
		logger.Log(requestCtx).Error(requestCtx, "unexpected error", zap.Error(err))
	}

	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
