// Package auth содержит HTTP обработчики аутентификации.
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehive/internal/adapters/http/dto"
	"notehive/internal/adapters/http/httperr"
	"notehive/internal/ports/api"
	"notehive/pkg/logger"
)

// Константы для логирования.
const (
	LogLoginRequest  = "login request received"
	LogLoginSuccess  = "user logged in"
	ErrorParsingBody = "error parsing request body"
)

// Handler обрабатывает HTTP запросы аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый обработчик аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogLoginRequest)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorParsingBody, zap.Error(err))
		if sendErr := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": httperr.MsgMissingCredentials,
		}); sendErr != nil {
			return fmt.Errorf("error sending response: %w", sendErr)
		}
		return nil
	}

	result, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return httperr.Send(ctx, err)
	}

	log.Info(requestCtx, LogLoginSuccess,
		zap.String("userID", result.User.ID),
		zap.String("tenantSlug", result.Tenant.Slug),
	)

	if err := ctx.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		User:  dto.NewUserPayload(result.User, result.Tenant),
		Token: result.Token,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
