// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

// Заголовки CORS. Политика намеренно разрешающая: API обслуживает
// браузерные клиенты с произвольных источников.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

// NewCORSMiddleware создает промежуточное ПО для CORS: выставляет
// заголовки на каждый ответ и отвечает 200 на preflight-запросы.
func NewCORSMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		ctx.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		ctx.Set("Access-Control-Allow-Methods", corsAllowMethods)
		ctx.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if ctx.Method() == fiber.MethodOptions {
			if err := ctx.SendStatus(fiber.StatusOK); err != nil {
				return fmt.Errorf("error sending preflight response: %w", err)
			}
			return nil
		}

		if err := ctx.Next(); err != nil {
			return fmt.Errorf("request processing error: %w", err)
		}
		return nil
	}
}
