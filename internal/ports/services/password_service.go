// Package services определяет интерфейсы прикладных сервисов.
package services

import "context"

// PasswordService определяет интерфейс для хэширования и проверки паролей.
// Verify возвращает false без ошибки при несовпадении пароля и хэша.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) (bool, error)
}
