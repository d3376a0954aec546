package services

import (
	"time"

	svc "notehive/internal/ports/services"
)

// ServiceFactory создает прикладные сервисы с общей конфигурацией.
type ServiceFactory struct {
	jwtSecretKey string
	tokenTTL     time.Duration
	bcryptCost   int
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(jwtSecretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		jwtSecretKey: jwtSecretKey,
		tokenTTL:     tokenTTL,
		bcryptCost:   bcryptCost,
	}
}

// TokenService возвращает сервис токенов сессии.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return NewJWT(f.jwtSecretKey, f.tokenTTL)
}

// PasswordService возвращает сервис паролей.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return NewBcrypt(f.bcryptCost)
}
