// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Role определяет роль пользователя внутри арендатора.
type Role string

// Поддерживаемые роли.
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("email and password are required")
)

// User представляет основную сущность домена пользователя.
// Email хранится в нижнем регистре и глобально уникален.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	TenantID     string
	CreatedAt    time.Time
}

// IsAdmin сообщает, имеет ли пользователь права администратора.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
