// Package dto содержит объекты передачи данных HTTP API.
package dto

import "notehive/internal/domain/entities"

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NoteRequest содержит данные для создания или обновления заметки.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UserPayload - представление пользователя в ответах и claims токена.
type UserPayload struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	TenantID         string `json:"tenant_id"`
	TenantSlug       string `json:"tenant_slug"`
	TenantName       string `json:"tenant_name"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// LoginResponse содержит результат успешного входа.
type LoginResponse struct {
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}

// TenantPayload - представление арендатора в ответах.
type TenantPayload struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// UpgradeResponse содержит результат перевода арендатора на план pro.
type UpgradeResponse struct {
	Message string        `json:"message"`
	Tenant  TenantPayload `json:"tenant"`
}

// NewUserPayload собирает UserPayload из пользователя и его арендатора.
func NewUserPayload(user *entities.User, tenant *entities.Tenant) UserPayload {
	return UserPayload{
		ID:               user.ID,
		Email:            user.Email,
		Role:             string(user.Role),
		TenantID:         tenant.ID,
		TenantSlug:       tenant.Slug,
		TenantName:       tenant.Name,
		SubscriptionPlan: string(tenant.SubscriptionPlan),
	}
}

// NewTenantPayload собирает TenantPayload из арендатора.
func NewTenantPayload(tenant *entities.Tenant) TenantPayload {
	return TenantPayload{
		Slug:             tenant.Slug,
		Name:             tenant.Name,
		SubscriptionPlan: string(tenant.SubscriptionPlan),
	}
}
