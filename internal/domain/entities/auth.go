package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Ошибки авторизации.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TenantRefKind определяет вид ссылки на арендатора в claims токена.
type TenantRefKind string

// Виды ссылок. Новые токены всегда выпускаются с TenantRefByID;
// ранее выпущенные токены могут содержать slug.
const (
	TenantRefByID   TenantRefKind = "id"
	TenantRefBySlug TenantRefKind = "slug"
)

// TenantRef - ссылка на арендатора из claims токена: канонический id
// либо человекочитаемый slug.
type TenantRef struct {
	Kind  TenantRefKind
	Value string
}

// NewTenantRefByID создает ссылку по каноническому идентификатору.
func NewTenantRefByID(id string) TenantRef {
	return TenantRef{Kind: TenantRefByID, Value: id}
}

// ParseTenantRef классифицирует непрозрачную ссылку из ранее выпущенного
// токена: корректный UUID считается каноническим id, все остальное - slug.
func ParseTenantRef(value string) TenantRef {
	if _, err := uuid.Parse(value); err == nil {
		return TenantRef{Kind: TenantRefByID, Value: value}
	}
	return TenantRef{Kind: TenantRefBySlug, Value: strings.ToLower(value)}
}

// IsZero сообщает, пуста ли ссылка.
func (r TenantRef) IsZero() bool {
	return r.Value == ""
}

// Claims - декодированная полезная нагрузка токена сессии.
type Claims struct {
	UserID           string
	Email            string
	Role             Role
	Tenant           TenantRef
	TenantSlug       string
	TenantName       string
	SubscriptionPlan Plan
}

// AuthContext - доверенный контекст, полученный из валидного токена
// и свежего состояния арендатора. Передается каждой защищенной операции.
// SubscriptionPlan читается из хранилища при каждом запросе, а не из
// claims: план мог измениться после выпуска токена.
type AuthContext struct {
	UserID           string
	TenantID         string
	TenantSlug       string
	Role             Role
	SubscriptionPlan Plan
}
