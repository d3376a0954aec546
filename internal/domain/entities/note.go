package entities

import (
	"errors"
	"time"
)

// Ограничения на поля заметки.
const (
	MaxTitleLength   = 200
	MaxContentLength = 10000
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrQuotaExceeded  = errors.New("free plan note limit reached")
	ErrEmptyTitle     = errors.New("title is required")
	ErrTitleTooLong   = errors.New("title must be at most 200 characters")
	ErrEmptyContent   = errors.New("content is required")
	ErrContentTooLong = errors.New("content must be at most 10000 characters")
)

// Note представляет заметку, принадлежащую паре (tenant, user).
// Заметка никогда не видна за пределами этой пары.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
