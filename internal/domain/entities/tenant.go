package entities

import (
	"errors"
	"time"
)

// Plan определяет тарифный план арендатора.
type Plan string

// Поддерживаемые тарифные планы. Переход возможен только free -> pro.
const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// FreePlanNoteLimit - максимальное число заметок арендатора на плане free.
const FreePlanNoteLimit = 3

// ErrTenantNotFound возвращается, когда арендатор не найден ни по id, ни по slug.
var ErrTenantNotFound = errors.New("tenant not found")

// Tenant представляет изолированную организацию. Slug неизменяем и
// хранится в нижнем регистре.
type Tenant struct {
	ID               string
	Slug             string
	Name             string
	SubscriptionPlan Plan
	CreatedAt        time.Time
}
