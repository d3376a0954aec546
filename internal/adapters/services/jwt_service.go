// Package services содержит реализации прикладных сервисов.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"notehive/internal/domain/entities"
	svc "notehive/internal/ports/services"
	"notehive/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue    = "Issue"
	methodValidate = "Validate"

	msgIssuingToken    = "issuing session token"
	msgTokenIssued     = "token issued successfully"
	msgValidatingToken = "validating token"
	msgTokenValidated  = "token validated successfully"
	msgTokenExpired    = "token has expired"
	msgInvalidToken    = "invalid token format"

	//nolint:gosec
	errSigningToken    = "error signing token"
	errCtxIssuingToken = "issuing token"
	errCtxParsingToken = "parsing token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// userClaims - полезная нагрузка о пользователе внутри токена.
// Поле tenant_id содержит ссылку на арендатора: новые токены несут
// канонический id, ранее выпущенные могли нести slug.
type userClaims struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	TenantID         string `json:"tenant_id"`
	TenantSlug       string `json:"tenant_slug"`
	TenantName       string `json:"tenant_name"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	User userClaims `json:"user"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Issue выпускает подписанный токен сессии с данными пользователя и арендатора.
func (s *ServiceJWT) Issue(ctx context.Context, user *entities.User, tenant *entities.Tenant) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("userID", user.ID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.secretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, entities.ErrInvalidToken)
	}

	now := time.Now()
	claims := Claims{
		User: userClaims{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
			// Новые токены всегда ссылаются на арендатора по каноническому id.
			TenantID:         tenant.ID,
			TenantSlug:       tenant.Slug,
			TenantName:       tenant.Name,
			SubscriptionPlan: string(tenant.SubscriptionPlan),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", now.Add(s.tokenTTL)))
	return tokenString, nil
}

// Validate проверяет подпись и срок действия токена и возвращает claims.
// Любая некорректность токена выражается доменной ошибкой; функция
// не имеет побочных эффектов и безопасна для повторных вызовов.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString string) (*entities.Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidate))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxParsingToken, entities.ErrExpiredToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, entities.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, entities.ErrInvalidToken)
	}

	if claims.User.ID == "" || claims.User.TenantID == "" {
		log.Debug(ctx, "user id or tenant reference is empty")
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, entities.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.User.ID))
	return &entities.Claims{
		UserID:           claims.User.ID,
		Email:            claims.User.Email,
		Role:             entities.Role(claims.User.Role),
		Tenant:           entities.ParseTenantRef(claims.User.TenantID),
		TenantSlug:       claims.User.TenantSlug,
		TenantName:       claims.User.TenantName,
		SubscriptionPlan: entities.Plan(claims.User.SubscriptionPlan),
	}, nil
}
