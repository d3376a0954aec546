package config

import "time"

// JWTConfig представляет конфигурацию токенов сессии.
type JWTConfig struct {
	SecretKey  string        `yaml:"secret_key" env:"NOTEHIVE_JWT_SECRET_KEY" env-default:"dev-secret-change-me"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"NOTEHIVE_JWT_TOKEN_TTL" env-default:"168h"`
	BCryptCost int           `yaml:"bcrypt_cost" env:"NOTEHIVE_BCRYPT_COST" env-default:"12"`
}
