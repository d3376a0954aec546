package config

import "fmt"

// PostgresConfig представляет конфигурацию подключения к Postgres.
type PostgresConfig struct {
	Host           string `yaml:"host" env:"NOTEHIVE_POSTGRES_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"NOTEHIVE_POSTGRES_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"NOTEHIVE_POSTGRES_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"NOTEHIVE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database       string `yaml:"database" env:"NOTEHIVE_POSTGRES_DB" env-default:"notehive"`
	SSLMode        string `yaml:"ssl_mode" env:"NOTEHIVE_POSTGRES_SSL_MODE" env-default:"disable"`
	MinConns       int    `yaml:"min_conns" env:"NOTEHIVE_POSTGRES_MIN_CONNS" env-default:"1"`
	MaxConns       int    `yaml:"max_conns" env:"NOTEHIVE_POSTGRES_MAX_CONNS" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"NOTEHIVE_POSTGRES_MIGRATIONS_PATH" env-default:"file://migrations"`
}

// GetDSN возвращает строку подключения к базе данных.
func (c *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}
