package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret       string
	SessionTokenTTL string
	ResetTokenTTL   string

	Log      string
	LogLevel string
	Env      string // dev|prod

	SiteURL      string
	ResendAPIKey string
	EmailFrom    string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		SessionTokenTTL: def(os.Getenv("SESSION_TOKEN_TTL"), "168h"),
		ResetTokenTTL:   def(os.Getenv("PASSWORD_RESET_TTL"), "1h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SiteURL:      def(os.Getenv("SITE_URL"), "http://localhost:3000"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    def(os.Getenv("EMAIL_FROM"), "noreply@charlestonbonsai.com"),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	// Без ключа Resend письма сброса пароля уходят в лог (dev-режим)
	if c.ResendAPIKey == "" {
		warnings = append(warnings, "RESEND_API_KEY is not set, reset emails will be logged only")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// SessionTTL парсит TTL токена сессии (дефолт 7 суток).
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.SessionTokenTTL)
	if err != nil || d <= 0 {
		return 168 * time.Hour
	}
	return d
}

// ResetTTL парсит TTL токена сброса пароля (дефолт 1 час).
func (c *Config) ResetTTL() time.Duration {
	d, err := time.ParseDuration(c.ResetTokenTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
