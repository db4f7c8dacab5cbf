package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateResetToken возвращает криптостойкий одноразовый секрет для сброса
// пароля: 32 случайных байта в hex (64 символа). Секрет уходит пользователю
// в письме, в базе хранится только хеш.
func GenerateResetToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// HashResetToken — sha256-хеш секрета для хранения и поиска в базе.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
