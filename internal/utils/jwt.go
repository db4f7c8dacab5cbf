package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("неверный или просроченный токен")

// GenerateSessionToken создаёт JWT сессии администратора (HS256).
// Срок жизни фиксируется на момент выдачи; отзыва нет — токен живёт весь TTL.
func GenerateSessionToken(secret, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken проверяет подпись и срок действия.
// Любая причина отказа (подпись, формат, exp) схлопывается в ErrInvalidToken —
// наружу различие не выдаём.
func ParseSessionToken(secret, tokenString string) (userID, email string, err error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	userID, ok1 := claims["id"].(string)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 || userID == "" {
		return "", "", ErrInvalidToken
	}

	return userID, email, nil
}
