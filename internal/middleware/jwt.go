package middleware

import (
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/reqctx"
	"bonsaigallery/internal/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// JWTAuth пускает дальше только с валидным bearer-токеном сессии.
// Причина отказа (нет токена, подпись, exp) наружу не различается — 401.
func JWTAuth(jwtSecret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует bearer-токен")
			http.Error(w, "No token provided", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, email, err := utils.ParseSessionToken(jwtSecret, tokenString)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := reqctx.WithUser(r.Context(), userID, email)

		logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("user_id", userID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
