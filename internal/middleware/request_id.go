package middleware

import (
	"bonsaigallery/internal/reqctx"
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID кладёт идентификатор запроса в контекст и ответ.
// Пришедший от клиента заголовок переиспользуем, чтобы связывать логи.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}

		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
