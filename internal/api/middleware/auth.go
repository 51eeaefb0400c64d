package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID"

// Auth проверяет наличие заголовка X-User-ID
// Проверка подлинности выполняется выше по цепочке, на API-шлюзе
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(userIDHeader) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)

	})
}
