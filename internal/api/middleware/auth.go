package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

// Auth проверяет наличие заголовка X-User-ID на защищённых маршрутах
// Сервис доверяет шлюзу, который аутентифицирует пользователя
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}
