package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"
	msgForeignAdmin  = "доступ к доступности другого администратора запрещен"
)

// Auth требует валидный заголовок X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminSelf пропускает запрос только когда аутентифицированный пользователь
// совпадает с {adminId} из пути: администратор управляет лишь собственной
// сеткой доступности. Ставится после Auth
func AdminSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		adminID, err := strconv.ParseInt(mux.Vars(r)["adminId"], 10, 64)
		if err == nil && adminID != userID {
			handlers.RespondForbidden(w, msgForeignAdmin)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
