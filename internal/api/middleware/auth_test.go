package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protectedRouter собирает роутер как в main: защищенный subrouter под
// Auth + AdminSelf с одним маршрутом администратора
func protectedRouter(sawUserID *int64) *mux.Router {
	r := mux.NewRouter()
	sub := r.PathPrefix("/api/v1").Subrouter()
	sub.Use(Auth, AdminSelf)
	sub.HandleFunc("/admins/{adminId}/availability",
		func(w http.ResponseWriter, r *http.Request) {
			if id, ok := GetUserID(r.Context()); ok && sawUserID != nil {
				*sawUserID = id
			}
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodGet)
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admins/7/availability", nil)
	rec := httptest.NewRecorder()

	protectedRouter(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidHeader(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admins/7/availability", nil)
		req.Header.Set("X-User-ID", raw)
		rec := httptest.NewRecorder()

		protectedRouter(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", raw)
	}
}

func TestAuth_UserIDReachesHandler(t *testing.T) {
	var sawUserID int64
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admins/42/availability", nil)
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	protectedRouter(&sawUserID).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), sawUserID)
}

func TestAdminSelf_ForeignAdminForbidden(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admins/7/availability", nil)
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	protectedRouter(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminSelf_OwnGridAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admins/42/availability", nil)
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	protectedRouter(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
