package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripseat/config"
	"tripseat/infras/jwt"
	"tripseat/infras/otel/mocks"
	"tripseat/permissions"
	"tripseat/shared/constant"
	"tripseat/transport/http/middleware"
)

const secret = "middleware-secret"

func token(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.Claims{
		UserID: "admin-1",
		Email:  "ops@example.com",
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func newRouter(data *permissions.PermissionData) chi.Router {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret

	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), data)

	ok := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.Header().Set("X-User", user)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1/admin", func(admin chi.Router) {
		admin.Use(auth.Auth, auth.RBAC)
		admin.Route("/bookings", func(bookings chi.Router) {
			bookings.Get("/", ok)
			bookings.Get("/{id}", ok)
			bookings.Delete("/{id}", ok)
			bookings.Post("/{id}/cancel", ok)
		})
	})

	return router
}

func permissionData() *permissions.PermissionData {
	return &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/admin/bookings", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
			{Path: "/v1/admin/bookings/{id}", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
			{Path: "/v1/admin/bookings/{id}", Method: http.MethodDelete, Permissions: []string{constant.RoleSuperAdmin}},
		},
	}
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		authorization string
		wantStatus    int
	}{
		{
			name:       "missing header",
			method:     http.MethodGet,
			path:       "/v1/admin/bookings",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "wrong scheme",
			method:        http.MethodGet,
			path:          "/v1/admin/bookings",
			authorization: "Basic " + token(t, constant.RoleAdmin, time.Hour),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "expired token",
			method:        http.MethodGet,
			path:          "/v1/admin/bookings",
			authorization: "Bearer " + token(t, constant.RoleAdmin, -time.Hour),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "admin lists bookings",
			method:        http.MethodGet,
			path:          "/v1/admin/bookings",
			authorization: "Bearer " + token(t, constant.RoleAdmin, time.Hour),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "admin reads a booking",
			method:        http.MethodGet,
			path:          "/v1/admin/bookings/0c5d7a8e-2f14-4b3a-9e61-7d2c8b4f5a90",
			authorization: "Bearer " + token(t, constant.RoleAdmin, time.Hour),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "admin cannot delete",
			method:        http.MethodDelete,
			path:          "/v1/admin/bookings/0c5d7a8e-2f14-4b3a-9e61-7d2c8b4f5a90",
			authorization: "Bearer " + token(t, constant.RoleAdmin, time.Hour),
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "superadmin deletes",
			method:        http.MethodDelete,
			path:          "/v1/admin/bookings/0c5d7a8e-2f14-4b3a-9e61-7d2c8b4f5a90",
			authorization: "Bearer " + token(t, constant.RoleSuperAdmin, time.Hour),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "route without permission entry",
			method:        http.MethodPost,
			path:          "/v1/admin/bookings/0c5d7a8e-2f14-4b3a-9e61-7d2c8b4f5a90/cancel",
			authorization: "Bearer " + token(t, constant.RoleSuperAdmin, time.Hour),
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "role outside the list",
			method:        http.MethodGet,
			path:          "/v1/admin/bookings",
			authorization: "Bearer " + token(t, "guest", time.Hour),
			wantStatus:    http.StatusForbidden,
		},
	}

	router := newRouter(permissionData())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.authorization)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "admin-1", rec.Header().Get("X-User"))
			}
		})
	}
}

func TestAuthRole_SkipAll(t *testing.T) {
	router := newRouter(&permissions.PermissionData{Skip: true})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/bookings/0c5d7a8e-2f14-4b3a-9e61-7d2c8b4f5a90/cancel", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token(t, "guest", time.Hour))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRole_NoPermissionsLoaded(t *testing.T) {
	router := newRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token(t, constant.RoleAdmin, time.Hour))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
