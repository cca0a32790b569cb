package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk-test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.CookieName = "token"
	cfg.JWT.ExpireMin = 60

	return cfg
}

func newAuthMiddleware(cfg *config.Config) (middleware.AppMiddleware, jwt.JWT) {
	jwtService := jwt.New(cfg)

	return middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil, jwtService), jwtService
}

func TestAuth_ValidCookie(t *testing.T) {
	cfg := testConfig()
	appMiddleware, jwtService := newAuthMiddleware(cfg)

	token, err := jwtService.GenerateToken("user-123")
	require.NoError(t, err)

	var gotUserID string

	handler := appMiddleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(constant.ContextKeyUserID).(string)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.AddCookie(&http.Cookie{Name: cfg.JWT.CookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", gotUserID)
}

func TestAuth_MissingCookie(t *testing.T) {
	appMiddleware, _ := newAuthMiddleware(testConfig())

	handler := appMiddleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized - no token provided", body["message"])
}

func TestAuth_InvalidToken(t *testing.T) {
	cfg := testConfig()
	appMiddleware, _ := newAuthMiddleware(cfg)

	handler := appMiddleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.AddCookie(&http.Cookie{Name: cfg.JWT.CookieName, Value: "not-a-token"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized - invalid token", body["message"])
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.ExpireMin = -1
	appMiddleware, jwtService := newAuthMiddleware(cfg)

	token, err := jwtService.GenerateToken("user-123")
	require.NoError(t, err)

	handler := appMiddleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.AddCookie(&http.Cookie{Name: cfg.JWT.CookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized - invalid token", body["message"])
}

func TestAuth_WrongCookieName(t *testing.T) {
	cfg := testConfig()
	appMiddleware, jwtService := newAuthMiddleware(cfg)

	token, err := jwtService.GenerateToken("user-123")
	require.NoError(t, err)

	handler := appMiddleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
