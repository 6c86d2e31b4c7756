package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"classifieds/config"
	"classifieds/internal/delivery/api/middleware"
	"classifieds/internal/delivery/api/router/handler"
	"classifieds/internal/delivery/api/validator"
	domainerrors "classifieds/internal/domain/errors"
	mockUsecase "classifieds/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo   *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
	adUC   *mockUsecase.MockAdUsecase
}

func newTestEcho(t *testing.T) routerFixtures {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	adUC := mockUsecase.NewMockAdUsecase(t)

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(authUC, userUC),
		AuthHandler:    handler.NewAuthHandler(authUC),
		AdHandler:      handler.NewAdHandler(adUC),
		HealthHandler:  &handler.HealthHandler{},
		AuthMiddleware: middleware.NewAuthMiddleware(authUC),
		Config:         cfg,
	}).RegisterRoutes(e)

	return routerFixtures{echo: e, authUC: authUC, adUC: adUC}
}

func TestRegisterRoutes_EachRouteOnce(t *testing.T) {
	fx := newTestEcho(t)

	seen := map[string]int{}
	for _, route := range fx.echo.Routes() {
		seen[route.Method+" "+route.Path]++
	}

	expected := []string{
		"GET /health",
		"GET /metrics",
		"POST /api/v1/user-create/",
		"GET /api/v1/user-info/:id",
		"GET /api/v1/user-info/:id/del",
		"GET /api/v1/user-info/:id/ads",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"GET /api/v1/ad-info/:id",
		"GET /api/v1/ad-info/:id/qr",
		"POST /api/v1/ad-create/",
		"POST /api/v1/ad-info/:id/update/",
		"GET /api/v1/ad-info/:id/del",
	}
	for _, route := range expected {
		assert.Equal(t, 1, seen[route], route)
	}
	assert.Len(t, seen, len(expected))
}

func TestProtectedRoutes_RequireBearer(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodPost, "/api/v1/ad-create/"},
		{http.MethodPost, "/api/v1/ad-info/1/update/"},
		{http.MethodGet, "/api/v1/ad-info/1/del"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			fx := newTestEcho(t)
			fx.authUC.On("ResolveBearer", mock.Anything, "").Return(nil, domainerrors.ErrAuthHeaderInvalid)

			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "AUTH_HEADER_INVALID")
			fx.adUC.AssertNotCalled(t, "DeleteAd", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPublicRoute_InvalidID(t *testing.T) {
	fx := newTestEcho(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ad-info/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestMetricsEndpoint(t *testing.T) {
	fx := newTestEcho(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
