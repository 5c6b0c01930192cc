package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ppcl2025/campaign-change-tracker/internal/config"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking/mocks"
	"github.com/ppcl2025/campaign-change-tracker/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: secret},
	}
}

func TestNew_RequiresTracker(t *testing.T) {
	_, err := New(testConfig(""), Dependencies{})

	assert.Error(t, err)
}

func TestServer_MiddlewareChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockTracker(ctrl)

	srv, err := New(testConfig("segredo"), Dependencies{Tracker: tracker})
	require.NoError(t, err)

	t.Run("healthcheck público com correlation id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("preflight CORS responde sem autenticação", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/accounts/123/snapshots", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("rota protegida exige token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/123/changelog", nil)
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_ShutdownRunsCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, err := New(testConfig(""), Dependencies{Tracker: mocks.NewMockTracker(ctrl)})
	require.NoError(t, err)

	closed := false
	srv.OnShutdown(func() error {
		closed = true
		return nil
	})

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.True(t, closed)
}
