package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/GoSim-25-26J-441/c4model-api/internal/api/http"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/c4test"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/index"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func serveHealth(t *testing.T, handler *httpapi.HealthHandler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	handler.RegisterRoutes(router)

	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	rr := serveHealth(t, httpapi.NewHealthHandler("test-service", "1.0.0", nil, nil), "GET", "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var response httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "test-service", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Nil(t, response.Dependencies)
	assert.Nil(t, response.Workspace)
}

func TestHealthCheck_WorkspaceStats(t *testing.T) {
	ws := c4test.BigBank(t)
	svc, err := service.NewDiagramService(ws, index.Build(ws, ""), service.Options{})
	require.NoError(t, err)

	rr := serveHealth(t, httpapi.NewHealthHandler("test-service", "1.0.0", svc, nil), "GET", "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)

	var response httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.NotNil(t, response.Workspace)
	assert.Equal(t, "Big Bank plc", response.Workspace.Workspace)
	assert.Equal(t, 4, response.Workspace.Views)
}

func TestHealthCheck_Dependencies(t *testing.T) {
	tests := []struct {
		name       string
		deps       map[string]httpapi.Pinger
		wantStatus string
		want       map[string]string
	}{
		{
			name:       "all up",
			deps:       map[string]httpapi.Pinger{"redis": stubPinger{}, "postgres": stubPinger{}},
			wantStatus: "healthy",
			want:       map[string]string{"redis": "up", "postgres": "up"},
		},
		{
			name:       "redis down",
			deps:       map[string]httpapi.Pinger{"redis": stubPinger{err: errors.New("connection refused")}},
			wantStatus: "degraded",
			want:       map[string]string{"redis": "down"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveHealth(t, httpapi.NewHealthHandler("test-service", "1.0.0", nil, tt.deps), "GET", "/health")
			require.Equal(t, http.StatusOK, rr.Code)

			var response httpapi.HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, tt.wantStatus, response.Status)
			assert.Equal(t, tt.want, response.Dependencies)
		})
	}
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr := serveHealth(t, httpapi.NewHealthHandler("test-service", "1.0.0", nil, nil), "POST", "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
