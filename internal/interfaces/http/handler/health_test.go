package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inventory/backend/internal/domain/shared"
	"github.com/inventory/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	latency time.Duration
	err     error
}

func (s *stubPinger) PingLatency(ctx context.Context) (time.Duration, error) {
	return s.latency, s.err
}

func setupHealthRouter(pinger Pinger) *gin.Engine {
	engine := gin.New()
	router.NewRouter(engine).Register(NewHealthHandler(pinger).Routes()).Setup()
	return engine
}

func TestHealthHandler_Check(t *testing.T) {
	t.Run("reports connectivity and latency", func(t *testing.T) {
		engine := setupHealthRouter(&stubPinger{latency: 42 * time.Millisecond})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Status    string    `json:"status"`
			LatencyMs int64     `json:"latencyMs"`
			Timestamp time.Time `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "connected", resp.Status)
		assert.Equal(t, int64(42), resp.LatencyMs)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("unreachable store returns 500 with timestamp", func(t *testing.T) {
		engine := setupHealthRouter(&stubPinger{err: shared.ErrConnectionFailed})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp struct {
			Error     string    `json:"error"`
			Timestamp time.Time `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Database connection failed", resp.Error)
		assert.False(t, resp.Timestamp.IsZero())
	})
}
