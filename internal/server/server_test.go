package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	err error
}

func (s stubHealth) Ping(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		health     HealthChecker
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", health: stubHealth{}, wantStatus: http.StatusOK, wantBody: `"healthy"`},
		{name: "database down", health: stubHealth{err: errors.New("refused")}, wantStatus: http.StatusServiceUnavailable, wantBody: `"unhealthy"`},
		{name: "no checker", health: nil, wantStatus: http.StatusOK, wantBody: `"healthy"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(":0", tc.health, "test")

			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.wantStatus, resp.Code)
			require.Contains(t, resp.Body.String(), tc.wantBody)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(":0", nil, "test")

	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, strings.Contains(resp.Body.String(), "go_goroutines"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := New("127.0.0.1:0", nil, "test")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}

func TestBodyLimit(t *testing.T) {
	s := New(":0", nil, "test")
	s.Engine.POST("/echo", BodyLimit(1), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusNoContent)
	})

	small := httptest.NewRecorder()
	s.Engine.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ok")))
	require.Equal(t, http.StatusNoContent, small.Code)

	large := httptest.NewRecorder()
	s.Engine.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2<<20))))
	require.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}
