//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the global logger into a buffer for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = previous })
	return buf
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		statusCode    int
		expectedLevel string
		expectLogging bool
	}{
		{name: "successful request logs info", path: "/api/v1/menus/42", statusCode: 200, expectedLevel: "info", expectLogging: true},
		{name: "redirect logs info", path: "/api/v1/menus/42", statusCode: 301, expectedLevel: "info", expectLogging: true},
		{name: "client error logs warn", path: "/api/v1/menus/42", statusCode: 404, expectedLevel: "warn", expectLogging: true},
		{name: "server error logs error", path: "/api/v1/menus/42", statusCode: 503, expectedLevel: "error", expectLogging: true},
		{name: "health probe is skipped", path: "/healthz", statusCode: 200, expectLogging: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			router := gin.New()
			router.Use(RequestID(), RequestLogger("/healthz", "/metrics"))
			router.GET("/api/v1/menus/:id", func(c *gin.Context) { c.Status(tt.statusCode) })
			router.GET("/healthz", func(c *gin.Context) { c.Status(tt.statusCode) })

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-log")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)
			if !tt.expectLogging {
				assert.Empty(t, buf.String())
				return
			}

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 1)

			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "req-log", entry["request_id"])
			assert.Equal(t, "/api/v1/menus/:id", entry["route"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.statusCode), entry["status_code"])
			assert.Contains(t, entry, "duration_ms")
		})
	}
}
