package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKey    string
	}{
		{"menu not found", model.NewNotFoundError(model.EntityMenu), http.StatusNotFound, i18n.ErrKeyMenuNotFound},
		{"wrapped dish not found", fmt.Errorf("get: %w", model.NewNotFoundError(model.EntityDish)), http.StatusNotFound, i18n.ErrKeyDishNotFound},
		{"breaker open", gobreaker.ErrOpenState, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
		{"breaker half-open saturated", gobreaker.ErrTooManyRequests, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := ErrorStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "handles gin context errors",
			path: "/error",
			setupHandler: func(router *gin.Engine) {
				router.GET("/error", func(c *gin.Context) {
					_ = c.Error(errors.New("test error"))
				})
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{`"error":"internal_error"`, "An unexpected error occurred", `"request_id":"req-1"`},
		},
		{
			name: "not found carries the entity message",
			path: "/menus/x",
			setupHandler: func(router *gin.Engine) {
				router.GET("/menus/x", func(c *gin.Context) {
					_ = c.Error(model.NewNotFoundError(model.EntitySubmenu))
				})
			},
			expectedStatus: http.StatusNotFound,
			mustContain:    []string{`"error":"not_found"`, `"message":"submenu not found"`},
		},
		{
			name: "open breaker is unavailable",
			path: "/menus",
			setupHandler: func(router *gin.Engine) {
				router.GET("/menus", func(c *gin.Context) {
					_ = c.Error(gobreaker.ErrOpenState)
				})
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    []string{"service_unavailable"},
		},
		{
			name: "already written response is left alone",
			path: "/written",
			setupHandler: func(router *gin.Engine) {
				router.GET("/written", func(c *gin.Context) {
					c.String(http.StatusAccepted, "partial")
					_ = c.Error(errors.New("late"))
				})
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "partial",
		},
		{
			name: "does nothing when no errors",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.String(http.StatusOK, "ok")
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			tt.setupHandler(router)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-1")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}
