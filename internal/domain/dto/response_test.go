package dto

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_Builders(t *testing.T) {
	tests := []struct {
		name     string
		build    func() ErrorResponse
		validate func(*testing.T, ErrorResponse)
	}{
		{
			name: "new error carries code, message and timestamp",
			build: func() ErrorResponse {
				return NewError(ErrCodeNotFound, "menu not found")
			},
			validate: func(t *testing.T, e ErrorResponse) {
				assert.Equal(t, ErrCodeNotFound, e.Error)
				assert.Equal(t, "menu not found", e.Message)
				assert.WithinDuration(t, time.Now(), e.Timestamp, time.Second)
			},
		},
		{
			name: "request id",
			build: func() ErrorResponse {
				return NewError(ErrCodeInternal, "boom").WithRequestID("req-1")
			},
			validate: func(t *testing.T, e ErrorResponse) {
				assert.Equal(t, "req-1", e.RequestID)
			},
		},
		{
			name: "details",
			build: func() ErrorResponse {
				return NewError(ErrCodeInvalidRequest, "bad").WithDetails(map[string]string{"price": "price"})
			},
			validate: func(t *testing.T, e ErrorResponse) {
				assert.Equal(t, map[string]string{"price": "price"}, e.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}
