package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(middleware.RequestIDKey), "req-42")
	return c, w
}

func TestBuildRequest(t *testing.T) {
	dto.RegisterValidators()

	tests := []struct {
		name          string
		body          string
		expectOK      bool
		expectDetails map[string]string
	}{
		{name: "valid body", body: `{"title":"Soups"}`, expectOK: true},
		{name: "missing title", body: `{}`, expectDetails: map[string]string{"title": "required"}},
		{name: "title too long", body: `{"title":"` + strings.Repeat("x", 256) + `"}`, expectDetails: map[string]string{"title": "max=255"}},
		{name: "not JSON", body: `soup`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, tt.body)

			req, ok := BuildRequest[dto.SubmenuRequest](c)

			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				require.NotNil(t, req)
				assert.Equal(t, "Soups", req.Title)
				return
			}
			assert.Nil(t, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, c.IsAborted())

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectDetails, resp.Details)
			assert.Equal(t, "req-42", resp.RequestID)
		})
	}
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	c, _ := newTestContext(http.MethodGet, "")
	c.Params = gin.Params{{Key: paramMenuID, Value: id.String()}}
	got, ok := PathUUID(c, paramMenuID)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	c, w := newTestContext(http.MethodGet, "")
	c.Params = gin.Params{{Key: paramMenuID, Value: "1"}}
	got, ok = PathUUID(c, paramMenuID)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identifier must be a UUID")
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(*ResponseBuilder)
		statusCode int
	}{
		{name: "ok", send: func(b *ResponseBuilder) { b.SuccessOK(gin.H{"id": 1}) }, statusCode: http.StatusOK},
		{name: "created", send: func(b *ResponseBuilder) { b.SuccessCreated(gin.H{"id": 1}) }, statusCode: http.StatusCreated},
		{name: "custom", send: func(b *ResponseBuilder) { b.Success(http.StatusAccepted, gin.H{"id": 1}) }, statusCode: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "")
			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.statusCode, w.Code)
			var resp dto.SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "req-42", resp.RequestID)
			assert.NotZero(t, resp.Timestamp)
			assert.Equal(t, map[string]interface{}{"id": float64(1)}, resp.Data)
		})
	}
}

func TestResponseBuilder_PooledErrorsDoNotLeakDetails(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
		map[string]string{"title": "required"}, errors.New("bad"))
	assert.Contains(t, w.Body.String(), `"details"`)

	c, w = newTestContext(http.MethodGet, "")
	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyMenuNotFound, nil)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, "menu not found", resp.Message)
	assert.Nil(t, resp.Details)
}
