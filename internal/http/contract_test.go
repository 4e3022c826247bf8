//go:build contract

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	menu := model.Menu{ID: menuID, Title: "Main", Description: "All day", SubmenusCount: 2, DishesCount: 5}
	dish := model.Dish{ID: dishID, SubmenuID: submenuID, Title: "Caesar", Price: model.MustParsePrice("12.50")}
	dishPath := "/api/v1/menus/" + menuID.String() + "/submenus/" + submenuID.String() + "/dishes/" + dishID.String()

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		setup            func(*serviceMocks)
		expectedStatus   int
		validateResponse func(*testing.T, map[string]interface{})
	}{
		{
			name:   "GET /api/v1/menus/{id} - Success 200",
			method: http.MethodGet,
			path:   "/api/v1/menus/" + menuID.String(),
			setup: func(m *serviceMocks) {
				m.menus.On("GetMenu", mock.Anything, menuID).Return(&menu, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["request_id"], "Response must include request_id")
				assert.NotEmpty(t, resp["timestamp"], "Response must include timestamp")

				data, ok := resp["data"].(map[string]interface{})
				require.True(t, ok, "data must be a menu object")
				for _, field := range []string{"id", "title", "description", "submenus_count", "dishes_count"} {
					assert.Contains(t, data, field)
				}
				assert.Equal(t, float64(2), data["submenus_count"])
			},
		},
		{
			name:   "GET dish - price is a two-decimal string",
			method: http.MethodGet,
			path:   dishPath,
			setup: func(m *serviceMocks) {
				m.dishes.On("GetDish", mock.Anything, menuID, submenuID, dishID).Return(&dish, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "12.50", data["price"])
				assert.Equal(t, submenuID.String(), data["submenu_id"])
			},
		},
		{
			name:   "GET missing dish - Error 404",
			method: http.MethodGet,
			path:   dishPath,
			setup: func(m *serviceMocks) {
				m.dishes.On("GetDish", mock.Anything, menuID, submenuID, dishID).
					Return(nil, model.NewNotFoundError(model.EntityDish)).Once()
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "not_found", resp["error"])
				assert.Equal(t, "dish not found", resp["message"])
				assert.NotEmpty(t, resp["request_id"])
				assert.NotEmpty(t, resp["timestamp"])
			},
		},
		{
			name:           "POST /api/v1/menus - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/v1/menus",
			body:           `invalid json`,
			setup:          func(m *serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid_request", resp["error"])
				assert.NotEmpty(t, resp["message"])
				assert.NotContains(t, resp, "details")
			},
		},
		{
			name:           "POST /api/v1/menus - Error 400 with field details",
			method:         http.MethodPost,
			path:           "/api/v1/menus",
			body:           `{}`,
			setup:          func(m *serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				details, ok := resp["details"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "required", details["title"])
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			setup:          func(m *serviceMocks) {},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouterWithMocks(t, DefaultRouterConfig())
			tt.setup(m)

			w := perform(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			tt.validateResponse(t, resp)
		})
	}
}
