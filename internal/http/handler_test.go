package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/mocks"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	menuID    = uuid.MustParse("a2eb416c-2245-4526-bb4b-6343d5c5016f")
	submenuID = uuid.MustParse("5f0b1d67-1d8c-4b44-9a77-7a3a3f8d1c2e")
	dishID    = uuid.MustParse("0c1d9b0e-3a7e-4a7b-8d53-2f0b7d6d3c11")
)

type serviceMocks struct {
	menus    *mocks.MockMenuService
	submenus *mocks.MockSubmenuService
	dishes   *mocks.MockDishService
}

func setupRouterWithMocks(t *testing.T, cfg RouterConfig) (*Router, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		menus:    new(mocks.MockMenuService),
		submenus: new(mocks.MockSubmenuService),
		dishes:   new(mocks.MockDishService),
	}
	routes := NewMenuRoutes(NewMenuHandler(m.menus), NewSubmenuHandler(m.submenus), NewDishHandler(m.dishes))
	router := NewRouter(routes, NewHealthHandler(), cfg)
	t.Cleanup(func() {
		router.Close()
		m.menus.AssertExpectations(t)
		m.submenus.AssertExpectations(t)
		m.dishes.AssertExpectations(t)
	})
	return router, m
}

func perform(router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// decodeData unmarshals the data field of the success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestMenuHandler(t *testing.T) {
	menusPath := "/api/v1/menus"
	menuPath := menusPath + "/" + menuID.String()
	menu := &model.Menu{ID: menuID, Title: "Main", Description: "All day", SubmenusCount: 1, DishesCount: 2}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMock      func(*mocks.MockMenuService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "list menus",
			method: http.MethodGet,
			path:   menusPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("GetMenus", mock.Anything).Return([]model.Menu{*menu}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got []model.Menu
				decodeData(t, w, &got)
				require.Len(t, got, 1)
				assert.Equal(t, 1, got[0].SubmenusCount)
				assert.Equal(t, 2, got[0].DishesCount)
			},
		},
		{
			name:   "empty list is an empty array",
			method: http.MethodGet,
			path:   menusPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("GetMenus", mock.Anything).Return([]model.Menu{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"data":[]`)
			},
		},
		{
			name:   "get menu",
			method: http.MethodGet,
			path:   menuPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("GetMenu", mock.Anything, menuID).Return(menu, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got model.Menu
				decodeData(t, w, &got)
				assert.Equal(t, *menu, got)
			},
		},
		{
			name:   "get missing menu is 404",
			method: http.MethodGet,
			path:   menuPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("GetMenu", mock.Anything, menuID).Return(nil, model.NewNotFoundError(model.EntityMenu)).Once()
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
				assert.Equal(t, "menu not found", resp.Message)
			},
		},
		{
			name:           "malformed id is 400 without touching the service",
			method:         http.MethodGet,
			path:           menusPath + "/not-a-uuid",
			setupMock:      func(m *mocks.MockMenuService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "uuid", resp.Details["menu_id"])
			},
		},
		{
			name:   "create menu",
			method: http.MethodPost,
			path:   menusPath,
			body:   `{"title":"Main","description":"All day"}`,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("CreateMenu", mock.Anything, model.MenuInput{Title: "Main", Description: "All day"}).
					Return(&model.Menu{ID: menuID, Title: "Main", Description: "All day"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got model.Menu
				decodeData(t, w, &got)
				assert.Equal(t, menuID, got.ID)
				assert.Zero(t, got.SubmenusCount)
			},
		},
		{
			name:           "create without title is 400 with details",
			method:         http.MethodPost,
			path:           menusPath,
			body:           `{"description":"x"}`,
			setupMock:      func(m *mocks.MockMenuService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, "required", resp.Details["title"])
			},
		},
		{
			name:           "create with broken JSON is 400",
			method:         http.MethodPost,
			path:           menusPath,
			body:           `{"title":`,
			setupMock:      func(m *mocks.MockMenuService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, "Invalid request body", resp.Message)
				assert.Empty(t, resp.Details)
			},
		},
		{
			name:   "update menu",
			method: http.MethodPatch,
			path:   menuPath,
			body:   `{"title":"Renamed"}`,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("UpdateMenu", mock.Anything, menuID, model.MenuInput{Title: "Renamed"}).
					Return(&model.Menu{ID: menuID, Title: "Renamed"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete returns the deleted menu",
			method: http.MethodDelete,
			path:   menuPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("DeleteMenu", mock.Anything, menuID).Return(menu, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got model.Menu
				decodeData(t, w, &got)
				assert.Equal(t, menuID, got.ID)
			},
		},
		{
			name:   "open breaker is 503",
			method: http.MethodGet,
			path:   menusPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("GetMenus", mock.Anything).Return(nil, gobreaker.ErrOpenState).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "unexpected error is 500",
			method: http.MethodDelete,
			path:   menuPath,
			setupMock: func(m *mocks.MockMenuService) {
				m.On("DeleteMenu", mock.Anything, menuID).Return(nil, errors.New("connection reset")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouterWithMocks(t, DefaultRouterConfig())
			tt.setupMock(m.menus)

			w := perform(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestSubmenuHandler(t *testing.T) {
	listPath := "/api/v1/menus/" + menuID.String() + "/submenus"
	itemPath := listPath + "/" + submenuID.String()
	sub := &model.Submenu{ID: submenuID, MenuID: menuID, Title: "Salads", DishesCount: 3}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		headers        []string
		setupMock      func(*mocks.MockSubmenuService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "list submenus",
			method: http.MethodGet,
			path:   listPath,
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("GetSubmenus", mock.Anything, menuID).Return([]model.Submenu{*sub}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"dishes_count":3`,
		},
		{
			name:   "get submenu",
			method: http.MethodGet,
			path:   itemPath,
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("GetSubmenu", mock.Anything, menuID, submenuID).Return(sub, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"menu_id":"` + menuID.String() + `"`,
		},
		{
			name:    "missing submenu in russian",
			method:  http.MethodGet,
			path:    itemPath,
			headers: []string{"Accept-Language", "ru-RU,ru;q=0.9"},
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("GetSubmenu", mock.Anything, menuID, submenuID).
					Return(nil, model.NewNotFoundError(model.EntitySubmenu)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "подменю не найдено",
		},
		{
			name:   "create under missing menu is 404 menu",
			method: http.MethodPost,
			path:   listPath,
			body:   `{"title":"Soups"}`,
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("CreateSubmenu", mock.Anything, menuID, model.SubmenuInput{Title: "Soups"}).
					Return(nil, model.NewNotFoundError(model.EntityMenu)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"menu not found"`,
		},
		{
			name:   "create submenu",
			method: http.MethodPost,
			path:   listPath,
			body:   `{"title":"Soups","description":"Hot"}`,
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("CreateSubmenu", mock.Anything, menuID, model.SubmenuInput{Title: "Soups", Description: "Hot"}).
					Return(&model.Submenu{ID: submenuID, MenuID: menuID, Title: "Soups"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "update submenu",
			method: http.MethodPatch,
			path:   itemPath,
			body:   `{"title":"Renamed"}`,
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("UpdateSubmenu", mock.Anything, menuID, submenuID, model.SubmenuInput{Title: "Renamed"}).
					Return(sub, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete submenu",
			method: http.MethodDelete,
			path:   itemPath,
			setupMock: func(m *mocks.MockSubmenuService) {
				m.On("DeleteSubmenu", mock.Anything, menuID, submenuID).Return(sub, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed submenu id",
			method:         http.MethodDelete,
			path:           listPath + "/42",
			setupMock:      func(m *mocks.MockSubmenuService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"submenu_id":"uuid"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouterWithMocks(t, DefaultRouterConfig())
			tt.setupMock(m.submenus)

			w := perform(router, tt.method, tt.path, tt.body, tt.headers...)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestDishHandler(t *testing.T) {
	listPath := "/api/v1/menus/" + menuID.String() + "/submenus/" + submenuID.String() + "/dishes"
	itemPath := listPath + "/" + dishID.String()
	dish := &model.Dish{ID: dishID, SubmenuID: submenuID, Title: "Caesar", Price: model.MustParsePrice("12.50")}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMock      func(*mocks.MockDishService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "list dishes",
			method: http.MethodGet,
			path:   listPath,
			setupMock: func(m *mocks.MockDishService) {
				m.On("GetDishes", mock.Anything, menuID, submenuID).Return([]model.Dish{*dish}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":"12.50"`,
		},
		{
			name:   "get dish",
			method: http.MethodGet,
			path:   itemPath,
			setupMock: func(m *mocks.MockDishService) {
				m.On("GetDish", mock.Anything, menuID, submenuID, dishID).Return(dish, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Caesar"`,
		},
		{
			name:   "missing dish",
			method: http.MethodGet,
			path:   itemPath,
			setupMock: func(m *mocks.MockDishService) {
				m.On("GetDish", mock.Anything, menuID, submenuID, dishID).
					Return(nil, model.NewNotFoundError(model.EntityDish)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"dish not found"`,
		},
		{
			name:   "create dish parses the price",
			method: http.MethodPost,
			path:   listPath,
			body:   `{"title":"Caesar","price":"12.5"}`,
			setupMock: func(m *mocks.MockDishService) {
				m.On("CreateDish", mock.Anything, menuID, submenuID, mock.MatchedBy(func(in model.DishInput) bool {
					return in.Title == "Caesar" && in.Price.String() == "12.50"
				})).Return(dish, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "three fractional digits are rejected",
			method:         http.MethodPost,
			path:           listPath,
			body:           `{"title":"Caesar","price":"12.505"}`,
			setupMock:      func(m *mocks.MockDishService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"price":"price"`,
		},
		{
			name:           "negative price is rejected",
			method:         http.MethodPatch,
			path:           itemPath,
			body:           `{"title":"Caesar","price":"-1"}`,
			setupMock:      func(m *mocks.MockDishService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"price":"price"`,
		},
		{
			name:           "price is required",
			method:         http.MethodPost,
			path:           listPath,
			body:           `{"title":"Caesar"}`,
			setupMock:      func(m *mocks.MockDishService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"price":"required"`,
		},
		{
			name:   "update dish",
			method: http.MethodPatch,
			path:   itemPath,
			body:   `{"title":"Caesar","price":"9.99"}`,
			setupMock: func(m *mocks.MockDishService) {
				m.On("UpdateDish", mock.Anything, menuID, submenuID, dishID, mock.AnythingOfType("model.DishInput")).
					Return(dish, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete dish",
			method: http.MethodDelete,
			path:   itemPath,
			setupMock: func(m *mocks.MockDishService) {
				m.On("DeleteDish", mock.Anything, menuID, submenuID, dishID).Return(dish, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed dish id",
			method:         http.MethodGet,
			path:           listPath + "/x",
			setupMock:      func(m *mocks.MockDishService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"dish_id":"uuid"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouterWithMocks(t, DefaultRouterConfig())
			tt.setupMock(m.dishes)

			w := perform(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestNoRoute(t *testing.T) {
	router, _ := setupRouterWithMocks(t, DefaultRouterConfig())

	w := perform(router, http.MethodGet, "/api/v2/menus", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
}
