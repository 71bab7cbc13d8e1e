package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"answerbox/internal/handler"
	gh "answerbox/internal/http"
	"answerbox/internal/model"
	"answerbox/internal/service"
	"answerbox/internal/service/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

func newRouterWithMock(t *testing.T) (*echo.Echo, *mock.MockSearchService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mock.NewMockSearchService(ctrl)
	e := gh.NewRouter(handler.NewSearchHandler(mockService))
	return e, mockService
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	e, _ := newRouterWithMock(t)

	require.True(t, hasRoute(e, http.MethodPost, "/api/search"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/health"))
}

func TestRouter_Health(t *testing.T) {
	e, _ := newRouterWithMock(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assertSecurityHeaders(t, rec.Header())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
}

func TestRouter_SearchEndToEnd(t *testing.T) {
	e, mockService := newRouterWithMock(t)

	expected := model.SearchResponse{
		Answer: "answer",
		Sources: []model.SearchSource{
			{ID: "serp-1", Title: "t", URL: "https://a.example", Description: "d"},
		},
	}
	mockService.EXPECT().
		Search(gomock.Any(), "unknown", map[string]any{"query": "What is the speed of light?"}).
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query": "What is the speed of light?"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assertSecurityHeaders(t, rec.Header())

	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, expected, resp)
}

func TestRouter_SearchErrorsCarrySecurityHeaders(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     &service.ValidationError{Message: "Query is required and must be a string"},
			status:  http.StatusBadRequest,
			message: "Query is required and must be a string",
		},
		{
			name:    "rate limited",
			err:     service.ErrRateLimited,
			status:  http.StatusTooManyRequests,
			message: "Rate limit exceeded. Please try again later.",
		},
		{
			name:    "upstream",
			err:     service.ErrUpstream,
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, mockService := newRouterWithMock(t)
			mockService.EXPECT().
				Search(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(model.SearchResponse{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query": "q"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			assertSecurityHeaders(t, rec.Header())

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.message, resp["error"])
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	e, _ := newRouterWithMock(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assertSecurityHeaders(t, rec.Header())
}
