package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordedContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{"with map data", http.StatusOK, "Retrieved", map[string]interface{}{"id": "123"}},
		{"created", http.StatusCreated, "Created", "payload"},
		{"nil data", http.StatusOK, "Done", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRecordedContext()

			require.NoError(t, SuccessResponse(c, tt.statusCode, tt.message, tt.data))
			assert.Equal(t, tt.statusCode, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.data, resp.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newRecordedContext()

	require.NoError(t, ErrorResponseHandler(c, http.StatusConflict, "already exists"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "already exists", resp.Error)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name       string
		call       func(echo.Context, string) error
		message    string
		wantStatus int
		wantError  string
	}{
		{"bad request", BadRequestResponse, "invalid input", http.StatusBadRequest, "invalid input"},
		{"unauthorized custom", UnauthorizedResponse, "bad token", http.StatusUnauthorized, "bad token"},
		{"unauthorized default", UnauthorizedResponse, "", http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", ForbiddenResponse, "", http.StatusForbidden, "Forbidden"},
		{"not found custom", NotFoundResponse, "ride not found", http.StatusNotFound, "ride not found"},
		{"not found default", NotFoundResponse, "", http.StatusNotFound, "Resource not found"},
		{"internal default", InternalServerErrorResponse, "", http.StatusInternalServerError, "Internal server error"},
		{"unavailable default", ServiceUnavailableResponse, "", http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRecordedContext()

			require.NoError(t, tt.call(c, tt.message))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
