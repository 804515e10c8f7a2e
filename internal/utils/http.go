package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for successful API responses
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse is the envelope for failed API responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse writes a success envelope with the given status and data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler writes an error envelope with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

func errorWithDefault(c echo.Context, statusCode int, errorMessage, fallback string) error {
	if errorMessage == "" {
		errorMessage = fallback
	}
	return ErrorResponseHandler(c, statusCode, errorMessage)
}

// BadRequestResponse writes a 400 error envelope
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse writes a 401 error envelope
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusUnauthorized, errorMessage, "Unauthorized")
}

// ForbiddenResponse writes a 403 error envelope
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusForbidden, errorMessage, "Forbidden")
}

// NotFoundResponse writes a 404 error envelope
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusNotFound, errorMessage, "Resource not found")
}

// InternalServerErrorResponse writes a 500 error envelope
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusInternalServerError, errorMessage, "Internal server error")
}

// ServiceUnavailableResponse writes a 503 error envelope
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusServiceUnavailable, errorMessage, "Service unavailable")
}
