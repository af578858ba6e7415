package response

import (
	"net/http"

	deliverycontext "traiteur/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// ViewData is the payload of a page rendered as JSON. Model is the page model,
// Errors holds form field messages and CSRFToken must be echoed on the next post.
type ViewData struct {
	View      string            `json:"view"`
	Model     any               `json:"model"`
	Errors    map[string]string `json:"errors,omitempty"`
	CSRFToken string            `json:"csrfToken,omitempty"`
}

// CSRFContextKey is where echo's CSRF middleware stores the token.
const CSRFContextKey = "csrf"

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// View renders a named page with its model as a 200 response.
func View(c echo.Context, view string, model any, fieldErrors map[string]string) error {
	token, _ := c.Get(CSRFContextKey).(string)

	return Success(c, http.StatusOK, ViewData{
		View:      view,
		Model:     model,
		Errors:    fieldErrors,
		CSRFToken: token,
	})
}

// Redirect answers a successful form post with 302 Found.
func Redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusFound, location)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
