// Package response writes the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "supermall/internal/delivery/context"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a payload: {"data": ..., "meta": {...}}
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure: {"error": {...}, "meta": {...}}
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the client-visible part of an error.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data under the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the error envelope. Details are dropped for server and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if hidesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func hidesDetails(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden
}

// HandleAppError renders err when it carries an AppError and otherwise returns it for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
