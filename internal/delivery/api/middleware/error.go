package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"supermall/internal/delivery/api/response"
	deliverycontext "supermall/internal/delivery/context"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware is the echo HTTPErrorHandler. Every error leaves the API in the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// failure is the client-visible shape of an error.
type failure struct {
	status  int
	code    string
	message string
	details any
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := classify(err)
	if f.status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).ErrorContext(req.Context(), "Request failed",
			slog.String("code", f.code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", fmt.Sprintf("%+v", err)),
		)
	}

	_ = response.Error(c, f.status, f.code, f.message, f.details)
}

// classify maps err to a response. Errors that are neither AppErrors nor echo errors are hidden behind INTERNAL_ERROR.
func classify(err error) failure {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		f := failure{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
		if d := appErr.Details(); d != "" {
			f.details = d
		}

		return f
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return failure{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	return failure{status: http.StatusInternalServerError, code: "INTERNAL_ERROR", message: internalErrorMessage}
}
