package handler

import (
	"strings"
	"time"

	domainerrors "supermall/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate binds the request into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return domainerrors.ErrValidationFailed.WithDetails(bindMessage(httpErr))
		}

		return errors.WithStack(err)
	}

	return c.Validate(req)
}

func bindMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return "malformed request body"
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. An empty value yields nil.
func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()

			return &t, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be YYYY-MM-DD or RFC 3339")
}
