package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "supermall/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "missing header", header: "", wantKept: false},
		{name: "well formed", header: "req-123_abc.def:1", wantKept: true},
		{name: "too long", header: strings.Repeat("a", maxRequestIDLength+1), wantKept: false},
		{name: "unsafe characters", header: "bad id\nwith newline", wantKept: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var fromCtx string
			err := mw.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := deliverycontext.GetRequestID(c)
			assert.Equal(t, got, fromCtx)
			assert.Equal(t, got, rec.Header().Get(echo.HeaderXRequestID))

			if tc.wantKept {
				assert.Equal(t, tc.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}
