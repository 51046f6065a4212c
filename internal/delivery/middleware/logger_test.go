package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"supermall/config"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	testCases := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		want    []string
		silent  bool
	}{
		{
			name:    "success hidden outside debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			silent:  true,
		},
		{
			name:    "client error hidden outside debug",
			handler: func(echo.Context) error { return domainerrors.ErrShopNotFound },
			silent:  true,
		},
		{
			name:    "server error always logged",
			handler: func(echo.Context) error { return errors.New("db down") },
			want:    []string{"level=ERROR", "status=500", "db down"},
		},
		{
			name:  "debug logs success with user",
			debug: true,
			handler: func(c echo.Context) error {
				deliverycontext.SetSession(c, &entity.Session{UserID: "u1"})

				return c.NoContent(http.StatusNoContent)
			},
			want: []string{"level=INFO", "status=204", "user_id=u1", "route=/shops/:id"},
		},
		{
			name:    "debug logs client error as warn",
			debug:   true,
			handler: func(echo.Context) error { return domainerrors.ErrShopNotFound },
			want:    []string{"level=WARN", "status=404"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tc.debug

			e := echo.New()
			e.GET("/shops/:id", tc.handler, NewLoggerMiddleware(logger, cfg).Handle)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/shops/s1", nil))

			if tc.silent {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tc.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
