package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"supermall/config"
	"supermall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServerEcho(origins ...string) *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.CORSAllowOrigins = origins

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := newEcho(cfg, logger, metrics.NewHTTPMetrics(metrics.NewRegistry()))
	e.POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, string(body))
	})

	return e
}

func TestNewEcho_SetsRequestID(t *testing.T) {
	e := newTestServerEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hi")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newTestServerEcho()
	large := strings.Repeat("x", 2048)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(large)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(large))
	req.Header.Set(echo.HeaderContentType, echo.MIMEMultipartForm+"; boundary=x")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewEcho_CORS(t *testing.T) {
	e := newTestServerEcho("https://mall.test")

	for origin, wantAllowed := range map[string]bool{
		"https://mall.test":  true,
		"https://other.test": false,
	} {
		req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
		req.Header.Set(echo.HeaderOrigin, origin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if wantAllowed {
			assert.Equal(t, origin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		} else {
			assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		}
	}
}
