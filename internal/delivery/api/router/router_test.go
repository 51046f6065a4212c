package router

import (
	"net/http"
	"testing"

	"supermall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	NewRouter(RouterParams{Registry: metrics.NewRegistry()}).RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		http.MethodGet + " /health",
		http.MethodGet + " /metrics",
		http.MethodGet + " /media/*",
		http.MethodPost + " /auth/signup",
		http.MethodPost + " /auth/login",
		http.MethodPost + " /auth/logout",
		http.MethodGet + " /api/v1/shops",
		http.MethodGet + " /api/v1/shops/fields/:field",
		http.MethodGet + " /api/v1/shops/:id",
		http.MethodGet + " /api/v1/shops/:id/qr",
		http.MethodPost + " /api/v1/shops",
		http.MethodPatch + " /api/v1/shops/:id",
		http.MethodDelete + " /api/v1/shops/:id",
		http.MethodGet + " /api/v1/shops/:id/products",
		http.MethodPost + " /api/v1/shops/:id/products",
		http.MethodGet + " /api/v1/shops/:id/offers",
		http.MethodPost + " /api/v1/shops/:id/offers",
		http.MethodPatch + " /api/v1/products/:id",
		http.MethodDelete + " /api/v1/products/:id",
		http.MethodGet + " /api/v1/offers/:id/products",
		http.MethodPut + " /api/v1/offers/:id/products",
		http.MethodDelete + " /api/v1/offers/:id",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
