package handler

import (
	"net/http"
	"net/url"
	"strings"

	"supermall/internal/delivery/api/response"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"
	"supermall/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	mediaPrefix       = "products/"
	mediaCacheControl = "public, max-age=86400"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Reader service.BlobReader
}

// MediaHandler serves product images from buckets without a public endpoint, such as file:// and mem://.
type MediaHandler struct {
	reader service.BlobReader
}

func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{reader: params.Reader}
}

// GetMedia handles GET /media/*
func (h *MediaHandler) GetMedia(c echo.Context) error {
	path, ok := mediaPath(c.Param("*"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMediaNotFound)
	}

	data, contentType, err := h.reader.Read(c.Request().Context(), path)
	if errors.Is(err, service.ErrBlobNotFound) {
		return response.HandleAppError(c, domainerrors.ErrMediaNotFound)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", mediaCacheControl)

	return c.Blob(http.StatusOK, contentType, data)
}

// mediaPath unescapes the wildcard and only admits keys under the product image prefix.
func mediaPath(raw string) (string, bool) {
	path, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}

	if !strings.HasPrefix(path, mediaPrefix) || strings.Contains(path, "..") {
		return "", false
	}

	return path, true
}
