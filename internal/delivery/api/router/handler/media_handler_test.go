package handler

import (
	"net/http"
	"testing"

	"supermall/internal/domain/service"
	mockService "supermall/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMediaTestServer(t *testing.T) (*echo.Echo, *mockService.MockBlobReader) {
	reader := mockService.NewMockBlobReader(t)
	h := NewMediaHandler(MediaHandlerParams{Reader: reader})

	e := newTestEcho()
	e.GET("/media/*", h.GetMedia)

	return e, reader
}

func TestMediaHandler_GetMedia(t *testing.T) {
	e, reader := newMediaTestServer(t)

	reader.EXPECT().
		Read(mock.Anything, "products/shop-1/1700000000000_tea.png").
		Return([]byte("png"), "image/png", nil)

	rec := doRequest(e, http.MethodGet, "/media/products%2Fshop-1%2F1700000000000_tea.png", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, mediaCacheControl, rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png", rec.Body.String())
}

func TestMediaHandler_GetMedia_NotFound(t *testing.T) {
	e, reader := newMediaTestServer(t)

	reader.EXPECT().
		Read(mock.Anything, "products/shop-1/gone.png").
		Return(nil, "", errors.Wrap(service.ErrBlobNotFound, "products/shop-1/gone.png"))

	rec := doRequest(e, http.MethodGet, "/media/products/shop-1/gone.png", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MEDIA_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestMediaHandler_GetMedia_RejectsOtherKeys(t *testing.T) {
	e, _ := newMediaTestServer(t)

	for _, target := range []string{"/media/audit/log.json", "/media/products/..%2F..%2Fetc%2Fpasswd"} {
		rec := doRequest(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestMediaPath(t *testing.T) {
	testCases := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "products/s1/a.png", want: "products/s1/a.png", wantOK: true},
		{raw: "products%2Fs1%2Fa%20b.png", want: "products/s1/a b.png", wantOK: true},
		{raw: "shops/s1.png", wantOK: false},
		{raw: "products/../secret", wantOK: false},
		{raw: "products/%zz", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := mediaPath(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
