package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "supermall/internal/delivery/context"
	domainerrors "supermall/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "s1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"s1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	testCases := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusNotFound, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tc.status, "CODE", "msg", "name failed on tag required"))

			body := decodeError(t, rec)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tc.wantDetails {
				assert.Equal(t, "name failed on tag required", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "create shop")
	require.NoError(t, HandleAppError(c, err))

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "name is required", body.Error.Details)
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, rec := newContext()

	cause := errors.New("boom")
	err := HandleAppError(c, cause)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Empty(t, rec.Body.String())
}
