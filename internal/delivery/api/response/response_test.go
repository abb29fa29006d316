package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bookmarks/internal/delivery/context"
	domainerrors "bookmarks/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"access_token": "t"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"access_token":"t"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DropsSensitiveDetails(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusConflict, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "secret detail"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is rendered", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails("too short"), "signup"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"details":"too short"`)
	})

	t.Run("server error is returned", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.WithStack(domainerrors.ErrConfiguration))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
		assert.False(t, c.Response().Committed)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("plain error is returned", func(t *testing.T) {
		c, _ := newContext()

		assert.Error(t, HandleAppError(c, errors.New("boom")))
	})
}
