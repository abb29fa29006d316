package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookmarks/config"
	deliverycontext "bookmarks/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "propagates client id", incoming: "req-123", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces id with spaces", incoming: "bad id"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, ctxLogger)

			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				parsed, err := uuid.Parse(headerID)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("debug logs the rendered status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = true

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "nope")
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), "status=404")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
