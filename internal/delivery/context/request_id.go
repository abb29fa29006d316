// Package context holds request-scoped values shared by the delivery and use case layers.
package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values this package stores in a context.Context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"

	// HeaderXRequestID is the header that carries the request ID in both directions.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request ID on the echo context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the ID set by SetRequestID, then the one on the request
// context, then the response header. It is empty outside the request ID middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID stored by WithRequestID, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}
