package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key the trace ID is stored under
	TraceIDContextKey = "trace_id"
)

type traceIDKey struct{}

// RequestID tags every request with a trace ID. A client-supplied X-Trace-ID
// is honored so callers can correlate their requests end to end; otherwise a
// fresh UUID is generated. The ID is stored on the echo context, planted in
// the request's context.Context for log correlation, and echoed on the
// response so error payloads and support tickets can reference it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			ctx := context.WithValue(c.Request().Context(), traceIDKey{}, traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored on the echo context, or "" when the
// RequestID middleware did not run
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// TraceIDFromContext returns the trace ID planted by RequestID, or "" for
// contexts that never passed through the middleware
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}
