package log

import "context"

type ctxKey string

const (
	ctxKeyRunID     ctxKey = "run_id"
	ctxKeyRequestID ctxKey = "request_id"
)

// WithRunID stores a sync run id in ctx so every log line carries it.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ctxKeyRunID, runID)
}

// RunIDFromContext returns the run id stored by WithRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	runID, _ := ctx.Value(ctxKeyRunID).(string)
	return runID
}

// WithRequestID stores an HTTP request id in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(ctxKeyRequestID).(string)
	return requestID
}
