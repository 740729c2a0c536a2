package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// eventScoped is implemented by messages that belong to one event.
type eventScoped interface {
	GetEventID() string
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, result code, request ID, event ID and duration.
// Client errors are logged at WARN, server faults at ERROR.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"code", resultCode(err),
				"request_id", GetRequestID(ctx), // empty if the request ID interceptor is not installed
				"duration_ms", time.Since(start).Milliseconds(),
			}
			// On error resp may be a typed nil, so only the request is consulted.
			source := req.Any()
			if err == nil {
				source = resp.Any()
			}
			if m, ok := source.(eventScoped); ok && m.GetEventID() != "" {
				attrs = append(attrs, "event_id", m.GetEventID())
			}

			switch {
			case err == nil:
				slog.InfoContext(ctx, "RPC ok", attrs...)
			case serverFault(connect.CodeOf(err)):
				slog.ErrorContext(ctx, "RPC error", append(attrs, "error", err)...)
			default:
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					attrs = append(attrs, "error", connectErr.Message())
				} else {
					attrs = append(attrs, "error", err)
				}
				slog.WarnContext(ctx, "RPC error", attrs...)
			}

			return resp, err
		}
	}
}

// resultCode is "ok" for success and the Connect code name otherwise.
func resultCode(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}

func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return true
	}
	return false
}
