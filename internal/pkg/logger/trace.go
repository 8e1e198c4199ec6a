package logger

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TraceIDKey context key carrying the request trace id
const TraceIDKey = "trace_id"

// UserIDKey context key carrying the viewer id
const UserIDKey = "user_id"

// ContextHandler copies trace_id and user_id from ctx onto every record
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
		if userID, ok := ctx.Value(UserIDKey).(uint64); ok && userID != 0 {
			r.AddAttrs(log.Uint64(UserIDKey, userID))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}

// NewTraceContext background context tagged with prefix-uuid, for jobs and consumers
func NewTraceContext(prefix string) context.Context {
	return context.WithValue(context.Background(), TraceIDKey, prefix+"-"+uuid.NewString())
}
