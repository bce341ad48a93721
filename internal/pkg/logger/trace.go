package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求链路 id 在 Context 与日志字段中共用的键名
const TraceIDKey = "trace_id"

// ContextHandler 包装 slog Handler，把请求的 trace_id 附到每条日志上
// gin、gorm、redis 三条日志线借此对齐到同一次请求
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
