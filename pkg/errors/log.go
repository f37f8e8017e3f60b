package errors

import (
	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that writes errors to a zap logger.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool

	log *zap.Logger
}

// NewLogHandler returns a LogHandler writing to log.
// A nil logger is replaced by zap.NewNop.
func NewLogHandler(log *zap.Logger) *LogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogHandler{log: log.Named("tk")}
}

// HandleError logs a TkError.
func (h *LogHandler) HandleError(err *TkError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Type != "" {
		fields = append(fields, zap.String("type", err.Type))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	if err.Kind == KindNotFound {
		h.log.Warn("widget error", fields...)
		return
	}
	h.log.Error("widget error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if err.Op != "" {
		fields = append(fields, zap.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.log.Error("widget panic", fields...)
}
