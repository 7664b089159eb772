package logger

import (
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

type logCtxKey struct{}

var logCtx logCtxKey

type StartTime time.Time

// LogID ties together every line emitted while serving one request. It is
// minted when a request first touches the logger and carried in the
// context from there on.
type LogID [8]byte

func (lid LogID) String() string {
	return hex.EncodeToString(lid[:])
}

// IsValid reports whether the ID was actually minted. The zero LogID
// means "no log context".
func (lid LogID) IsValid() bool {
	return lid != (LogID{})
}

type logContext struct {
	StartTime     StartTime
	RequestID     string
	OperationName string
	LogID         LogID
}

func (lgCtx *logContext) ToFields() []zap.Field {
	if lgCtx == nil {
		return nil
	}

	attrs := make([]zap.Field, 0, 2)
	attrs = append(attrs, zap.String(logIDKey, lgCtx.LogID.String()))

	if lgCtx.RequestID != "" {
		attrs = append(attrs, zap.String(requestKey, lgCtx.RequestID))
	}
	return attrs
}

type logContextOptions struct {
	RequestID     string
	OperationName string
}

type logContextOption func(*logContextOptions)

func withOperationName(operationName string) logContextOption {
	return func(o *logContextOptions) {
		o.OperationName = operationName
	}
}

func newLogContext(logID LogID) *logContext {
	return newLogContextWithOptions(logID)
}

func newLogContextWithOptions(logID LogID, opts ...logContextOption) *logContext {
	options := &logContextOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &logContext{
		LogID:         logID,
		RequestID:     options.RequestID,
		OperationName: options.OperationName,
		StartTime:     StartTime(time.Now()),
	}
}
