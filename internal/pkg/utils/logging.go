package utils

import (
	"context"
	"net/http"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation times fn and logs one line with its outcome. The request id is
// taken from ctx when present.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := fn(ctx)

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error(operation+" failed", append(fields, zap.Error(err))...)
		return err
	}

	logger.Info(operation+" done", fields...)
	return nil
}

// LogSecurityEvent records a rejected or suspicious request at warn level.
func LogSecurityEvent(logger *zap.Logger, r *http.Request, event string, fields ...zap.Field) {
	logger.Warn("Security event",
		append([]zap.Field{
			zap.String(constvars.LoggingRequestIDKey, GetRequestID(r.Context())),
			zap.String(constvars.LoggingSecurityEventKey, event),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		}, fields...)...,
	)
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
