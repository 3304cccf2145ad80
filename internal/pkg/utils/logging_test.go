package utils

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogOperation(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	require.NoError(t, LogOperation(ctx, logger, "EnsureIndexes.relatorios", func(ctx context.Context) error { return nil }))
	failure := errors.New("boom")
	assert.ErrorIs(t, LogOperation(ctx, logger, "EnsureIndexes.alunos", func(ctx context.Context) error { return failure }), failure)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()[constvars.LoggingRequestIDKey])
	assert.Equal(t, true, entries[0].ContextMap()[constvars.LoggingSuccessKey])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "EnsureIndexes.alunos failed", entries[1].Message)
}

func TestLogSecurityEvent(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	req := httptest.NewRequest("DELETE", "/api/v1/reports/abc", nil)

	LogSecurityEvent(zap.New(core), req, "role_not_permitted", zap.String(constvars.LoggingRoleKey, "student"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "role_not_permitted", fields[constvars.LoggingSecurityEventKey])
	assert.Equal(t, "DELETE", fields[constvars.LoggingMethodKey])
	assert.Equal(t, "/api/v1/reports/abc", fields[constvars.LoggingEndpointKey])
	assert.Equal(t, "student", fields[constvars.LoggingRoleKey])
}

func TestGetRequestID(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}
