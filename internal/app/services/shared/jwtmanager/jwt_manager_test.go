package jwtmanager

import (
	"context"
	"testing"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "psicare-test-secret"

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{Secret: testSecret, ExpTimeInHour: 2}}, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func signRaw(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestJWTManager_CreateAndVerify(t *testing.T) {
	manager := newTestManager(t)

	token, expiresAt, err := manager.CreateToken(context.Background(), models.RoleProfessor, "prof@psicare.dev")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)

	claims, err := manager.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleProfessor, claims.Role)
	assert.Equal(t, "prof@psicare.dev", claims.Email)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTManager_CreateTokenRejectsUnknownRole(t *testing.T) {
	_, _, err := newTestManager(t).CreateToken(context.Background(), models.Role(42), "x@psicare.dev")
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
}

func TestJWTManager_VerifyToken_Failures(t *testing.T) {
	manager := newTestManager(t)
	adminCode := int(models.RoleAdmin)
	unknownCode := 9
	now := time.Now()

	expired := newTestManager(t)
	expired.now = func() time.Time { return now.Add(-3 * time.Hour) }
	expiredToken, _, err := expired.CreateToken(context.Background(), models.RoleAdmin, "admin@psicare.dev")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{name: "empty", token: "  ", status: constvars.StatusForbidden},
		{name: "garbage", token: "not.a.token", status: constvars.StatusUnauthorized},
		{name: "expired", token: expiredToken, status: constvars.StatusUnauthorized},
		{
			name:   "wrong secret",
			token:  signRaw(t, reportClaims{Role: &adminCode, Email: "a@psicare.dev"}, "other-secret"),
			status: constvars.StatusUnauthorized,
		},
		{
			name:   "missing role",
			token:  signRaw(t, reportClaims{Email: "a@psicare.dev"}, testSecret),
			status: constvars.StatusUnauthorized,
		},
		{
			name:   "unknown role",
			token:  signRaw(t, reportClaims{Role: &unknownCode, Email: "a@psicare.dev"}, testSecret),
			status: constvars.StatusUnauthorized,
		},
		{
			name:   "unsigned",
			token:  unsignedToken(t),
			status: constvars.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.VerifyToken(context.Background(), tt.token)
			require.Error(t, err)
			assert.Equal(t, tt.status, exceptions.StatusCodeOf(err))
		})
	}
}

func unsignedToken(t *testing.T) string {
	t.Helper()
	role := int(models.RoleAdmin)
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, reportClaims{Role: &role, Email: "a@psicare.dev"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}
