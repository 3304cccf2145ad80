package jwtmanager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// reportClaims is the token body shared with the frontend: numeric role plus email.
type reportClaims struct {
	Role  *int   `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 access tokens.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

var _ contracts.TokenManager = (*JWTManager)(nil)

func (j *JWTManager) CreateToken(ctx context.Context, role models.Role, email string) (string, time.Time, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)

	if !role.Valid() {
		return "", time.Time{}, exceptions.ErrInvalidRoleType(nil)
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	code := int(role)
	claims := reportClaims{
		Role:  &code,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, exceptions.ErrTokenGenerate(err)
	}
	return signed, expiresAt, nil
}

// VerifyToken checks signature and expiry. Any failure there is ErrTokenInvalidOrExpired;
// a well signed token with missing or unknown claims is ErrTokenClaims.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (*contracts.TokenClaims, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if strings.TrimSpace(token) == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims := new(reportClaims)
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, keyFunc)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !parsed.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	if claims.Role == nil || claims.Email == "" {
		return nil, exceptions.ErrTokenClaims(fmt.Errorf("role or email claim missing"))
	}
	role := models.Role(*claims.Role)
	if !role.Valid() {
		return nil, exceptions.ErrInvalidRoleType(fmt.Errorf("role claim %d", *claims.Role))
	}

	result := &contracts.TokenClaims{
		Role:  role,
		Email: claims.Email,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
