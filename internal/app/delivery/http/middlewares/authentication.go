package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/rbac"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into an identity and stores it in the
// request context. A missing token is 403, an unusable one 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			m.Log.Info("Middlewares.Authenticate token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		identity, err := m.IdentityResolver.Resolve(r.Context(), token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, r, "token_rejected", zap.Error(err))
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_KEY, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize must run after Authenticate and inside a chi route, since the
// policy object is the pattern of the matched route.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingIdentity(nil))
			return
		}

		var pattern string
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil {
			pattern = rbac.NormalizeObject(routeContext.RoutePattern())
		}

		allowed, err := m.Enforcer.Enforce(identity.Role.String(), r.Method, pattern)
		if err != nil {
			m.Log.Error("Middlewares.Authorize enforcer failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
		}
		if err != nil || !allowed {
			utils.LogSecurityEvent(m.Log, r, "role_not_permitted",
				zap.String(constvars.LoggingRoleKey, identity.Role.String()),
				zap.String(constvars.LoggingRoutePatternKey, pattern),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	return identity, ok && identity != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
	if header == "" || strings.EqualFold(header, strings.TrimSpace(constvars.AuthorizationBearerPrefix)) {
		return "", false
	}
	if len(header) > len(constvars.AuthorizationBearerPrefix) && strings.EqualFold(header[:len(constvars.AuthorizationBearerPrefix)], constvars.AuthorizationBearerPrefix) {
		header = header[len(constvars.AuthorizationBearerPrefix):]
	}
	token := strings.TrimSpace(header)
	return token, token != ""
}
