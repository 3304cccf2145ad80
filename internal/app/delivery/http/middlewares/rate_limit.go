package middlewares

import (
	"net/http"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimiter limits requests per client IP over the configured window.
func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}

	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
