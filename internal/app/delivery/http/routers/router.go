package routers

import (
	"fmt"
	"strings"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/controllers"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/middlewares"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	reportController *controllers.ReportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.FrontendDomain),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderContentDisposition, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceAuth), func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceReports), func(r chi.Router) {
				attachReportRoutes(r, middlewares, internalConfig, reportController)
			})
		})
	})
}

func allowedOrigins(frontendDomain string) []string {
	var origins []string
	for _, origin := range strings.Split(frontendDomain, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
