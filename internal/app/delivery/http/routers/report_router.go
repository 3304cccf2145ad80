package routers

import (
	"fmt"
	"net/http"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/controllers"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/middlewares"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/rbac"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, internalConfig *config.InternalConfig, reportController *controllers.ReportController) {
	if internalConfig.App.PublicDownloads {
		router.Get("/download/{file_id}", reportController.DownloadAttachment)
	} else {
		router.With(middlewares.Authenticate).Get("/download/{file_id}", reportController.DownloadAttachment)
	}

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.Authorize)

		r.Post("/", reportController.CreateReport)
		r.Get("/", reportController.ListReports)
		r.Get("/{report_id}", reportController.GetReport)
		r.Patch("/{report_id}", reportController.UpdateReport)
		r.Patch("/{report_id}/archive", reportController.ArchiveReport)
		r.Delete("/{report_id}", reportController.DeleteReport)
	})
}

// ReportPermissions lists the roles allowed on each authorized report route,
// keyed by the full chi pattern under the configured prefix and version.
func ReportPermissions(internalConfig *config.InternalConfig) []rbac.Permission {
	base := fmt.Sprintf("/%s/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version, constvars.ResourceReports)
	item := base + "/{report_id}"

	return []rbac.Permission{
		{Method: http.MethodPost, Pattern: base, Roles: []models.Role{models.RoleAdmin, models.RoleSecretary, models.RoleStudent}},
		{Method: http.MethodGet, Pattern: base, Roles: []models.Role{models.RoleAdmin, models.RoleProfessor, models.RoleStudent}},
		{Method: http.MethodGet, Pattern: item, Roles: []models.Role{models.RoleAdmin, models.RoleProfessor, models.RoleStudent}},
		{Method: http.MethodPatch, Pattern: item, Roles: []models.Role{models.RoleAdmin, models.RoleProfessor, models.RoleStudent}},
		{Method: http.MethodPatch, Pattern: item + "/archive", Roles: []models.Role{models.RoleAdmin, models.RoleSecretary}},
		{Method: http.MethodDelete, Pattern: item, Roles: []models.Role{models.RoleAdmin}},
	}
}
