package routers

import (
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/controllers"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
}
