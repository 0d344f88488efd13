package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/auth"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
