package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/roles"
)

func attachRoleRoutes(router chi.Router, middlewares *middlewares.Middlewares, roleController *roles.RoleController) {
	router.With(middlewares.Authenticate).Get("/", roleController.ListRoles)
	router.With(middlewares.Authenticate).Put("/{roleName}", roleController.UpdateRolePermissions)
}
