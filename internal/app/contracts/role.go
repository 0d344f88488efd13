package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type RoleUsecase interface {
	ListRoles(ctx context.Context, actor *authz.Actor) ([]responses.Role, error)
	// UpdateRolePermissions rewrites a role's grant list in the store.
	// The in-process registry is frozen at startup, so the change takes
	// effect on the next restart.
	UpdateRolePermissions(ctx context.Context, actor *authz.Actor, roleName string, request *requests.UpdateRolePermissions) (*responses.Role, error)
}

type RoleRepository interface {
	FindAll(ctx context.Context) ([]models.Role, error)
	FindByName(ctx context.Context, roleName string) (*models.Role, error)
	CreateRole(ctx context.Context, roleEntity *models.Role) (roleID string, err error)
	UpdateRole(ctx context.Context, roleName string, permissions []string) error
}
