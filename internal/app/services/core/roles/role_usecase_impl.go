package roles

import (
	"context"
	"time"

	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/utils"
)

type roleUsecase struct {
	RoleRepository contracts.RoleRepository
	Engine         *authz.Engine
	Log            *zap.Logger
}

func NewRoleUsecase(roleRepository contracts.RoleRepository, engine *authz.Engine, logger *zap.Logger) contracts.RoleUsecase {
	return &roleUsecase{
		RoleRepository: roleRepository,
		Engine:         engine,
		Log:            logger,
	}
}

// SeedDefaultRoles writes the built-in grant table for roles that do not
// exist yet. Existing documents are left alone so operator edits survive
// restarts. Runs at startup before the registry snapshot is taken.
func SeedDefaultRoles(ctx context.Context, roleRepository contracts.RoleRepository, logger *zap.Logger) {
	seed := authz.DefaultRolePermissions()
	// Admin is stored too so it shows up in listings, with an empty
	// grant list: its access never comes from the table.
	seed[constvars.RoleAdmin] = []string{}

	for roleName, permissions := range seed {
		existing, err := roleRepository.FindByName(ctx, roleName)
		if err != nil {
			logger.Error("roles.SeedDefaultRoles error finding role",
				zap.String("role", roleName),
				zap.Error(err),
			)
			continue
		}
		if existing != nil {
			continue
		}

		now := time.Now()
		_, err = roleRepository.CreateRole(ctx, &models.Role{
			ID:          utils.GenerateDocumentID(),
			Name:        roleName,
			Permissions: permissions,
			TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
		})
		if err != nil {
			logger.Error("roles.SeedDefaultRoles error creating role",
				zap.String("role", roleName),
				zap.Error(err),
			)
		}
	}
}

// BuildRegistry reads the stored role grants and freezes them into the
// in-process registry used for every authorization decision.
func BuildRegistry(ctx context.Context, roleRepository contracts.RoleRepository, logger *zap.Logger) (*authz.Registry, error) {
	roleEntities, err := roleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rolePermissions := make(map[string][]string, len(roleEntities))
	for _, roleEntity := range roleEntities {
		if roleEntity.Name == constvars.RoleAdmin {
			continue
		}
		rolePermissions[roleEntity.Name] = roleEntity.Permissions
	}

	if len(rolePermissions) == 0 {
		// A store with no grants means seeding never ran; fall back to
		// the built-in table instead of denying every request.
		logger.Warn("roles.BuildRegistry role store empty, using built-in grants")
		return authz.NewDefaultRegistry(), nil
	}

	return authz.NewRegistry(rolePermissions, authz.DefaultSelfScopedActions()), nil
}

func (uc *roleUsecase) ListRoles(ctx context.Context, actor *authz.Actor) ([]responses.Role, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roleUsecase.ListRoles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewRoles, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	roleEntities, err := uc.RoleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	roleResponses := make([]responses.Role, 0, len(roleEntities))
	for _, roleEntity := range roleEntities {
		roleResponses = append(roleResponses, responses.Role{
			ID:          roleEntity.ID,
			Name:        roleEntity.Name,
			Permissions: roleEntity.Permissions,
		})
	}
	return roleResponses, nil
}

func (uc *roleUsecase) UpdateRolePermissions(ctx context.Context, actor *authz.Actor, roleName string, request *requests.UpdateRolePermissions) (*responses.Role, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roleUsecase.UpdateRolePermissions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", roleName),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditRoles, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}
	// Admin's access never comes from the grant table, so its stored
	// list stays empty.
	if roleName == constvars.RoleAdmin {
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	roleEntity, err := uc.RoleRepository.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if roleEntity == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if err := uc.RoleRepository.UpdateRole(ctx, roleName, request.Permissions); err != nil {
		return nil, err
	}

	uc.Log.Warn("roleUsecase.UpdateRolePermissions stored grants changed, registry refreshes on restart",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", roleName),
	)

	return &responses.Role{
		ID:          roleEntity.ID,
		Name:        roleEntity.Name,
		Permissions: request.Permissions,
	}, nil
}
