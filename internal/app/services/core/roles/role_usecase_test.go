package roles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/exceptions"
)

type stubRoleRepository struct {
	roles   map[string]*models.Role
	updated map[string][]string
}

func newStubRoleRepository() *stubRoleRepository {
	return &stubRoleRepository{
		roles:   map[string]*models.Role{},
		updated: map[string][]string{},
	}
}

func (s *stubRoleRepository) FindAll(_ context.Context) ([]models.Role, error) {
	all := make([]models.Role, 0, len(s.roles))
	for _, roleEntity := range s.roles {
		all = append(all, *roleEntity)
	}
	return all, nil
}

func (s *stubRoleRepository) FindByName(_ context.Context, roleName string) (*models.Role, error) {
	return s.roles[roleName], nil
}

func (s *stubRoleRepository) CreateRole(_ context.Context, roleEntity *models.Role) (string, error) {
	s.roles[roleEntity.Name] = roleEntity
	return roleEntity.ID, nil
}

func (s *stubRoleRepository) UpdateRole(_ context.Context, roleName string, permissions []string) error {
	s.updated[roleName] = permissions
	if roleEntity, ok := s.roles[roleName]; ok {
		roleEntity.Permissions = permissions
	}
	return nil
}

func newRoleUsecaseForTest(roleRepo *stubRoleRepository) *roleUsecase {
	return &roleUsecase{
		RoleRepository: roleRepo,
		Engine:         authz.NewEngine(authz.NewDefaultRegistry()),
		Log:            zap.NewNop(),
	}
}

func TestSeedDefaultRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesAllRolesOnce", func(t *testing.T) {
		roleRepo := newStubRoleRepository()

		SeedDefaultRoles(ctx, roleRepo, zap.NewNop())

		assert.Len(t, roleRepo.roles, 3)
		assert.NotEmpty(t, roleRepo.roles[constvars.RoleDoctor].Permissions)
		assert.NotEmpty(t, roleRepo.roles[constvars.RolePatient].Permissions)
		assert.Empty(t, roleRepo.roles[constvars.RoleAdmin].Permissions)
	})

	t.Run("ExistingRolesSurviveReseeding", func(t *testing.T) {
		roleRepo := newStubRoleRepository()
		roleRepo.roles[constvars.RoleDoctor] = &models.Role{
			ID:          "r-doc",
			Name:        constvars.RoleDoctor,
			Permissions: []string{constvars.ActionViewPatients},
		}

		SeedDefaultRoles(ctx, roleRepo, zap.NewNop())

		assert.Equal(t, []string{constvars.ActionViewPatients}, roleRepo.roles[constvars.RoleDoctor].Permissions)
	})
}

func TestBuildRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("StoredGrantsWin", func(t *testing.T) {
		roleRepo := newStubRoleRepository()
		roleRepo.roles[constvars.RoleDoctor] = &models.Role{
			ID:          "r-doc",
			Name:        constvars.RoleDoctor,
			Permissions: []string{constvars.ActionViewAllPatients},
		}

		registry, err := BuildRegistry(ctx, roleRepo, zap.NewNop())
		assert.NoError(t, err)

		engine := authz.NewEngine(registry)
		doctor := &authz.Actor{UserID: "u1", RoleName: constvars.RoleDoctor, Active: true}
		assert.True(t, engine.Authorize(doctor, constvars.ActionViewAllPatients, "").Allowed)
		assert.False(t, engine.Authorize(doctor, constvars.ActionCreatePatient, "").Allowed)
	})

	t.Run("EmptyStoreFallsBackToBuiltIns", func(t *testing.T) {
		registry, err := BuildRegistry(ctx, newStubRoleRepository(), zap.NewNop())
		assert.NoError(t, err)

		engine := authz.NewEngine(registry)
		doctor := &authz.Actor{UserID: "u1", RoleName: constvars.RoleDoctor, Active: true}
		assert.True(t, engine.Authorize(doctor, constvars.ActionCreatePatient, "").Allowed)
	})
}

func TestRoleUsecaseListRoles(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubRoleRepository {
		roleRepo := newStubRoleRepository()
		SeedDefaultRoles(ctx, roleRepo, zap.NewNop())
		return roleRepo
	}

	t.Run("AdminListsAll", func(t *testing.T) {
		uc := newRoleUsecaseForTest(seeded())
		all, err := uc.ListRoles(ctx, &authz.Actor{UserID: "u1", RoleName: constvars.RoleAdmin, Active: true})
		assert.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("DoctorDenied", func(t *testing.T) {
		uc := newRoleUsecaseForTest(seeded())
		_, err := uc.ListRoles(ctx, &authz.Actor{UserID: "u1", RoleName: constvars.RoleDoctor, Active: true})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestRoleUsecaseUpdateRolePermissions(t *testing.T) {
	ctx := context.Background()
	admin := &authz.Actor{UserID: "u1", RoleName: constvars.RoleAdmin, Active: true}

	seeded := func() *stubRoleRepository {
		roleRepo := newStubRoleRepository()
		SeedDefaultRoles(ctx, roleRepo, zap.NewNop())
		return roleRepo
	}

	t.Run("AdminRewritesGrantList", func(t *testing.T) {
		roleRepo := seeded()
		uc := newRoleUsecaseForTest(roleRepo)

		response, err := uc.UpdateRolePermissions(ctx, admin, constvars.RolePatient, &requests.UpdateRolePermissions{
			Permissions: []string{constvars.ActionViewSelf},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{constvars.ActionViewSelf}, response.Permissions)
		assert.Equal(t, []string{constvars.ActionViewSelf}, roleRepo.updated[constvars.RolePatient])
	})

	t.Run("DoctorDenied", func(t *testing.T) {
		roleRepo := seeded()
		uc := newRoleUsecaseForTest(roleRepo)

		_, err := uc.UpdateRolePermissions(ctx, &authz.Actor{UserID: "u2", RoleName: constvars.RoleDoctor, Active: true}, constvars.RolePatient, &requests.UpdateRolePermissions{
			Permissions: []string{constvars.ActionViewSelf},
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Empty(t, roleRepo.updated)
	})

	t.Run("AdminRoleCannotBeEdited", func(t *testing.T) {
		uc := newRoleUsecaseForTest(seeded())

		_, err := uc.UpdateRolePermissions(ctx, admin, constvars.RoleAdmin, &requests.UpdateRolePermissions{
			Permissions: []string{constvars.ActionViewSelf},
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("UnknownRoleIsNotFound", func(t *testing.T) {
		uc := newRoleUsecaseForTest(seeded())

		_, err := uc.UpdateRolePermissions(ctx, admin, "nurse", &requests.UpdateRolePermissions{
			Permissions: []string{constvars.ActionViewSelf},
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
