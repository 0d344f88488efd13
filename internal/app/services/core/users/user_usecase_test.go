package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
)

type stubUserRepository struct {
	usersByID map[string]*models.User
}

func (s *stubUserRepository) CreateUser(_ context.Context, userModel *models.User) (string, error) {
	s.usersByID[userModel.ID] = userModel
	return userModel.ID, nil
}

func (s *stubUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, userModel := range s.usersByID {
		if userModel.Email == email {
			return userModel, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	return s.usersByID[userID], nil
}

func (s *stubUserRepository) UpdateUser(_ context.Context, userModel *models.User) error {
	s.usersByID[userModel.ID] = userModel
	return nil
}

func seededUserRepo() *stubUserRepository {
	return &stubUserRepository{usersByID: map[string]*models.User{
		"admin-1": {ID: "admin-1", Email: "admin@example.com", RoleName: constvars.RoleAdmin, Active: true},
		"user-2":  {ID: "user-2", Email: "pat@example.com", RoleName: constvars.RolePatient, Active: true, PatientID: "p2"},
	}}
}

func newUsecaseForTest(userRepo *stubUserRepository) *userUsecase {
	return &userUsecase{
		UserRepository: userRepo,
		Engine:         authz.NewEngine(authz.NewDefaultRegistry()),
		Log:            zap.NewNop(),
	}
}

func TestUserUsecaseDeactivateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("UserDeactivatesOwnAccount", func(t *testing.T) {
		userRepo := seededUserRepo()
		uc := newUsecaseForTest(userRepo)

		actor := &authz.Actor{UserID: "user-2", RoleName: constvars.RolePatient, Active: true, PatientID: "p2"}
		err := uc.DeactivateUser(ctx, actor, "user-2")
		assert.NoError(t, err)
		assert.False(t, userRepo.usersByID["user-2"].Active)
	})

	t.Run("PatientCannotDeactivateAnotherAccount", func(t *testing.T) {
		userRepo := seededUserRepo()
		uc := newUsecaseForTest(userRepo)

		actor := &authz.Actor{UserID: "user-2", RoleName: constvars.RolePatient, Active: true, PatientID: "p2"}
		err := uc.DeactivateUser(ctx, actor, "admin-1")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.True(t, userRepo.usersByID["admin-1"].Active)
	})

	t.Run("AdminDeactivatesAnyAccount", func(t *testing.T) {
		userRepo := seededUserRepo()
		uc := newUsecaseForTest(userRepo)

		actor := &authz.Actor{UserID: "admin-1", RoleName: constvars.RoleAdmin, Active: true}
		err := uc.DeactivateUser(ctx, actor, "user-2")
		assert.NoError(t, err)
		assert.False(t, userRepo.usersByID["user-2"].Active)
	})

	t.Run("MissingAccountIsNotFound", func(t *testing.T) {
		uc := newUsecaseForTest(seededUserRepo())

		actor := &authz.Actor{UserID: "admin-1", RoleName: constvars.RoleAdmin, Active: true}
		err := uc.DeactivateUser(ctx, actor, "missing")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
