package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"healthrecords-service/internal/app/config"
	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/utils"
)

type stubUserRepository struct {
	usersByEmail map[string]*models.User
	created      []*models.User
}

func (s *stubUserRepository) CreateUser(_ context.Context, userModel *models.User) (string, error) {
	s.created = append(s.created, userModel)
	s.usersByEmail[userModel.Email] = userModel
	return userModel.ID, nil
}

func (s *stubUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return s.usersByEmail[email], nil
}

func (s *stubUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	for _, userModel := range s.usersByEmail {
		if userModel.ID == userID {
			return userModel, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepository) UpdateUser(_ context.Context, _ *models.User) error {
	return nil
}

type stubRedisRepository struct {
	store map[string]string
}

func (s *stubRedisRepository) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	s.store[key] = "set"
	return nil
}

func (s *stubRedisRepository) Get(_ context.Context, key string) (string, error) {
	return s.store[key], nil
}

func (s *stubRedisRepository) Delete(_ context.Context, key string) error {
	delete(s.store, key)
	return nil
}

type stubTokenManager struct {
	issueErr error
}

func (s *stubTokenManager) Issue(subject, role string, _ time.Duration) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return "token-for-" + subject + "-" + role, nil
}

func (s *stubTokenManager) Decode(_ string) (string, string, error) {
	return "", "", errors.New("not used")
}

func newTestUsecase(repo *stubUserRepository, redisRepo *stubRedisRepository, tokens contracts.TokenManager) contracts.AuthUsecase {
	return NewAuthUsecase(repo, redisRepo, tokens, &config.InternalConfig{
		App: config.App{SessionExpiryTimeInHours: 12},
		JWT: config.JWT{Secret: "test", ExpTimeInMinutes: 60},
	}, zap.NewNop())
}

func TestAuthUsecaseRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesActiveUserWithHashedPassword", func(t *testing.T) {
		repo := &stubUserRepository{usersByEmail: map[string]*models.User{}}
		uc := newTestUsecase(repo, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		response, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Email:           "doc@example.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "Str0ng!pass",
			RoleName:        constvars.RoleDoctor,
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, response.RoleName)
		assert.Len(t, repo.created, 1)
		assert.True(t, repo.created[0].Active)
		assert.NotEqual(t, "Str0ng!pass", repo.created[0].Password)
		assert.True(t, utils.CheckPasswordHash("Str0ng!pass", repo.created[0].Password))
	})

	t.Run("UnknownRoleRejected", func(t *testing.T) {
		repo := &stubUserRepository{usersByEmail: map[string]*models.User{}}
		uc := newTestUsecase(repo, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		_, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Email:           "nurse@example.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "Str0ng!pass",
			RoleName:        "nurse",
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("MismatchedPasswordsRejected", func(t *testing.T) {
		repo := &stubUserRepository{usersByEmail: map[string]*models.User{}}
		uc := newTestUsecase(repo, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		_, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Email:           "doc@example.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "Different!1",
			RoleName:        constvars.RoleDoctor,
		})
		assert.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		repo := &stubUserRepository{usersByEmail: map[string]*models.User{
			"doc@example.com": {ID: "user-1", Email: "doc@example.com"},
		}}
		uc := newTestUsecase(repo, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		_, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Email:           "doc@example.com",
			Password:        "Str0ng!pass",
			ConfirmPassword: "Str0ng!pass",
			RoleName:        constvars.RoleDoctor,
		})
		assert.Error(t, err)
	})
}

func TestAuthUsecaseLoginUser(t *testing.T) {
	ctx := context.Background()

	hashed, err := utils.HashPassword("Str0ng!pass", bcrypt.MinCost)
	assert.NoError(t, err)

	activeUser := func() map[string]*models.User {
		return map[string]*models.User{
			"doc@example.com": {
				ID:       "user-1",
				Email:    "doc@example.com",
				Password: hashed,
				RoleName: constvars.RoleDoctor,
				Active:   true,
			},
		}
	}

	t.Run("IssuesTokenAndSession", func(t *testing.T) {
		redisRepo := &stubRedisRepository{store: map[string]string{}}
		uc := newTestUsecase(&stubUserRepository{usersByEmail: activeUser()}, redisRepo, &stubTokenManager{})

		response, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "doc@example.com", Password: "Str0ng!pass"})
		assert.NoError(t, err)
		assert.Equal(t, "token-for-doc@example.com-doctor", response.AccessToken)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.NotEmpty(t, response.SessionID)
		assert.Len(t, redisRepo.store, 1)
	})

	t.Run("WrongPasswordRejected", func(t *testing.T) {
		uc := newTestUsecase(&stubUserRepository{usersByEmail: activeUser()}, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "doc@example.com", Password: "wrong"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("UnknownEmailRejected", func(t *testing.T) {
		uc := newTestUsecase(&stubUserRepository{usersByEmail: map[string]*models.User{}}, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "ghost@example.com", Password: "Str0ng!pass"})
		assert.Error(t, err)
	})

	t.Run("DeactivatedUserRejected", func(t *testing.T) {
		store := activeUser()
		store["doc@example.com"].Active = false
		uc := newTestUsecase(&stubUserRepository{usersByEmail: store}, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "doc@example.com", Password: "Str0ng!pass"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestAuthUsecaseLogoutUser(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesSession", func(t *testing.T) {
		redisRepo := &stubRedisRepository{store: map[string]string{"session:abc": "set"}}
		uc := newTestUsecase(&stubUserRepository{usersByEmail: map[string]*models.User{}}, redisRepo, &stubTokenManager{})

		err := uc.LogoutUser(ctx, "abc")
		assert.NoError(t, err)
		assert.Empty(t, redisRepo.store)
	})

	t.Run("UnknownSessionRejected", func(t *testing.T) {
		uc := newTestUsecase(&stubUserRepository{usersByEmail: map[string]*models.User{}}, &stubRedisRepository{store: map[string]string{}}, &stubTokenManager{})

		err := uc.LogoutUser(ctx, "missing")
		assert.Error(t, err)
	})
}
