package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
)

type stubDecoder struct {
	subject string
	role    string
	err     error
}

func (d *stubDecoder) Decode(_ string) (string, string, error) {
	return d.subject, d.role, d.err
}

type stubActorStore struct {
	users map[string]*models.User
	err   error
}

func (s *stubActorStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[email], nil
}

func TestResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolvesActiveUser", func(t *testing.T) {
		store := &stubActorStore{users: map[string]*models.User{
			"doc@example.com": {
				ID:        "user-1",
				Email:     "doc@example.com",
				RoleName:  constvars.RoleDoctor,
				Active:    true,
				DoctorID:  "doctor-1",
				PatientID: "",
			},
		}}
		resolver := NewResolver(&stubDecoder{subject: "doc@example.com", role: constvars.RoleDoctor}, store)

		actor, err := resolver.Resolve(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", actor.UserID)
		assert.Equal(t, constvars.RoleDoctor, actor.RoleName)
		assert.Equal(t, "doctor-1", actor.DoctorID)
		assert.True(t, actor.Active)
	})

	t.Run("BadTokenMapsToErrTokenInvalid", func(t *testing.T) {
		resolver := NewResolver(&stubDecoder{err: errors.New("signature mismatch")}, &stubActorStore{})

		actor, err := resolver.Resolve(ctx, "garbage")
		assert.Nil(t, actor)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("MissingUserMapsToErrActorNotFound", func(t *testing.T) {
		resolver := NewResolver(&stubDecoder{subject: "ghost@example.com"}, &stubActorStore{users: map[string]*models.User{}})

		actor, err := resolver.Resolve(ctx, "token")
		assert.Nil(t, actor)
		assert.ErrorIs(t, err, ErrActorNotFound)
	})

	t.Run("DeactivatedUserMapsToErrActorInactive", func(t *testing.T) {
		store := &stubActorStore{users: map[string]*models.User{
			"gone@example.com": {ID: "user-2", Email: "gone@example.com", RoleName: constvars.RolePatient, Active: false},
		}}
		resolver := NewResolver(&stubDecoder{subject: "gone@example.com"}, store)

		actor, err := resolver.Resolve(ctx, "token")
		assert.Nil(t, actor)
		assert.ErrorIs(t, err, ErrActorInactive)
	})

	t.Run("StoreErrorIsPassedThrough", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		resolver := NewResolver(&stubDecoder{subject: "doc@example.com"}, &stubActorStore{err: storeErr})

		actor, err := resolver.Resolve(ctx, "token")
		assert.Nil(t, actor)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("StoredRoleOverridesTokenRoleClaim", func(t *testing.T) {
		store := &stubActorStore{users: map[string]*models.User{
			"demoted@example.com": {ID: "user-3", Email: "demoted@example.com", RoleName: constvars.RolePatient, Active: true},
		}}
		resolver := NewResolver(&stubDecoder{subject: "demoted@example.com", role: constvars.RoleAdmin}, store)

		actor, err := resolver.Resolve(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, actor.RoleName)
	})
}
