package tokenmanager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"healthrecords-service/internal/app/config"
	"healthrecords-service/internal/pkg/constvars"
)

func newTestManager(expMinutes int) *TokenManager {
	return NewTokenManager(&config.InternalConfig{
		JWT: config.JWT{
			Secret:           "unit-test-secret",
			Issuer:           "healthrecords-service",
			ExpTimeInMinutes: expMinutes,
		},
	})
}

func TestTokenManagerIssueAndDecode(t *testing.T) {
	manager := newTestManager(60)

	t.Run("RoundTripPreservesSubjectAndRole", func(t *testing.T) {
		tokenString, err := manager.Issue("doc@example.com", constvars.RoleDoctor, time.Hour)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		subject, role, err := manager.Decode(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, "doc@example.com", subject)
		assert.Equal(t, constvars.RoleDoctor, role)
	})

	t.Run("EmptySubjectRejected", func(t *testing.T) {
		_, err := manager.Issue("", constvars.RoleDoctor, time.Hour)
		assert.Error(t, err)
	})

	t.Run("ZeroTTLRejected", func(t *testing.T) {
		_, err := manager.Issue("doc@example.com", constvars.RoleDoctor, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("NegativeTTLRejected", func(t *testing.T) {
		_, err := manager.Issue("doc@example.com", constvars.RoleDoctor, -time.Minute)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("ExpiredTokenMapsToErrTokenInvalid", func(t *testing.T) {
		tokenString, err := manager.Issue("doc@example.com", constvars.RoleDoctor, time.Nanosecond)
		assert.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		_, _, err = manager.Decode(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("GarbageTokenMapsToErrTokenInvalid", func(t *testing.T) {
		_, _, err := manager.Decode("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("TokenSignedWithOtherSecretRejected", func(t *testing.T) {
		other := NewTokenManager(&config.InternalConfig{
			JWT: config.JWT{Secret: "other-secret", Issuer: "healthrecords-service", ExpTimeInMinutes: 60},
		})
		tokenString, err := other.Issue("doc@example.com", constvars.RoleDoctor, time.Hour)
		assert.NoError(t, err)

		_, _, err = manager.Decode(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
