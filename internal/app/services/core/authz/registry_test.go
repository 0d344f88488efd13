package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthrecords-service/internal/pkg/constvars"
)

func TestRegistryIsPermitted(t *testing.T) {
	registry := NewDefaultRegistry()

	t.Run("DoctorCanCreatePatient", func(t *testing.T) {
		assert.True(t, registry.IsPermitted(constvars.RoleDoctor, constvars.ActionCreatePatient))
	})

	t.Run("PatientCannotCreatePatient", func(t *testing.T) {
		assert.False(t, registry.IsPermitted(constvars.RolePatient, constvars.ActionCreatePatient))
	})

	t.Run("AdminBypassesTableForAnyAction", func(t *testing.T) {
		assert.True(t, registry.IsPermitted(constvars.RoleAdmin, constvars.ActionDeletePatient))
		assert.True(t, registry.IsPermitted(constvars.RoleAdmin, "some_action_nobody_registered"))
	})

	t.Run("DoctorCannotDeletePatient", func(t *testing.T) {
		assert.False(t, registry.IsPermitted(constvars.RoleDoctor, constvars.ActionDeletePatient))
	})

	t.Run("UnknownRoleIsDenied", func(t *testing.T) {
		assert.False(t, registry.IsPermitted("nurse", constvars.ActionViewPatients))
	})

	t.Run("UnknownActionIsDenied", func(t *testing.T) {
		assert.False(t, registry.IsPermitted(constvars.RoleDoctor, "launch_rockets"))
	})

	t.Run("MatchingIsCaseSensitive", func(t *testing.T) {
		assert.False(t, registry.IsPermitted("Doctor", constvars.ActionViewPatients))
		assert.False(t, registry.IsPermitted(constvars.RoleDoctor, "View_Patients"))
	})

	t.Run("EmptyRoleAndActionAreDenied", func(t *testing.T) {
		assert.False(t, registry.IsPermitted("", ""))
		assert.False(t, registry.IsPermitted(constvars.RolePatient, ""))
	})
}

func TestRegistryIsSelfScoped(t *testing.T) {
	registry := NewDefaultRegistry()

	assert.True(t, registry.IsSelfScoped(constvars.ActionViewSelf))
	assert.True(t, registry.IsSelfScoped(constvars.ActionViewMedicalRecords))
	assert.True(t, registry.IsSelfScoped(constvars.ActionEditDoctor))
	assert.True(t, registry.IsSelfScoped(constvars.ActionDeleteUser))
	assert.False(t, registry.IsSelfScoped(constvars.ActionDeletePatient))
	assert.False(t, registry.IsSelfScoped(constvars.ActionCreateMedicalRecord))
}

func TestRegistryPermissionsForRole(t *testing.T) {
	registry := NewDefaultRegistry()

	t.Run("DoctorGrantList", func(t *testing.T) {
		actions := registry.PermissionsForRole(constvars.RoleDoctor)
		assert.Len(t, actions, 14)
		assert.Contains(t, actions, constvars.ActionCreatePrescription)
	})

	t.Run("AdminHasNoGrantList", func(t *testing.T) {
		assert.Nil(t, registry.PermissionsForRole(constvars.RoleAdmin))
	})
}

func TestRegistryCustomTable(t *testing.T) {
	registry := NewRegistry(map[string][]string{
		"auditor": {constvars.ActionViewAllPatients},
	}, nil)

	assert.True(t, registry.IsPermitted("auditor", constvars.ActionViewAllPatients))
	assert.False(t, registry.IsPermitted("auditor", constvars.ActionEditPatient))
	assert.False(t, registry.IsPermitted(constvars.RoleDoctor, constvars.ActionViewPatients))
	assert.True(t, registry.IsPermitted(constvars.RoleAdmin, constvars.ActionEditPatient))
}
