package authz

import (
	"healthrecords-service/internal/pkg/constvars"
)

// Registry is an immutable snapshot of the role-permission table. It is
// built once at startup and shared by reference; lookups never mutate
// it, so no locking is needed.
type Registry struct {
	rolePermissions map[string]map[string]struct{}
	selfScoped      map[string]struct{}
}

// DefaultRolePermissions is the seed grant table. Admin is absent on
// purpose: it bypasses the table entirely in IsPermitted.
func DefaultRolePermissions() map[string][]string {
	return map[string][]string{
		constvars.RoleDoctor: {
			constvars.ActionViewPatients,
			constvars.ActionViewAllPatients,
			constvars.ActionEditPatient,
			constvars.ActionCreatePatient,
			constvars.ActionViewAppointments,
			constvars.ActionCreateAppointment,
			constvars.ActionEditAppointment,
			constvars.ActionViewMedicalRecords,
			constvars.ActionCreateMedicalRecord,
			constvars.ActionEditMedicalRecord,
			constvars.ActionViewPrescriptions,
			constvars.ActionCreatePrescription,
			constvars.ActionEditPrescription,
			constvars.ActionViewMedicines,
		},
		constvars.RolePatient: {
			constvars.ActionViewSelf,
			constvars.ActionEditSelf,
			constvars.ActionViewAppointments,
			constvars.ActionCreateAppointment,
			constvars.ActionViewMedicalRecords,
			constvars.ActionViewPrescriptions,
		},
	}
}

// DefaultSelfScopedActions lists the actions for which a denied role
// grant may still be allowed through ownership of the resource.
func DefaultSelfScopedActions() []string {
	return []string{
		constvars.ActionViewSelf,
		constvars.ActionEditSelf,
		constvars.ActionViewPatients,
		constvars.ActionEditPatient,
		constvars.ActionEditDoctor,
		constvars.ActionViewMedicalRecords,
		constvars.ActionViewPrescriptions,
		constvars.ActionViewAppointments,
		constvars.ActionDeleteUser,
	}
}

func NewRegistry(rolePermissions map[string][]string, selfScoped []string) *Registry {
	registry := &Registry{
		rolePermissions: make(map[string]map[string]struct{}, len(rolePermissions)),
		selfScoped:      make(map[string]struct{}, len(selfScoped)),
	}
	for roleName, actions := range rolePermissions {
		actionSet := make(map[string]struct{}, len(actions))
		for _, action := range actions {
			actionSet[action] = struct{}{}
		}
		registry.rolePermissions[roleName] = actionSet
	}
	for _, action := range selfScoped {
		registry.selfScoped[action] = struct{}{}
	}
	return registry
}

func NewDefaultRegistry() *Registry {
	return NewRegistry(DefaultRolePermissions(), DefaultSelfScopedActions())
}

// IsPermitted reports whether the role is granted the action. Admin is
// always permitted. Matching is exact and case sensitive; an unknown
// role or unknown action resolves to false, never to an error.
func (r *Registry) IsPermitted(roleName, action string) bool {
	if roleName == constvars.RoleAdmin {
		return true
	}
	actionSet, ok := r.rolePermissions[roleName]
	if !ok {
		return false
	}
	_, granted := actionSet[action]
	return granted
}

// IsSelfScoped reports whether the action may be satisfied through
// ownership when the role grant alone does not cover it.
func (r *Registry) IsSelfScoped(action string) bool {
	_, ok := r.selfScoped[action]
	return ok
}

// PermissionsForRole returns a copy of the role's grant list, mainly
// for the roles listing endpoint. Admin returns nil: its access is not
// expressed as a list.
func (r *Registry) PermissionsForRole(roleName string) []string {
	actionSet, ok := r.rolePermissions[roleName]
	if !ok {
		return nil
	}
	actions := make([]string, 0, len(actionSet))
	for action := range actionSet {
		actions = append(actions, action)
	}
	return actions
}
