// Package authz holds the authorization core: the role-permission
// registry, the decision engine, and the actor resolver. Everything in
// here is deliberately free of transport concerns so that the same
// decisions apply whether a request arrives over HTTP or from a worker.
package authz

import (
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
)

// Actor is the authenticated principal a decision is made about. The
// zero value is not usable; actors are produced by the Resolver.
type Actor struct {
	UserID    string
	Email     string
	RoleName  string
	Active    bool
	PatientID string
	DoctorID  string
}

// OwnsResource reports whether the resource identified by
// resourceOwnerID belongs to the actor: their own account, or the
// patient or doctor record their account is linked to.
func (a *Actor) OwnsResource(resourceOwnerID string) bool {
	if resourceOwnerID == "" {
		return false
	}
	if resourceOwnerID == a.UserID {
		return true
	}
	switch a.RoleName {
	case constvars.RolePatient:
		return a.PatientID == resourceOwnerID
	case constvars.RoleDoctor:
		return a.DoctorID == resourceOwnerID
	}
	return false
}

// OwnsPatientRecord reports whether the actor is the patient the given
// resource belongs to. Doctors and admins never own patient records in
// this sense; their access goes through role grants instead.
func (a *Actor) OwnsPatientRecord(resourceOwnerID string) bool {
	if resourceOwnerID == "" {
		return false
	}
	return a.RoleName == constvars.RolePatient && a.PatientID == resourceOwnerID
}

func NewActorFromUser(user *models.User) *Actor {
	return &Actor{
		UserID:    user.ID,
		Email:     user.Email,
		RoleName:  user.RoleName,
		Active:    user.Active,
		PatientID: user.PatientID,
		DoctorID:  user.DoctorID,
	}
}
