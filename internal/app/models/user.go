package models

import (
	"healthrecords-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	RoleName  string `bson:"roleName"`
	Active    bool   `bson:"active"`
	PatientID string `bson:"patientId,omitempty"`
	DoctorID  string `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}

// IsKnownRole reports whether name belongs to the closed role set.
func IsKnownRole(name string) bool {
	switch name {
	case constvars.RoleAdmin, constvars.RoleDoctor, constvars.RolePatient:
		return true
	}
	return false
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"email":     u.Email,
		"password":  u.Password,
		"roleName":  u.RoleName,
		"active":    u.Active,
		"patientId": u.PatientID,
		"doctorId":  u.DoctorID,
		"updatedAt": u.UpdatedAt,
	}
}
