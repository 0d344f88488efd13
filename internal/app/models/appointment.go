package models

import "time"

type Appointment struct {
	ID              string    `bson:"_id,omitempty"`
	PatientID       string    `bson:"patientId"`
	DoctorID        string    `bson:"doctorId"`
	AppointmentDate time.Time `bson:"appointmentDate"`
	Reason          string    `bson:"reason"`
	Status          string    `bson:"status"`
	TimeModel       `bson:",inline"`
}
