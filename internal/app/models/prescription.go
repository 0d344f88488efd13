package models

import "time"

type Prescription struct {
	ID           string     `bson:"_id,omitempty"`
	PatientID    string     `bson:"patientId"`
	DoctorID     string     `bson:"doctorId"`
	MedicineName string     `bson:"medicineName"`
	Dosage       string     `bson:"dosage"`
	Frequency    string     `bson:"frequency"`
	StartDate    time.Time  `bson:"startDate"`
	EndDate      *time.Time `bson:"endDate,omitempty"`
	Notes        string     `bson:"notes,omitempty"`
	TimeModel    `bson:",inline"`
}
