package models

import "time"

type MedicalRecord struct {
	ID                  string    `bson:"_id,omitempty"`
	PatientID           string    `bson:"patientId"`
	DoctorID            string    `bson:"doctorId"`
	Diagnosis           string    `bson:"diagnosis"`
	Treatment           string    `bson:"treatment"`
	PrescribedMedicines string    `bson:"prescribedMedicines,omitempty"`
	VisitDate           time.Time `bson:"visitDate"`
	Notes               string    `bson:"notes,omitempty"`
	AttachmentObject    string    `bson:"attachmentObject,omitempty"`
	TimeModel           `bson:",inline"`
}
