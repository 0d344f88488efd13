package requests

import "time"

type CreatePrescription struct {
	PatientID    string     `json:"patient_id" validate:"required"`
	DoctorID     string     `json:"doctor_id" validate:"required"`
	MedicineName string     `json:"medicine_name" validate:"required"`
	Dosage       string     `json:"dosage" validate:"required"`
	Frequency    string     `json:"frequency" validate:"required"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date" validate:"omitempty"`
	Notes        string     `json:"notes" validate:"omitempty"`
}

type UpdatePrescription struct {
	Dosage    string     `json:"dosage" validate:"omitempty"`
	Frequency string     `json:"frequency" validate:"omitempty"`
	EndDate   *time.Time `json:"end_date" validate:"omitempty"`
	Notes     string     `json:"notes" validate:"omitempty"`
}
