package requests

import "time"

type CreateMedicalRecord struct {
	PatientID           string    `json:"patient_id" validate:"required"`
	DoctorID            string    `json:"doctor_id" validate:"required"`
	Diagnosis           string    `json:"diagnosis" validate:"required"`
	Treatment           string    `json:"treatment" validate:"required"`
	PrescribedMedicines string    `json:"prescribed_medicines" validate:"omitempty"`
	VisitDate           time.Time `json:"visit_date" validate:"required"`
	Notes               string    `json:"notes" validate:"omitempty"`
}

type UpdateMedicalRecord struct {
	Diagnosis           string `json:"diagnosis" validate:"omitempty"`
	Treatment           string `json:"treatment" validate:"omitempty"`
	PrescribedMedicines string `json:"prescribed_medicines" validate:"omitempty"`
	Notes               string `json:"notes" validate:"omitempty"`
}

type AttachMedicalRecordFile struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Data        []byte `json:"data" validate:"required"`
}
