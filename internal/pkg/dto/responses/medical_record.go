package responses

import "time"

type MedicalRecord struct {
	ID                  string    `json:"id"`
	PatientID           string    `json:"patient_id"`
	DoctorID            string    `json:"doctor_id"`
	Diagnosis           string    `json:"diagnosis"`
	Treatment           string    `json:"treatment"`
	PrescribedMedicines string    `json:"prescribed_medicines,omitempty"`
	VisitDate           time.Time `json:"visit_date"`
	Notes               string    `json:"notes,omitempty"`
	AttachmentObject    string    `json:"attachment_object,omitempty"`
}

type MedicalRecordAttachment struct {
	RecordID     string `json:"record_id"`
	ObjectName   string `json:"object_name"`
	PresignedURL string `json:"presigned_url"`
}
