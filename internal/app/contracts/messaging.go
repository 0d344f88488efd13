package contracts

import "context"

type AppointmentEvent struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}

type NotificationPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error
}
