package requests

import "time"

type CreateAppointment struct {
	PatientID       string    `json:"patient_id" validate:"required"`
	DoctorID        string    `json:"doctor_id" validate:"required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Reason          string    `json:"reason" validate:"required"`
}

type UpdateAppointment struct {
	AppointmentDate *time.Time `json:"appointment_date" validate:"omitempty"`
	Reason          string     `json:"reason" validate:"omitempty"`
	Status          string     `json:"status" validate:"omitempty,oneof=pending confirmed canceled completed"`
}
