package requests

type CreatePatient struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Age            int    `json:"age" validate:"required,gt=0,lt=150"`
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address" validate:"omitempty"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}

type UpdatePatient struct {
	FirstName      string `json:"first_name" validate:"omitempty"`
	LastName       string `json:"last_name" validate:"omitempty"`
	Age            int    `json:"age" validate:"omitempty,gt=0,lt=150"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone          string `json:"phone" validate:"omitempty"`
	Address        string `json:"address" validate:"omitempty"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}
