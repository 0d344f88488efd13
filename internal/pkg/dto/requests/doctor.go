package requests

type CreateDoctor struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Specialization string   `json:"specialization" validate:"required"`
	Experience     int      `json:"experience" validate:"gte=0"`
	AvailableSlots []string `json:"available_slots" validate:"omitempty,dive,required"`
}

type UpdateDoctor struct {
	Name           string   `json:"name" validate:"omitempty"`
	Specialization string   `json:"specialization" validate:"omitempty"`
	Experience     int      `json:"experience" validate:"omitempty,gte=0"`
	AvailableSlots []string `json:"available_slots" validate:"omitempty,dive,required"`
}
