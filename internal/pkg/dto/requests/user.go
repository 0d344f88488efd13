package requests

type UpdateUserProfile struct {
	Email string `json:"email" validate:"omitempty,email"`
}
