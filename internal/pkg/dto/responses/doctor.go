package responses

type Doctor struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id,omitempty"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	AvailableSlots []string `json:"available_slots,omitempty"`
}
