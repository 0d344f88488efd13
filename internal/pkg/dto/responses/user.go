package responses

type UserProfile struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	RoleName  string `json:"role_name"`
	Active    bool   `json:"active"`
	PatientID string `json:"patient_id,omitempty"`
	DoctorID  string `json:"doctor_id,omitempty"`
}
