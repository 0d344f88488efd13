package constvars

const (
	RegisterSuccessMessage   = "Successfully registered"
	LoginSuccessMessage      = "Successfully logged in"
	LogoutSuccessMessage     = "Successfully logged out"
	GetProfileSuccessMessage = "Successfully fetched profile"
	UpdateUserSuccessMessage = "Successfully updated user"
	DeleteUserSuccessMessage = "Successfully deactivated user"

	CreateSuccessMessage = "Successfully created"
	GetSuccessMessage    = "Successfully fetched"
	UpdateSuccessMessage = "Successfully updated"
	DeleteSuccessMessage = "Successfully deleted"
)
