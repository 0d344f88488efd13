package requests

type UpdateRolePermissions struct {
	Permissions []string `json:"permissions" validate:"required"`
}
