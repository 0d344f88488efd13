package queries

const (
	GetAllRolesQuery = `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	GetRoleByNameQuery = `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles
		WHERE name = $1 AND deleted_at IS NULL
	`

	InsertRoleQuery = `
		INSERT INTO roles (id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	UpdateRoleQuery = `
		UPDATE roles
		SET permissions = $1, updated_at = NOW()
		WHERE name = $2 AND deleted_at IS NULL
	`
)
