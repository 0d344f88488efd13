package queries

const (
	CreateUserQuery = `
		INSERT INTO users (id, email, password, role_name, active, patient_id, doctor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`

	FindUserByEmailQuery = `
		SELECT id, email, password, role_name, active, patient_id, doctor_id, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	FindUserByIDQuery = `
		SELECT id, email, password, role_name, active, patient_id, doctor_id, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	UpdateUserQuery = `
		UPDATE users
		SET email = $1, password = $2, role_name = $3, active = $4,
			patient_id = $5, doctor_id = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`
)
