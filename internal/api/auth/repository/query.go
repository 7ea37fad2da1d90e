package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			email,
			password,
			full_name,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:email,
			:password,
			:full_name,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			password,
			full_name,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			email,
			password,
			full_name,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			email,
			password,
			full_name,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			email = :email,
			full_name = :full_name,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserPassword = `
		UPDATE users
		SET
			password = :password,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`
)
