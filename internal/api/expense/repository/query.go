package expenseRepository

const expenseColumns = `
		id,
		user_id,
		title,
		amount,
		date,
		time,
		location,
		category_id,
		notes,
		created_at,
		updated_at
`

const (
	queryCreateExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			title,
			amount,
			date,
			time,
			location,
			category_id,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:amount,
			:date,
			:time,
			:location,
			:category_id,
			:notes,
			:created_at,
			:updated_at
		)
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET
			title = :title,
			amount = :amount,
			date = :date,
			time = :time,
			location = :location,
			category_id = :category_id,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteExpense = `
		DELETE FROM expenses
		WHERE id = :id
	`

	queryGetExpenseByID = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = :id
	`

	queryListExpensesByUser = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = :user_id
		ORDER BY date DESC, time DESC
	`

	queryListExpensesByCategory = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = :user_id
		  AND category_id = :category_id
		ORDER BY date DESC, time DESC
	`

	queryListExpensesByDateRange = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = :user_id
		  AND date BETWEEN :start_date AND :end_date
		ORDER BY date DESC, time DESC
	`

	queryListExpensesByCategoryAndDateRange = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = :user_id
		  AND category_id = :category_id
		  AND date BETWEEN :start_date AND :end_date
		ORDER BY date DESC, time DESC
	`

	queryListExpensesByLocation = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = :user_id
		  AND location LIKE :location
		ORDER BY date DESC, time DESC
	`

	queryListRecentExpenses = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = :user_id
		ORDER BY date DESC, time DESC
		LIMIT :limit
	`

	querySumExpensesByUser = `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = :user_id
	`

	querySumExpensesByCategory = `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = :user_id
		  AND category_id = :category_id
	`

	querySumExpensesByDateRange = `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = :user_id
		  AND date BETWEEN :start_date AND :end_date
	`
)

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			name,
			description,
			color,
			user_id,
			created_at
		) VALUES (
			:id,
			:name,
			:description,
			:color,
			:user_id,
			:created_at
		)
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			description = :description,
			color = :color
		WHERE id = :id
		  AND user_id = :user_id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
		  AND user_id = :user_id
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			description,
			color,
			user_id,
			created_at
		FROM categories
		WHERE id = :id
	`

	queryListCategoriesForUser = `
		SELECT
			id,
			name,
			description,
			color,
			user_id,
			created_at
		FROM categories
		WHERE user_id = ''
		   OR user_id = :user_id
		ORDER BY user_id, name
	`
)
