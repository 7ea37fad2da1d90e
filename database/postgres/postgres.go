package postgres

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func FormatDSN() string {
	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		sslMode,
	)
}

func New() (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	return db, nil
}

func migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	return seedDefaultCategories(db)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         VARCHAR(26) PRIMARY KEY,
	username   VARCHAR(30) NOT NULL UNIQUE,
	email      VARCHAR(255) NOT NULL UNIQUE,
	password   VARCHAR(72) NOT NULL,
	full_name  VARCHAR(50) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id          VARCHAR(26) PRIMARY KEY,
	name        VARCHAR(50) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	color       VARCHAR(7) NOT NULL DEFAULT '',
	user_id     VARCHAR(26) NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
	id          VARCHAR(26) PRIMARY KEY,
	user_id     VARCHAR(26) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	title       VARCHAR(255) NOT NULL,
	amount      DOUBLE PRECISION NOT NULL,
	date        VARCHAR(10) NOT NULL,
	time        VARCHAR(5) NOT NULL,
	location    VARCHAR(255) NOT NULL DEFAULT '',
	category_id VARCHAR(26) NOT NULL DEFAULT '',
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses (user_id, date);
CREATE INDEX IF NOT EXISTS idx_expenses_user_category ON expenses (user_id, category_id);
CREATE INDEX IF NOT EXISTS idx_categories_user ON categories (user_id);
`

// Default categories are shared by all users. They carry an empty
// user_id and cannot be edited or deleted.
var defaultCategories = []struct {
	id, name, description, color string
}{
	{"01ARZ3NDEKTSV4RRFFQ69G5C01", "Food & Dining", "Restaurants, groceries, and food delivery", "#4CAF50"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C02", "Transportation", "Fuel, public transit, and vehicle maintenance", "#2196F3"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C03", "Housing", "Rent, mortgage, and home maintenance", "#FFC107"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C04", "Entertainment", "Movies, games, and leisure activities", "#9C27B0"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C05", "Healthcare", "Medical expenses and insurance", "#F44336"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C06", "Education", "Tuition, books, and courses", "#3F51B5"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C07", "Shopping", "Clothing, electronics, and general purchases", "#FF5722"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C08", "Utilities", "Electricity, water, and internet bills", "#607D8B"},
	{"01ARZ3NDEKTSV4RRFFQ69G5C09", "Other", "Everything else", "#795548"},
}

func seedDefaultCategories(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM categories WHERE user_id = ''`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, c := range defaultCategories {
		_, err := tx.Exec(
			`INSERT INTO categories (id, name, description, color, user_id, created_at) VALUES ($1, $2, $3, $4, '', $5)`,
			c.id, c.name, c.description, c.color, now,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
