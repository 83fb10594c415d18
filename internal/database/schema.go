package database

import "log"

// CreateTables creates all required tables in the database
func CreateTables() {
	createUsersTable()
	createPostsTable()
	createClassesTable()
	createEnrollmentsTable()
}

func createUsersTable() {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := DB.Exec(query); err != nil {
		log.Fatal("Failed to create users table:", err)
	}
}

func createPostsTable() {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		author_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_posts_title_lower ON posts (lower(title));
	CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC);
	`

	if _, err := DB.Exec(query); err != nil {
		log.Fatal("Failed to create posts table:", err)
	}
}

func createClassesTable() {
	query := `
	CREATE TABLE IF NOT EXISTS classes (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_by INTEGER REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_classes_name_lower ON classes (lower(name));
	`

	if _, err := DB.Exec(query); err != nil {
		log.Fatal("Failed to create classes table:", err)
	}
}

// createEnrollmentsTable creates the enrollments table. The UNIQUE(user_id,
// class_id) constraint is the backstop for the idempotent join flow.
func createEnrollmentsTable() {
	query := `
	CREATE TABLE IF NOT EXISTS enrollments (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		class_id INTEGER NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		role VARCHAR(16) NOT NULL DEFAULT 'student' CHECK (role IN ('student', 'ta', 'teacher')),
		status VARCHAR(16) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'dropped', 'completed')),
		joined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, class_id)
	);
	`

	if _, err := DB.Exec(query); err != nil {
		log.Fatal("Failed to create enrollments table:", err)
	}
}
