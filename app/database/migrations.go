package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'User',
			department_id UUID,
			subjects TEXT[] NOT NULL DEFAULT '{}',
			hourly_rate NUMERIC(10,2),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			subjects TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY,
			full_name TEXT NOT NULL,
			contact_email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			postal_address TEXT NOT NULL DEFAULT '',
			date_of_birth TEXT NOT NULL DEFAULT '',
			placements JSONB NOT NULL DEFAULT '[]',
			academic_qualifications JSONB NOT NULL DEFAULT '[]',
			professional_qualifications JSONB NOT NULL DEFAULT '[]',
			other_qualifications TEXT NOT NULL DEFAULT '',
			work_experience JSONB NOT NULL DEFAULT '{}',
			teaching_experience JSONB NOT NULL DEFAULT '[]',
			referees JSONB NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'pending',
			feedback TEXT NOT NULL DEFAULT '',
			interview_details JSONB,
			approved_details JSONB,
			marks_details JSONB,
			authenticated_submission BOOLEAN NOT NULL DEFAULT false,
			applicant_user_id UUID,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_status ON applications (status)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_contact_email ON applications (contact_email)`,
		`CREATE TABLE IF NOT EXISTS timetables (
			user_id UUID PRIMARY KEY,
			days JSONB NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS work_logs (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			date TEXT NOT NULL,
			subject TEXT NOT NULL,
			hours NUMERIC(6,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_work_logs_user_id ON work_logs (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := addHourlyRateColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// addHourlyRateColumn backfills databases created before hourly rates existed.
func addHourlyRateColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'users'
				AND column_name = 'hourly_rate'
			) THEN
				ALTER TABLE users ADD COLUMN hourly_rate NUMERIC(10,2);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for hourly_rate column: %v", err)
		return err
	}
	return nil
}
