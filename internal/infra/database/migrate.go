package database

import "database/sql"

// Migrate applies the schema at startup. Statements are idempotent so the
// service can restart against an existing database.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS prospects (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			company TEXT NOT NULL,
			role TEXT NOT NULL,
			industry TEXT,
			pain_points TEXT,
			linkedin_url TEXT,
			email TEXT,
			status TEXT NOT NULL DEFAULT 'new',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prospects_user_created
			ON prospects (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS generated_emails (
			id UUID PRIMARY KEY,
			prospect_id UUID NOT NULL REFERENCES prospects (id) ON DELETE CASCADE,
			subject TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_emails_prospect_created
			ON generated_emails (prospect_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
