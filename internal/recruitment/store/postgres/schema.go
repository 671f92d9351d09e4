package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the recruitment_25 table. Registrations are inserted by the
// public signup form; this service reads rows and advances rounds. The
// check constraint keeps a second-slot round from existing without a
// second domain.
const Schema = `
CREATE TABLE IF NOT EXISTS recruitment_25 (
	id                  BIGSERIAL PRIMARY KEY,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	name                TEXT NOT NULL,
	registration_number TEXT NOT NULL UNIQUE,
	phone_number        TEXT,
	srm_mail            TEXT,
	github_link         TEXT,
	linkedin_link       TEXT,
	domain1             TEXT NOT NULL,
	domain2             TEXT,
	domain1_round       INTEGER NOT NULL DEFAULT 1,
	domain2_round       INTEGER,
	round               INTEGER DEFAULT 1,
	modified_at         TIMESTAMPTZ,
	modified_by1        TEXT,
	modified_by2        TEXT,
	CONSTRAINT recruitment_25_slot2_round_requires_domain
		CHECK (domain2 IS NOT NULL OR domain2_round IS NULL)
);

CREATE INDEX IF NOT EXISTS idx_recruitment_25_domain1 ON recruitment_25 (lower(domain1));
CREATE INDEX IF NOT EXISTS idx_recruitment_25_domain2 ON recruitment_25 (lower(domain2));
`

// EnsureSchema creates the participant table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure recruitment schema: %w", err)
	}
	return nil
}
