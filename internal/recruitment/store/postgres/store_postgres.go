// Package postgres persists participant records in the recruitment_25 table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"recruitdesk/internal/recruitment/classifier"
	"recruitdesk/internal/recruitment/models"
)

// PostgresStore is the PostgreSQL-backed participant store.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed participant store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const participantColumns = `
	id, created_at, name, registration_number,
	COALESCE(phone_number, ''), COALESCE(srm_mail, ''),
	COALESCE(github_link, ''), COALESCE(linkedin_link, ''),
	domain1, domain2, domain1_round, domain2_round,
	COALESCE(round, 1), modified_at,
	COALESCE(modified_by1, ''), COALESCE(modified_by2, '')`

func (s *PostgresStore) ListByRegistrationNumbers(ctx context.Context, regNums []string) ([]models.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM recruitment_25
		WHERE registration_number = ANY($1)
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(regNums))
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (s *PostgresStore) ListByRegistrationNumbersInDomain(ctx context.Context, regNums []string, domain string) ([]models.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM recruitment_25
		WHERE registration_number = ANY($1)
		  AND (domain1 ILIKE $2 OR domain2 ILIKE $2)
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(regNums), domainPattern(domain))
	if err != nil {
		return nil, fmt.Errorf("query participants in domain: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (s *PostgresStore) ListByDomain(ctx context.Context, domain string) ([]models.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM recruitment_25
		WHERE domain1 ILIKE $1 OR domain2 ILIKE $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, domainPattern(domain))
	if err != nil {
		return nil, fmt.Errorf("query domain participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

// SetSlotRound advances one slot's round and stamps attribution for every
// listed record. A second-slot update only touches rows that actually carry
// a second domain, so domain2_round stays NULL alongside a NULL domain2.
func (s *PostgresStore) SetSlotRound(ctx context.Context, regNums []string, slot classifier.Slot, round int, modifiedAt time.Time, modifiedBy string) error {
	var query string
	switch slot {
	case classifier.Slot1:
		query = `
			UPDATE recruitment_25
			SET domain1_round = $1, modified_at = $2, modified_by1 = $3
			WHERE registration_number = ANY($4)
		`
	case classifier.Slot2:
		query = `
			UPDATE recruitment_25
			SET domain2_round = $1, modified_at = $2, modified_by2 = $3
			WHERE registration_number = ANY($4) AND domain2 IS NOT NULL
		`
	default:
		return fmt.Errorf("unknown slot %d", slot)
	}

	if _, err := s.db.ExecContext(ctx, query, round, modifiedAt, modifiedBy, pq.Array(regNums)); err != nil {
		return fmt.Errorf("update slot round: %w", err)
	}
	return nil
}

// SetLegacyRound writes the single-round counter, optionally scoped to rows
// carrying the given domain in either slot.
func (s *PostgresStore) SetLegacyRound(ctx context.Context, regNums []string, domain string, round int) error {
	if domain == "" {
		query := `
			UPDATE recruitment_25
			SET round = $1
			WHERE registration_number = ANY($2)
		`
		if _, err := s.db.ExecContext(ctx, query, round, pq.Array(regNums)); err != nil {
			return fmt.Errorf("update round: %w", err)
		}
		return nil
	}

	query := `
		UPDATE recruitment_25
		SET round = $1
		WHERE registration_number = ANY($2)
		  AND (domain1 ILIKE $3 OR domain2 ILIKE $3)
	`
	if _, err := s.db.ExecContext(ctx, query, round, pq.Array(regNums), domainPattern(domain)); err != nil {
		return fmt.Errorf("update scoped round: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountByDomain(ctx context.Context, domain string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM recruitment_25
		WHERE domain1 ILIKE $1 OR domain2 ILIKE $1
	`
	var n int
	if err := s.db.QueryRowContext(ctx, query, domainPattern(domain)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count domain participants: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recruitment_25`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Health(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func domainPattern(domain string) string {
	return "%" + domain + "%"
}

func scanParticipants(rows *sql.Rows) ([]models.Participant, error) {
	var out []models.Participant

	for rows.Next() {
		var (
			p            models.Participant
			domain2      sql.NullString
			domain2Round sql.NullInt64
			modifiedAt   sql.NullTime
		)
		err := rows.Scan(
			&p.ID,
			&p.CreatedAt,
			&p.Name,
			&p.RegistrationNumber,
			&p.Phone,
			&p.Email,
			&p.GithubLink,
			&p.LinkedinLink,
			&p.Domain1,
			&domain2,
			&p.Domain1Round,
			&domain2Round,
			&p.Round,
			&modifiedAt,
			&p.ModifiedBy1,
			&p.ModifiedBy2,
		)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}

		if domain2.Valid {
			p.Domain2 = &domain2.String
		}
		if domain2Round.Valid {
			r := int(domain2Round.Int64)
			p.Domain2Round = &r
		}
		if modifiedAt.Valid {
			p.ModifiedAt = &modifiedAt.Time
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return out, nil
}
