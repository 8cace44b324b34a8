package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) ports.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// CastVote runs both steps in one transaction so the vote can never
// reference a candidate id that was not established. Uniqueness of
// candidate name and device id is enforced by the table constraints;
// the ON CONFLICT clauses make both inserts race-safe across processes.
func (r *ledgerRepository) CastVote(ctx context.Context, deviceID, candidateName string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The no-op DO UPDATE makes RETURNING yield the existing id on
	// conflict without altering the stored name.
	queryCandidate := `
		INSERT INTO candidates (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var candidateID int64
	if err := tx.QueryRowContext(ctx, queryCandidate, candidateName).Scan(&candidateID); err != nil {
		return fmt.Errorf("failed to resolve candidate: %w", err)
	}

	// Last write wins: a device's existing vote row is repointed and
	// its timestamp refreshed from the server clock.
	queryVote := `
		INSERT INTO votes (device_id, candidate_id, cast_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (device_id) DO UPDATE SET
			candidate_id = EXCLUDED.candidate_id,
			cast_at = NOW()
	`
	if _, err := tx.ExecContext(ctx, queryVote, deviceID, candidateID); err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteCandidate removes the candidate's votes and then the candidate
// row, all or nothing. An unknown name commits as a no-op.
func (r *ledgerRepository) DeleteCandidate(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var candidateID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM candidates WHERE name = $1`, name).Scan(&candidateID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up candidate: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
