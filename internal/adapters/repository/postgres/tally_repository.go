package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type tallyRepository struct {
	db *sql.DB
}

func NewTallyRepository(db *sql.DB) ports.TallyRepository {
	return &tallyRepository{
		db: db,
	}
}

// CandidateCounts joins through votes, so candidates with zero votes
// are naturally excluded. No ORDER BY: result order is unspecified.
func (r *tallyRepository) CandidateCounts(ctx context.Context) ([]domain.CandidateCount, error) {
	query := `
		SELECT c.name, COUNT(v.device_id)
		FROM candidates c
		JOIN votes v ON v.candidate_id = c.id
		GROUP BY c.id, c.name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.CandidateCount
	for rows.Next() {
		var c domain.CandidateCount
		if err := rows.Scan(&c.Name, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan candidate count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidate counts: %w", err)
	}

	return counts, nil
}
