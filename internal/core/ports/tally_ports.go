package ports

import (
	"context"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
)

type TallyRepository interface {
	// CandidateCounts returns the vote count per candidate with at
	// least one vote, in no guaranteed order.
	CandidateCounts(ctx context.Context) ([]domain.CandidateCount, error)
}

type TallyService interface {
	Percentages(ctx context.Context) ([]domain.CandidateShare, error)
}
