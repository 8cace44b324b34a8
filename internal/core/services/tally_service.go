package services

import (
	"context"
	"fmt"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type tallyService struct {
	repo ports.TallyRepository
}

func NewTallyService(repo ports.TallyRepository) ports.TallyService {
	return &tallyService{
		repo: repo,
	}
}

// Percentages returns the share of the total vote per candidate with at
// least one vote. Zero total votes yields an empty result, not an
// error. Order is unspecified.
func (s *tallyService) Percentages(ctx context.Context) ([]domain.CandidateShare, error) {
	counts, err := s.repo.CandidateCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate counts: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c.Votes
	}

	shares := make([]domain.CandidateShare, 0, len(counts))
	if total == 0 {
		return shares, nil
	}

	for _, c := range counts {
		shares = append(shares, domain.CandidateShare{
			Name:       c.Name,
			Percentage: float64(c.Votes) / float64(total) * 100,
		})
	}

	return shares, nil
}
