package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type candidateService struct {
	ledger ports.LedgerRepository
	logger *slog.Logger
}

func NewCandidateService(ledger ports.LedgerRepository, logger *slog.Logger) ports.CandidateService {
	return &candidateService{
		ledger: ledger,
		logger: logger,
	}
}

func (s *candidateService) Remove(ctx context.Context, name string) error {
	if err := s.ledger.DeleteCandidate(ctx, name); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	s.logger.Info("candidate removed", "name", name)
	return nil
}
