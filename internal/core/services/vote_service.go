package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type voteService struct {
	ledger    ports.LedgerRepository
	verifiers map[string]ports.IntegrityVerifier
	logger    *slog.Logger
}

func NewVoteService(ledger ports.LedgerRepository, verifiers map[string]ports.IntegrityVerifier, logger *slog.Logger) ports.VoteService {
	return &voteService{
		ledger:    ledger,
		verifiers: verifiers,
		logger:    logger,
	}
}

// Cast verifies device attestation fully before touching the ledger.
// A rejected token is routine fraud prevention and logs at Warn; an
// indeterminate outcome is an operational failure and logs at Error.
// Both map to the same unauthorized error for the caller.
func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) error {
	verifier, ok := s.verifiers[input.Platform]
	if !ok {
		s.logger.Warn("vote with unrecognized platform", "platform", input.Platform)
		return fmt.Errorf("%w: %w: %q", domain.ErrUnauthorized, domain.ErrUnknownPlatform, input.Platform)
	}

	result := verifier.Verify(ctx, input.Token)
	switch result.Verdict {
	case domain.VerdictGenuine:
	case domain.VerdictRejected:
		s.logger.Warn("attestation rejected", "platform", input.Platform, "reason", result.Reason)
		return fmt.Errorf("%w: attestation rejected", domain.ErrUnauthorized)
	case domain.VerdictIndeterminate:
		s.logger.Error("attestation indeterminate", "platform", input.Platform, "error", result.Err)
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, result.Err)
	default:
		return fmt.Errorf("%w: unexpected attestation verdict %d", domain.ErrUnauthorized, result.Verdict)
	}

	if err := s.ledger.CastVote(ctx, input.DeviceID, input.CandidateName); err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	return nil
}
