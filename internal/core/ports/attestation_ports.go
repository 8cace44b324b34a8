package ports

import (
	"context"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
)

// IntegrityVerifier answers whether a token proves the request came
// from a genuine, unmodified app install. Implementations are pure
// functions of the token plus operator credentials; they hold no ledger
// state and must be called before any ledger transaction is opened.
type IntegrityVerifier interface {
	Verify(ctx context.Context, token string) domain.AttestationResult
}
