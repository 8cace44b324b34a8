package ports

import "context"

// LedgerRepository is the durable vote store. Both operations are
// transactional: a failed step leaves no partial effect, and the
// one-vote-per-device and unique-candidate-name invariants are enforced
// by store-level constraints, not application checks.
type LedgerRepository interface {
	// CastVote resolves or creates the candidate by name, then inserts
	// or overwrites the single vote row for the device.
	CastVote(ctx context.Context, deviceID, candidateName string) error
	// DeleteCandidate removes the candidate and all of its votes.
	// Deleting a name that does not exist is a successful no-op.
	DeleteCandidate(ctx context.Context, name string) error
}

type CastVoteInput struct {
	DeviceID      string
	CandidateName string
	Platform      string
	Token         string
}

type VoteService interface {
	Cast(ctx context.Context, input CastVoteInput) error
}

type CandidateService interface {
	Remove(ctx context.Context, name string) error
}
