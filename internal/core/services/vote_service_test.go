package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type fakeLedger struct {
	castCalls   int
	deleteCalls int
	lastDevice  string
	lastName    string
	err         error
}

func (f *fakeLedger) CastVote(_ context.Context, deviceID, candidateName string) error {
	f.castCalls++
	f.lastDevice = deviceID
	f.lastName = candidateName
	return f.err
}

func (f *fakeLedger) DeleteCandidate(_ context.Context, name string) error {
	f.deleteCalls++
	f.lastName = name
	return f.err
}

type fakeVerifier struct {
	result domain.AttestationResult
	calls  int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) domain.AttestationResult {
	f.calls++
	return f.result
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCastRecordsVoteWhenGenuine(t *testing.T) {
	ledger := &fakeLedger{}
	verifier := &fakeVerifier{result: domain.Genuine()}
	service := NewVoteService(ledger, map[string]ports.IntegrityVerifier{
		domain.PlatformAndroid: verifier,
	}, testLogger())

	err := service.Cast(context.Background(), ports.CastVoteInput{
		DeviceID:      "device-1",
		CandidateName: "Alice",
		Platform:      domain.PlatformAndroid,
		Token:         "token",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, 1, ledger.castCalls)
	assert.Equal(t, "device-1", ledger.lastDevice)
	assert.Equal(t, "Alice", ledger.lastName)
}

func TestCastUnknownPlatformNeverTouchesLedger(t *testing.T) {
	ledger := &fakeLedger{}
	service := NewVoteService(ledger, map[string]ports.IntegrityVerifier{}, testLogger())

	err := service.Cast(context.Background(), ports.CastVoteInput{
		DeviceID:      "device-1",
		CandidateName: "Alice",
		Platform:      "windows",
		Token:         "token",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
	assert.Zero(t, ledger.castCalls)
}

func TestCastRejectedTokenIsUnauthorized(t *testing.T) {
	ledger := &fakeLedger{}
	verifier := &fakeVerifier{result: domain.Rejected("unrecognized device")}
	service := NewVoteService(ledger, map[string]ports.IntegrityVerifier{
		domain.PlatformIOS: verifier,
	}, testLogger())

	err := service.Cast(context.Background(), ports.CastVoteInput{
		DeviceID:      "device-1",
		CandidateName: "Alice",
		Platform:      domain.PlatformIOS,
		Token:         "bad-token",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, ledger.castCalls)
}

func TestCastIndeterminateKeepsDistinctCause(t *testing.T) {
	ledger := &fakeLedger{}
	verifier := &fakeVerifier{result: domain.Indeterminate(domain.ErrAttestationNotImplemented)}
	service := NewVoteService(ledger, map[string]ports.IntegrityVerifier{
		domain.PlatformAndroid: verifier,
	}, testLogger())

	err := service.Cast(context.Background(), ports.CastVoteInput{
		DeviceID:      "device-1",
		CandidateName: "Alice",
		Platform:      domain.PlatformAndroid,
		Token:         "real-looking-token",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, domain.ErrAttestationNotImplemented)
	assert.Zero(t, ledger.castCalls)
}

func TestCastPropagatesLedgerFailure(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("connection reset")}
	verifier := &fakeVerifier{result: domain.Genuine()}
	service := NewVoteService(ledger, map[string]ports.IntegrityVerifier{
		domain.PlatformAndroid: verifier,
	}, testLogger())

	err := service.Cast(context.Background(), ports.CastVoteInput{
		DeviceID:      "device-1",
		CandidateName: "Alice",
		Platform:      domain.PlatformAndroid,
		Token:         "token",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
