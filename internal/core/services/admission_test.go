package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
)

func TestAdmissionGateRequiresConfiguredKey(t *testing.T) {
	_, err := NewAdmissionGate("")
	require.Error(t, err)
}

func TestAdmissionGateAuthorize(t *testing.T) {
	gate, err := NewAdmissionGate("s3cret")
	require.NoError(t, err)

	assert.NoError(t, gate.Authorize("s3cret"))

	err = gate.Authorize("wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = gate.Authorize("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
