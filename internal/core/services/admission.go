package services

import (
	"crypto/hmac"
	"errors"
	"fmt"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type admissionGate struct {
	adminKey []byte
}

// NewAdmissionGate guards administrative mutation behind a shared
// secret. An empty configured key is a startup fault, distinct from a
// caller providing the wrong key at request time.
func NewAdmissionGate(adminKey string) (ports.AdminGate, error) {
	if adminKey == "" {
		return nil, errors.New("admin key is not configured")
	}
	return &admissionGate{adminKey: []byte(adminKey)}, nil
}

func (g *admissionGate) Authorize(providedKey string) error {
	if !hmac.Equal([]byte(providedKey), g.adminKey) {
		return fmt.Errorf("%w: admin key mismatch", domain.ErrUnauthorized)
	}
	return nil
}
