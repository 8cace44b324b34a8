// Package playintegrity verifies Google Play Integrity tokens for the
// Android vote path.
//
// Decoding a real integrity token requires a server-to-server OAuth2
// exchange with the Play Integrity API using service-account
// credentials. That exchange is not wired yet: any non-bypass token
// fails closed with domain.ErrAttestationNotImplemented so operators
// can tell "feature not wired up" apart from "fraud attempt".
package playintegrity

import (
	"context"
	"fmt"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

// BypassToken short-circuits verification in test and integration
// environments.
const BypassToken = "mock_android_token"

// verdictPayload mirrors the decoded Play Integrity verdict. The four
// sub-verdicts are what a full implementation must check: request
// bound to our package, app recognized, device recognized, licensed.
type verdictPayload struct {
	RequestDetails  *requestDetails  `json:"requestDetails"`
	AppIntegrity    *appIntegrity    `json:"appIntegrity"`
	DeviceIntegrity *deviceIntegrity `json:"deviceIntegrity"`
	AccountDetails  *accountDetails  `json:"accountDetails"`
}

type requestDetails struct {
	RequestPackageName string `json:"requestPackageName"`
}

type appIntegrity struct {
	AppRecognitionVerdict string `json:"appRecognitionVerdict"`
}

type deviceIntegrity struct {
	DeviceRecognitionVerdict []string `json:"deviceRecognitionVerdict"`
}

type accountDetails struct {
	AppLicensingVerdict string `json:"appLicensingVerdict"`
}

type Verifier struct{}

func NewVerifier() ports.IntegrityVerifier {
	return &Verifier{}
}

func (v *Verifier) Verify(_ context.Context, token string) domain.AttestationResult {
	if token == BypassToken {
		return domain.Genuine()
	}

	return domain.Indeterminate(fmt.Errorf(
		"%w: play integrity verdict decoding requires an OAuth2 service-account exchange; use %q in test environments",
		domain.ErrAttestationNotImplemented, BypassToken,
	))
}
