// Package devicecheck verifies Apple DeviceCheck tokens for the iOS
// vote path by presenting an ES256-signed assertion to Apple's
// validate_device_token endpoint.
package devicecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

// BypassToken short-circuits verification in test and integration
// environments.
const BypassToken = "mock_ios_token"

// DefaultBaseURL is Apple's development DeviceCheck endpoint. Point
// production deployments at api.devicecheck.apple.com via config.
const DefaultBaseURL = "https://api.development.devicecheck.apple.com"

const (
	assertionTTL   = time.Hour
	requestTimeout = 5 * time.Second
)

// Credentials are the operator-supplied Apple signing material.
type Credentials struct {
	KeyID         string
	TeamID        string
	PrivateKeyPEM string
}

type validateRequest struct {
	DeviceToken   string `json:"device_token"`
	TransactionID string `json:"transaction_id"`
	Timestamp     int64  `json:"timestamp"`
}

type Verifier struct {
	creds   Credentials
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewVerifier builds an iOS verifier. An empty baseURL selects
// DefaultBaseURL. The HTTP client carries a bounded timeout so a
// hanging upstream cannot pin a request worker; a timeout surfaces as
// an indeterminate outcome.
func NewVerifier(creds Credentials, baseURL string) ports.IntegrityVerifier {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Verifier{
		creds:   creds,
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		now:     time.Now,
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) domain.AttestationResult {
	if token == BypassToken {
		return domain.Genuine()
	}

	if v.creds.KeyID == "" || v.creds.TeamID == "" || v.creds.PrivateKeyPEM == "" {
		return domain.Indeterminate(fmt.Errorf(
			"%w: device check requires key id, team id and private key", domain.ErrMissingCredentials))
	}

	assertion, err := v.signAssertion()
	if err != nil {
		return domain.Indeterminate(fmt.Errorf("failed to sign device check assertion: %w", err))
	}

	payload := validateRequest{
		DeviceToken:   token,
		TransactionID: uuid.NewString(),
		Timestamp:     v.now().UnixMilli(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Indeterminate(fmt.Errorf("failed to encode device check request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/v1/validate_device_token", bytes.NewReader(body))
	if err != nil {
		return domain.Indeterminate(fmt.Errorf("failed to build device check request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+assertion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return domain.Indeterminate(fmt.Errorf("device check request failed: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return domain.Genuine()
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Apple explicitly refused the token.
		return domain.Rejected(fmt.Sprintf("device check returned status %d", resp.StatusCode))
	default:
		return domain.Indeterminate(fmt.Errorf("device check returned status %d", resp.StatusCode))
	}
}

// signAssertion builds the short-lived bearer assertion Apple expects:
// issuer is the team id, the key id rides in the JWT header, expiry is
// one hour out.
func (v *Verifier) signAssertion() (string, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(v.creds.PrivateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("failed to parse private key: %w", err)
	}

	now := v.now()
	claims := jwt.MapClaims{
		"iss": v.creds.TeamID,
		"iat": now.Unix(),
		"exp": now.Add(assertionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = v.creds.KeyID

	return token.SignedString(key)
}
