package domain

import "errors"

var (
	ErrUnauthorized              = errors.New("unauthorized")
	ErrUnknownPlatform           = errors.New("unknown platform")
	ErrAttestationNotImplemented = errors.New("attestation verification not implemented")
	ErrMissingCredentials        = errors.New("missing attestation credentials")
	ErrInternal                  = errors.New("internal server error")
)
