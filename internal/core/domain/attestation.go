package domain

// Platform tags accepted on vote submissions.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

type AttestationVerdict int

const (
	// VerdictGenuine means the platform proved the request came from an
	// unmodified app on a genuine device.
	VerdictGenuine AttestationVerdict = iota
	// VerdictRejected means the platform explicitly refused the token
	// (malformed, expired, unrecognized device).
	VerdictRejected
	// VerdictIndeterminate means no verdict could be obtained (network,
	// configuration or upstream failure).
	VerdictIndeterminate
)

// AttestationResult is never persisted; it is recomputed on every vote
// request. Reason is set for rejections, Err for indeterminate outcomes,
// so callers cannot conflate "proven fake" with "could not determine".
type AttestationResult struct {
	Verdict AttestationVerdict
	Reason  string
	Err     error
}

func Genuine() AttestationResult {
	return AttestationResult{Verdict: VerdictGenuine}
}

func Rejected(reason string) AttestationResult {
	return AttestationResult{Verdict: VerdictRejected, Reason: reason}
}

func Indeterminate(err error) AttestationResult {
	return AttestationResult{Verdict: VerdictIndeterminate, Err: err}
}
