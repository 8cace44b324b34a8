package ports

// AdminGate authorizes administrative mutation. It runs before any
// request body is read, so a bad key rejects the request regardless of
// body validity.
type AdminGate interface {
	Authorize(providedKey string) error
}
