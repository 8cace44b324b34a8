package domain

import "time"

// Vote is a device's current choice. The device id is the natural key:
// casting again overwrites the candidate reference and refreshes
// CastAt, it never creates a second row.
type Vote struct {
	DeviceID    string    `json:"device_id"`
	CandidateID int64     `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}
