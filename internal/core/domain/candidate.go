package domain

// Candidate is created implicitly by the first vote naming it and only
// ever removed by an explicit admin deletion.
type Candidate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CandidateShare is one row of the percentage tally. Only candidates
// with at least one vote appear in a tally.
type CandidateShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// CandidateCount is a raw vote count per candidate, as read from the
// ledger before percentages are derived.
type CandidateCount struct {
	Name  string
	Votes int64
}
