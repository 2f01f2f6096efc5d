package domain

// LookupRecord is one row of a user-extensible lookup table (venue types,
// trip statuses, talent categories, ...). Zero ID denotes an unsaved draft.
type LookupRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LookupCounts maps a lookup kind key to its current row count, for the
// admin lookup-tables overview.
type LookupCounts map[string]int64
