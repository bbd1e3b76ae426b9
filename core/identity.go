package core

// IdentityRecord is an immutable snapshot of a previously captured fact about
// the user. Records are sourced verbatim from the memory store's global
// identity list; resolution passes them through field for field and never
// invents, drops or reorders them.
type IdentityRecord struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	Description string `json:"description"`
	CapturedAt  string `json:"capturedAt"`
}

// CloneIdentities returns a copy of the identity slice so callers can hold
// the result without observing later store mutations. The result is never
// nil; an empty or nil input yields an empty slice.
func CloneIdentities(records []IdentityRecord) []IdentityRecord {
	out := make([]IdentityRecord, len(records))
	copy(out, records)
	return out
}
