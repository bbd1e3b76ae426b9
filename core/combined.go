package core

// CombinedUserMemory is the unified payload handed to downstream
// context-construction logic: the three topic-scoped snippet lists plus the
// global identity list, all at the same nesting level.
type CombinedUserMemory struct {
	Contexts    []string         `json:"contexts"`
	Experiences []string         `json:"experiences"`
	Preferences []string         `json:"preferences"`
	Identities  []IdentityRecord `json:"identities"`
}

// CombineUserMemoryData merges resolved topic memories and the identity list
// into one CombinedUserMemory. Pure function: field values are copied
// verbatim with no reordering, deduplication or filtering, and neither input
// is mutated.
func CombineUserMemoryData(memories TopicMemories, identities []IdentityRecord) CombinedUserMemory {
	return CombinedUserMemory{
		Contexts:    memories.Contexts,
		Experiences: memories.Experiences,
		Preferences: memories.Preferences,
		Identities:  identities,
	}
}
