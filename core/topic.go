package core

// TopicMemories holds the cached memory snippets attached to one conversation
// topic, split into three ordered lists. Absence of cached data is modeled as
// a nil *TopicMemories at the store boundary and normalized by the resolver
// to the canonical empty value.
//
// Use EmptyTopicMemories rather than the zero value for "no memories computed
// yet" so JSON output carries empty arrays instead of null.
type TopicMemories struct {
	Contexts    []string `json:"contexts"`
	Experiences []string `json:"experiences"`
	Preferences []string `json:"preferences"`
}

// EmptyTopicMemories returns the canonical empty value used whenever no
// memory data is available for a topic.
func EmptyTopicMemories() TopicMemories {
	return TopicMemories{
		Contexts:    []string{},
		Experiences: []string{},
		Preferences: []string{},
	}
}

// IsEmpty reports whether all three snippet lists are empty.
func (t TopicMemories) IsEmpty() bool {
	return len(t.Contexts) == 0 && len(t.Experiences) == 0 && len(t.Preferences) == 0
}

// Clone returns a deep copy safe for independent mutation.
func (t TopicMemories) Clone() TopicMemories {
	clone := TopicMemories{
		Contexts:    make([]string, len(t.Contexts)),
		Experiences: make([]string, len(t.Experiences)),
		Preferences: make([]string, len(t.Preferences)),
	}
	copy(clone.Contexts, t.Contexts)
	copy(clone.Experiences, t.Experiences)
	copy(clone.Preferences, t.Preferences)
	return clone
}
