package core

// Snippet kinds reported by MemoryStore.Search, matching the three
// TopicMemories lists.
const (
	SnippetKindContext    = "context"
	SnippetKindExperience = "experience"
	SnippetKindPreference = "preference"
)

// SearchResult represents a cached memory snippet matched by a search, with
// the topic it belongs to, the list it was stored under and a relevance score.
type SearchResult struct {
	TopicID string
	Kind    string
	Snippet string
	Score   float64
}
