package core

// MemoryStore defines read access plus cache maintenance for user memory:
// the global identity list and per-topic cached memory snippets. Resolution
// uses only the read side (Identities / TopicMemories); the maintenance
// methods exist for the out-of-band callers that populate the cache. Short
// method names align with SessionStore.
type MemoryStore interface {
	// Identities returns the global identity list in capture order. An empty
	// list is a normal result, not an error.
	Identities() ([]IdentityRecord, error)
	// TopicMemories returns the cached memories for topicID, or nil when no
	// memories have been computed for that topic yet.
	TopicMemories(topicID string) (*TopicMemories, error)
	// CaptureIdentity appends a new identity record, stamping the id and
	// capture time, and returns the stored record.
	CaptureIdentity(recordType, role, description string) (IdentityRecord, error)
	// PutIdentities replaces the global identity list preserving input order.
	PutIdentities(records []IdentityRecord) error
	// PutTopicMemories caches memories for a topic replacing any previous value.
	PutTopicMemories(topicID string, memories TopicMemories) error
	// DeleteTopic drops the cached memories for a topic.
	DeleteTopic(topicID string) error
	// Search matches cached snippets against a query up to limit results.
	Search(query string, limit int) ([]SearchResult, error)
}
