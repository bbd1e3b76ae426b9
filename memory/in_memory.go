package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/usermemory/core"
)

// InMemoryStore is a naive process-local MemoryStore. It offers:
//  1. The global identity list (ordered, appended via CaptureIdentity)
//  2. Per-topic cached TopicMemories keyed by topic id, with substring Search
//
// Concurrency: protected by RWMutex.
// Every read hands out copies so callers never observe later writes.
// Search: linear scan with substring matching (case sensitive) assigning a
// constant score of 1.0 to every hit. Suitable only for tests / demos; swap
// for a durable backend when memories must survive restarts.
type InMemoryStore struct {
	mu         sync.RWMutex
	identities []core.IdentityRecord
	topics     map[string]core.TopicMemories
}

// NewInMemoryStore creates a new in-memory memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		identities: []core.IdentityRecord{},
		topics:     make(map[string]core.TopicMemories),
	}
}

// Identities returns a copy of the global identity list in capture order.
func (m *InMemoryStore) Identities() ([]core.IdentityRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return core.CloneIdentities(m.identities), nil
}

// TopicMemories returns a copy of the cached memories for topicID, or nil
// when nothing has been cached for that topic.
func (m *InMemoryStore) TopicMemories(topicID string) (*core.TopicMemories, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cached, exists := m.topics[topicID]
	if !exists {
		return nil, nil
	}
	clone := cached.Clone()
	return &clone, nil
}

// CaptureIdentity appends a new identity record stamping a generated id and
// the capture time (UTC, RFC 3339).
func (m *InMemoryStore) CaptureIdentity(recordType, role, description string) (core.IdentityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record := core.IdentityRecord{
		ID:          uuid.NewString(),
		Type:        recordType,
		Role:        role,
		Description: description,
		CapturedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	m.identities = append(m.identities, record)
	return record, nil
}

// PutIdentities replaces the global identity list preserving input order.
func (m *InMemoryStore) PutIdentities(records []core.IdentityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities = core.CloneIdentities(records)
	return nil
}

// PutTopicMemories caches memories for a topic replacing any previous value.
func (m *InMemoryStore) PutTopicMemories(topicID string, memories core.TopicMemories) error {
	if topicID == "" {
		return fmt.Errorf("put topic memories: missing topic id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics[topicID] = memories.Clone()
	return nil
}

// DeleteTopic drops the cached memories for a topic.
func (m *InMemoryStore) DeleteTopic(topicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.topics[topicID]; !exists {
		return fmt.Errorf("topic memories not found")
	}
	delete(m.topics, topicID)
	return nil
}

// Search performs a simple substring match over all cached snippets. Results
// are returned in unspecified order up to the provided limit. Each result
// receives a constant score of 1.0.
func (m *InMemoryStore) Search(query string, limit int) ([]core.SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]core.SearchResult, 0, limit)
	for topicID, cached := range m.topics {
		lists := []struct {
			kind     string
			snippets []string
		}{
			{core.SnippetKindContext, cached.Contexts},
			{core.SnippetKindExperience, cached.Experiences},
			{core.SnippetKindPreference, cached.Preferences},
		}
		for _, list := range lists {
			for _, snippet := range list.snippets {
				if len(results) >= limit {
					return results, nil
				}
				if query == "" || strings.Contains(snippet, query) {
					results = append(results, core.SearchResult{TopicID: topicID, Kind: list.kind, Snippet: snippet, Score: 1.0})
				}
			}
		}
	}
	return results, nil
}
