package testutil

import (
	"github.com/hupe1980/usermemory/core"
)

// SessionBuilder helps construct sessions with fluent chaining for tests.
// Example:
//
//	sess := NewSessionBuilder("sess-1").ActiveTopic("topic-1").Build()
type SessionBuilder struct {
	id     string
	active string
	topics []core.Topic
}

// NewSessionBuilder creates a new builder for a session with the given id.
// Use chainable methods (ActiveTopic, Topic, Topics) then call Build.
func NewSessionBuilder(id string) *SessionBuilder {
	return &SessionBuilder{id: id}
}

// ActiveTopic sets the topic in focus on the resulting session (chainable).
func (b *SessionBuilder) ActiveTopic(topicID string) *SessionBuilder {
	b.active = topicID
	return b
}

// Topic appends a single topic to the session history (chainable).
func (b *SessionBuilder) Topic(t core.Topic) *SessionBuilder {
	b.topics = append(b.topics, t)
	return b
}

// Topics appends multiple topics to the session history (chainable).
func (b *SessionBuilder) Topics(ts ...core.Topic) *SessionBuilder {
	b.topics = append(b.topics, ts...)
	return b
}

// Build returns a *core.Session with pre-populated topics and focus.
func (b *SessionBuilder) Build() *core.Session {
	s := core.NewSession(b.id)
	s.Topics = append(s.Topics, b.topics...)
	s.ActiveTopicID = b.active
	return s
}

// TopicMemoriesFixture builds a TopicMemories carrying one snippet per list,
// all tagged with the given suffix, for compact test setup.
func TopicMemoriesFixture(suffix string) core.TopicMemories {
	return core.TopicMemories{
		Contexts:    []string{"context-" + suffix},
		Experiences: []string{"experience-" + suffix},
		Preferences: []string{"preference-" + suffix},
	}
}

// IdentityFixture builds an IdentityRecord with deterministic fields derived
// from the given suffix.
func IdentityFixture(suffix string) core.IdentityRecord {
	return core.IdentityRecord{
		ID:          "identity-" + suffix,
		Type:        "fact",
		Role:        "role-" + suffix,
		Description: "description-" + suffix,
		CapturedAt:  "2024-01-01T00:00:00Z",
	}
}
