package core

import (
	"sync"
	"time"
)

// Topic describes one conversation thread within a chat session.
type Topic struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session represents a chat session tracking its topic history and the topic
// currently in focus. It is safe for concurrent access.
//
// Contract:
//   - Mutations update the Updated timestamp
//   - GetTopics returns a defensive copy to avoid external mutation
//   - ActiveTopic reports an id only while a topic is in focus
//   - Clone performs deep copies of maps/slices for safe divergence.
type Session struct {
	ID            string            `json:"id"`
	ActiveTopicID string            `json:"activeTopicId,omitempty"`
	Topics        []Topic           `json:"topics"`
	Created       time.Time         `json:"created"`
	Updated       time.Time         `json:"updated"`
	Metadata      map[string]string `json:"metadata"`
	mu            sync.RWMutex
}

// NewSession creates a new session with the given ID and no active topic.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, Topics: []Topic{}, Created: now, Updated: now, Metadata: map[string]string{}}
}

// ActiveTopic returns the id of the topic currently in focus. The boolean is
// false when the session has no active topic.
func (s *Session) ActiveTopic() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ActiveTopicID, s.ActiveTopicID != ""
}

// SetActiveTopic puts topicID in focus updating the Updated timestamp.
func (s *Session) SetActiveTopic(topicID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ActiveTopicID = topicID
	s.Updated = time.Now()
}

// ClearActiveTopic removes focus from any topic.
func (s *Session) ClearActiveTopic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ActiveTopicID = ""
	s.Updated = time.Now()
}

// AddTopic appends a topic to the history updating the Updated timestamp.
func (s *Session) AddTopic(t Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Topics = append(s.Topics, t)
	s.Updated = time.Now()
}

// GetTopics returns a copy of the topic history to prevent callers from
// mutating internal state.
func (s *Session) GetTopics() []Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	topics := make([]Topic, len(s.Topics))
	copy(topics, s.Topics)
	return topics
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{
		ID:            s.ID,
		ActiveTopicID: s.ActiveTopicID,
		Topics:        make([]Topic, len(s.Topics)),
		Created:       s.Created,
		Updated:       s.Updated,
		Metadata:      make(map[string]string, len(s.Metadata)),
	}
	copy(clone.Topics, s.Topics)
	for k, v := range s.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}

// SessionStore persists chat sessions and their evolving topic state.
type SessionStore interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	SetActiveTopic(sessionID, topicID string) error
	AddTopic(sessionID string, t Topic) error
}
