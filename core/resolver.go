package core

import (
	"github.com/hupe1980/usermemory/logging"
)

// ResolveContext optionally overrides which topic's memories are resolved.
// A nil ResolveContext, or one with a nil TopicID, falls through to the
// session's active topic. A non-nil TopicID is honored as-is, including the
// empty string.
type ResolveContext struct {
	TopicID *string
}

// WithTopic builds a ResolveContext overriding the topic id.
func WithTopic(topicID string) *ResolveContext {
	return &ResolveContext{TopicID: &topicID}
}

// Resolver reads one session's user-memory view from the two backing stores.
// It is a read-only aggregation layer: it never mutates store state and holds
// no state between calls, so every call is idempotent given unchanged store
// snapshots. Stores are injected explicitly rather than reached through
// ambient singletons, keeping resolution testable in isolation.
//
// Absence of data (no topic id, no cached memories, empty identity list) is
// a normal empty result. Store errors are not caught or translated here; they
// propagate to the caller unchanged.
type Resolver struct {
	sessionID string
	sessions  SessionStore
	memory    MemoryStore
	logger    logging.Logger
}

// NewResolver constructs a Resolver bound to sessionID. A nil logger is
// substituted with a NoOpLogger.
func NewResolver(sessionID string, sessions SessionStore, memory MemoryStore, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Resolver{sessionID: sessionID, sessions: sessions, memory: memory, logger: logger}
}

// SessionID returns the session this resolver is bound to.
func (r *Resolver) SessionID() string { return r.sessionID }

// Identities returns the memory store's global identity list unchanged:
// order and length preserved, every record passed through field for field.
// An empty identity list yields an empty slice, never nil.
func (r *Resolver) Identities() ([]IdentityRecord, error) {
	records, err := r.memory.Identities()
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []IdentityRecord{}
	}
	return records, nil
}

// TopicMemories resolves the effective topic id and returns its cached
// memories. Resolution order: a non-nil override in rctx wins and the
// session store is never consulted; otherwise the session's active topic is
// used. When no topic resolves from either source the canonical empty value
// is returned without a memory-store lookup; when the lookup has no cached
// value the canonical empty value is returned as well.
func (r *Resolver) TopicMemories(rctx *ResolveContext) (TopicMemories, error) {
	topicID, ok, err := r.effectiveTopicID(rctx)
	if err != nil {
		return TopicMemories{}, err
	}
	if !ok {
		r.logger.Debug("memory.topic.unresolved", "session_id", r.sessionID)
		return EmptyTopicMemories(), nil
	}
	cached, err := r.memory.TopicMemories(topicID)
	if err != nil {
		return TopicMemories{}, err
	}
	if cached == nil {
		r.logger.Debug("memory.topic.miss", "session_id", r.sessionID, "topic_id", topicID)
		return EmptyTopicMemories(), nil
	}
	r.logger.Debug("memory.topic.resolved", "session_id", r.sessionID, "topic_id", topicID)
	return *cached, nil
}

// Combined resolves both sides and merges them into one payload.
func (r *Resolver) Combined(rctx *ResolveContext) (CombinedUserMemory, error) {
	memories, err := r.TopicMemories(rctx)
	if err != nil {
		return CombinedUserMemory{}, err
	}
	identities, err := r.Identities()
	if err != nil {
		return CombinedUserMemory{}, err
	}
	return CombineUserMemoryData(memories, identities), nil
}

// effectiveTopicID applies the override-then-active-topic resolution order.
// The session store is only read when rctx carries no override.
func (r *Resolver) effectiveTopicID(rctx *ResolveContext) (string, bool, error) {
	if rctx != nil && rctx.TopicID != nil {
		return *rctx.TopicID, true, nil
	}
	sess, err := r.sessions.Get(r.sessionID)
	if err != nil {
		return "", false, err
	}
	id, ok := sess.ActiveTopic()
	return id, ok, nil
}
