// Package usermemory resolves and combines two categories of user-memory
// data – global identity facts and topic-scoped conversational memories –
// into a single payload consumable by downstream context-construction logic
// (e.g. prompt assembly for a conversational agent). Most applications
// interact with this package by:
//  1. Creating a UserMemory via New() (optionally overriding the default in-memory stores)
//  2. Populating the stores out of band (identity capture, topic cache refresh)
//  3. Resolving a combined per-session view via Combined or ResolverFor
//
// The façade delegates resolution to core.Resolver while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply durable store
// implementations and a structured logger.
package usermemory

import (
	"github.com/hupe1980/usermemory/core"
	"github.com/hupe1980/usermemory/logging"
	"github.com/hupe1980/usermemory/memory"
	"github.com/hupe1980/usermemory/session"
)

// Options configures the UserMemory instance.
type Options struct {
	// Stores (defaults to in-memory implementations if not provided)
	SessionStore core.SessionStore
	MemoryStore  core.MemoryStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// UserMemory is the high-level façade aggregating the two backing stores.
type UserMemory struct {
	opts Options
}

// New creates a new UserMemory instance with optional overrides. Any unset
// store is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *UserMemory {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		MemoryStore:  memory.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &UserMemory{opts: opts}
}

// SessionStore returns the configured session store.
func (u *UserMemory) SessionStore() core.SessionStore { return u.opts.SessionStore }

// MemoryStore returns the configured memory store.
func (u *UserMemory) MemoryStore() core.MemoryStore { return u.opts.MemoryStore }

// ResolverFor returns a read-only resolver bound to one session.
func (u *UserMemory) ResolverFor(sessionID string) *core.Resolver {
	return core.NewResolver(sessionID, u.opts.SessionStore, u.opts.MemoryStore, u.opts.Logger)
}

// Identities returns the global identity list unchanged. It is independent of
// any session.
func (u *UserMemory) Identities() ([]core.IdentityRecord, error) {
	return u.ResolverFor("").Identities()
}

// TopicMemories resolves cached memories for sessionID honoring an optional
// topic override in rctx.
func (u *UserMemory) TopicMemories(sessionID string, rctx *core.ResolveContext) (core.TopicMemories, error) {
	return u.ResolverFor(sessionID).TopicMemories(rctx)
}

// Combined is a synchronous helper that resolves topic memories and
// identities for sessionID and merges them into one payload.
func (u *UserMemory) Combined(sessionID string, rctx *core.ResolveContext) (core.CombinedUserMemory, error) {
	return u.ResolverFor(sessionID).Combined(rctx)
}
