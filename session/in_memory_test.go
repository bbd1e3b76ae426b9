package session

import (
	"testing"

	"github.com/hupe1980/usermemory/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemoryStore_LazyCreate(t *testing.T) {
	store := NewInMemoryStore()
	sess, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID != "sess-1" {
		t.Fatalf("expected lazily created session, got %#v", sess)
	}
	if _, ok := sess.ActiveTopic(); ok {
		t.Fatalf("new session must not have an active topic")
	}
}

func TestInMemoryStore_SetActiveTopic(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.SetActiveTopic("sess-1", "topic-1"); err != nil {
		t.Fatalf("set active topic failed: %v", err)
	}
	sess, _ := store.Get("sess-1")
	id, ok := sess.ActiveTopic()
	if !ok || id != "topic-1" {
		t.Fatalf("expected active topic topic-1, got %q (ok=%v)", id, ok)
	}
}

func TestInMemoryStore_GetReturnsClone(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.AddTopic("sess-1", core.Topic{ID: "topic-1", Title: "first"}); err != nil {
		t.Fatalf("add topic failed: %v", err)
	}
	sess, _ := store.Get("sess-1")
	sess.SetActiveTopic("hijacked")

	again, _ := store.Get("sess-1")
	if _, ok := again.ActiveTopic(); ok {
		t.Fatalf("mutating a returned clone must not leak into the store")
	}
	if len(again.GetTopics()) != 1 {
		t.Fatalf("expected stored topic history, got %#v", again.GetTopics())
	}
}
