package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/usermemory/core"
	"github.com/hupe1980/usermemory/internal/testutil"
)

func TestCombineUserMemoryData_Passthrough(t *testing.T) {
	memories := core.TopicMemories{
		Contexts:    []string{"c1", "c2"},
		Experiences: []string{"e1"},
		Preferences: []string{"p1", "p2", "p3"},
	}
	identities := []core.IdentityRecord{testutil.IdentityFixture("a"), testutil.IdentityFixture("b")}

	got := core.CombineUserMemoryData(memories, identities)

	// Field values are the inputs themselves: same backing arrays, same order.
	assert.Equal(t, memories.Contexts, got.Contexts)
	assert.Equal(t, memories.Experiences, got.Experiences)
	assert.Equal(t, memories.Preferences, got.Preferences)
	assert.Equal(t, identities, got.Identities)
	assert.Same(t, &memories.Contexts[0], &got.Contexts[0])
	assert.Same(t, &identities[0], &got.Identities[0])
}

func TestCombineUserMemoryData_Empty(t *testing.T) {
	got := core.CombineUserMemoryData(core.EmptyTopicMemories(), []core.IdentityRecord{})

	assert.Equal(t, core.CombinedUserMemory{
		Contexts:    []string{},
		Experiences: []string{},
		Preferences: []string{},
		Identities:  []core.IdentityRecord{},
	}, got)
}

func TestCombineUserMemoryData_DoesNotMutateInputs(t *testing.T) {
	memories := testutil.TopicMemoriesFixture("x")
	identities := []core.IdentityRecord{testutil.IdentityFixture("a")}

	_ = core.CombineUserMemoryData(memories, identities)

	assert.Equal(t, testutil.TopicMemoriesFixture("x"), memories)
	assert.Equal(t, []core.IdentityRecord{testutil.IdentityFixture("a")}, identities)
}
