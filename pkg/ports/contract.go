package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/schema"
)

// RunStoreContract runs a suite of tests to verify that a Store
// implementation adheres to the interface contract. Adapter test files
// call this instead of duplicating the suite.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()
	name := "contract-test-" + time.Now().Format("20060102150405")

	doc := contractDocument(t)

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, doc)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.ElementsMatch(t, doc.States, loaded.States)
		assert.ElementsMatch(t, doc.Transitions, loaded.Transitions)
		require.NotNil(t, loaded.InitialStateID)
		assert.Equal(t, *doc.InitialStateID, *loaded.InitialStateID)
		assert.ElementsMatch(t, doc.FinalStateIDs, loaded.FinalStateIDs)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, ErrAutomatonNotFound)
	})

	t.Run("Loaded Document Is Isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, doc))

		first, err := store.Load(ctx, name)
		require.NoError(t, err)
		first.States[0].ID = "mutated"

		second, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", second.States[0].ID, "store must not leak internal document to callers")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, doc))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, ErrAutomatonNotFound, "Load after Delete should return ErrAutomatonNotFound")

		assert.NoError(t, store.Delete(ctx, name), "deleting an absent name is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, id1, doc))
		require.NoError(t, store.Save(ctx, id2, doc))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
	})
}

func contractDocument(t *testing.T) *schema.Document {
	t.Helper()

	a := domain.NewDFA()
	for _, id := range []string{"q0", "q1"} {
		s, err := domain.NewState(id)
		require.NoError(t, err)
		require.NoError(t, a.AddState(s))
	}
	require.NoError(t, a.AddTransition(domain.Transition{From: "q0", To: "q1", Symbol: "a"}))
	require.NoError(t, a.SetInitial("q0"))
	require.NoError(t, a.AddFinal("q1"))

	return schema.FromAutomaton(a)
}
