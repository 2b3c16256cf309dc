package vault

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_UpsertKeepsInsertionOrder(t *testing.T) {
	c := NewCollection[Credential]()

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("id-%d", i)
		c.Upsert(id, Credential{ID: id, Domain: fmt.Sprintf("d%d.com", i)})
	}

	listed := c.List()
	require.Len(t, listed, 5)
	for i, rec := range listed {
		assert.Equal(t, fmt.Sprintf("id-%d", i), rec.ID)
	}
}

func TestCollection_UpsertReplacesInPlace(t *testing.T) {
	c := NewCollection[Credential]()
	c.Upsert("a", Credential{ID: "a", Secret: "old"})
	c.Upsert("b", Credential{ID: "b"})
	c.Upsert("a", Credential{ID: "a", Secret: "new"})

	require.Equal(t, 2, c.Len())

	listed := c.List()
	assert.Equal(t, "a", listed[0].ID, "replaced record keeps its position")
	assert.Equal(t, "new", listed[0].Secret)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", got.Secret, "old record fully replaced")
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection[Note]()
	c.Upsert("x", Note{ID: "x"})
	c.Upsert("y", Note{ID: "y"})
	c.Upsert("z", Note{ID: "z"})

	require.True(t, c.Remove("y"))
	assert.False(t, c.Remove("y"), "second remove of same id is a no-op")

	listed := c.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "x", listed[0].ID)
	assert.Equal(t, "z", listed[1].ID)

	_, ok := c.Get("y")
	assert.False(t, ok)
}

func TestCollection_Clear(t *testing.T) {
	c := NewCollection[Note]()
	c.Upsert("x", Note{ID: "x"})
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.List())

	// reusable after clear
	c.Upsert("y", Note{ID: "y"})
	assert.Equal(t, 1, c.Len())
}

func TestCache_ClearEmptiesBothCollections(t *testing.T) {
	cache := NewCache()
	cache.Credentials.Upsert("c1", Credential{ID: "c1"})
	cache.Notes.Upsert("n1", Note{ID: "n1"})

	cache.Clear()

	assert.Equal(t, 0, cache.Credentials.Len())
	assert.Equal(t, 0, cache.Notes.Len())
}
