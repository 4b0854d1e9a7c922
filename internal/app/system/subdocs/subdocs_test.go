package subdocs_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/coophub/internal/app/system/subdocs"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type item struct {
	ID   primitive.ObjectID
	Name string
}

func idOf(it *item) primitive.ObjectID { return it.ID }

func seed(n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{ID: primitive.NewObjectID(), Name: string(rune('a' + i))}
	}
	return out
}

func TestNew_NilSlice(t *testing.T) {
	var items []item
	c := subdocs.New(&items, idOf)
	require.Equal(t, 0, c.Len())
	require.NotNil(t, items)
}

func TestAddWritesThrough(t *testing.T) {
	items := seed(2)
	c := subdocs.New(&items, idOf)

	added := item{ID: primitive.NewObjectID(), Name: "z"}
	all := c.Add(added)

	require.Len(t, all, 3)
	require.Len(t, items, 3)
	require.True(t, c.Has(added.ID))
	got, err := c.Get(added.ID)
	require.NoError(t, err)
	require.Equal(t, "z", got.Name)
}

func TestUpdate(t *testing.T) {
	items := seed(3)
	c := subdocs.New(&items, idOf)

	got, err := c.Update(items[1].ID, func(it *item) { it.Name = "changed" })
	require.NoError(t, err)
	require.Equal(t, "changed", got.Name)
	require.Equal(t, "changed", items[1].Name)
	require.Equal(t, "a", items[0].Name)
}

func TestUpdate_NotFound(t *testing.T) {
	items := seed(1)
	c := subdocs.New(&items, idOf)
	_, err := c.Update(primitive.NewObjectID(), func(*item) { t.Fatal("fn must not run") })
	require.True(t, errors.Is(err, subdocs.ErrNotFound))
}

func TestDelete(t *testing.T) {
	items := seed(3)
	first, mid, last := items[0].ID, items[1].ID, items[2].ID
	c := subdocs.New(&items, idOf)

	require.NoError(t, c.Delete(mid))
	require.Len(t, items, 2)
	require.False(t, c.Has(mid))

	// Indexes after the removed element must still resolve.
	got, err := c.Get(last)
	require.NoError(t, err)
	require.Equal(t, last, got.ID)
	got, err = c.Get(first)
	require.NoError(t, err)
	require.Equal(t, first, got.ID)

	require.ErrorIs(t, c.Delete(mid), subdocs.ErrNotFound)
	require.Len(t, items, 2)
}

func TestAddThenDeleteRestoresLength(t *testing.T) {
	items := seed(4)
	c := subdocs.New(&items, idOf)
	before := c.Len()

	it := item{ID: primitive.NewObjectID()}
	c.Add(it)
	require.NoError(t, c.Delete(it.ID))
	require.Equal(t, before, c.Len())
}
