// Package subdocs gives an embedded array of identified items a keyed view.
//
// The parent document still persists the items as an ordered array; a
// Collection wraps a pointer to that slice, indexes it by id once, and writes
// every change straight back into the parent. Lookups are map hits and an
// unknown id is reported as ErrNotFound instead of a -1 index.
package subdocs

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("subdocs: item not found")

// Collection is a keyed view over *items. It is not safe for concurrent use;
// it lives for the duration of one request.
type Collection[T any] struct {
	items *[]T
	id    func(*T) primitive.ObjectID
	index map[primitive.ObjectID]int
}

// New indexes *items by the id returned from idOf. A nil *items is treated
// as an empty list.
func New[T any](items *[]T, idOf func(*T) primitive.ObjectID) *Collection[T] {
	if *items == nil {
		*items = []T{}
	}
	c := &Collection[T]{items: items, id: idOf}
	c.reindex()
	return c
}

func (c *Collection[T]) reindex() {
	c.index = make(map[primitive.ObjectID]int, len(*c.items))
	for i := range *c.items {
		c.index[c.id(&(*c.items)[i])] = i
	}
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(*c.items) }

// Items returns the backing slice.
func (c *Collection[T]) Items() []T { return *c.items }

// Has reports whether an item with id exists.
func (c *Collection[T]) Has(id primitive.ObjectID) bool {
	_, ok := c.index[id]
	return ok
}

// Add appends item and returns the whole list. No uniqueness check is made
// beyond the index: a repeated id shadows the earlier item for lookups.
func (c *Collection[T]) Add(item T) []T {
	*c.items = append(*c.items, item)
	c.index[c.id(&item)] = len(*c.items) - 1
	return *c.items
}

// Get returns a pointer into the backing slice. The pointer is invalidated
// by the next Add or Delete.
func (c *Collection[T]) Get(id primitive.ObjectID) (*T, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &(*c.items)[i], nil
}

// Update applies fn to the item in place and returns a copy of the result.
func (c *Collection[T]) Update(id primitive.ObjectID, fn func(*T)) (T, error) {
	p, err := c.Get(id)
	if err != nil {
		var zero T
		return zero, err
	}
	fn(p)
	return *p, nil
}

// Delete removes exactly one item.
func (c *Collection[T]) Delete(id primitive.ObjectID) error {
	i, ok := c.index[id]
	if !ok {
		return ErrNotFound
	}
	s := *c.items
	*c.items = append(s[:i:i], s[i+1:]...)
	c.reindex()
	return nil
}
