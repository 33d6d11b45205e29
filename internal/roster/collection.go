package roster

import "github.com/desertthunder/registrar/internal/models"

// collection is an insertion-ordered set of records keyed by ID.
type collection[T models.Record] struct {
	order []T
	index map[string]T
}

func newCollection[T models.Record]() *collection[T] {
	return &collection[T]{index: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.index[id]
	return v, ok
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// add appends v unless a record with the same ID is already present.
func (c *collection[T]) add(v T) bool {
	if c.has(v.ID()) {
		return false
	}
	c.order = append(c.order, v)
	c.index[v.ID()] = v
	return true
}

func (c *collection[T]) remove(id string) bool {
	if !c.has(id) {
		return false
	}
	delete(c.index, id)
	for i, v := range c.order {
		if v.ID() == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// all returns a copy of the records in insertion order.
func (c *collection[T]) all() []T {
	out := make([]T, len(c.order))
	copy(out, c.order)
	return out
}

func (c *collection[T]) len() int { return len(c.order) }
