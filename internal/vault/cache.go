// Package vault holds the in-memory decrypted working set mirrored
// from the remote store. Records live here only while a session is
// active; logout clears everything.
package vault

import "sync"

// Credential is the decrypted view of a stored login.
type Credential struct {
	ID       string
	Domain   string
	Username string
	Secret   string
}

// Note is the decrypted view of a secure note.
type Note struct {
	ID      string
	Title   string
	Content string
}

// Collection is an id-unique mapping that preserves insertion order.
// Upsert of an existing id replaces the record in place, keeping its
// position; a new id appends. Every operation is atomic: a failed or
// rejected call leaves the collection exactly as it was.
//
// The sync engine is the only logical writer; the lock exists because
// UI commands read concurrently from their own goroutines.
type Collection[R any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]R
}

// NewCollection returns an empty ordered collection.
func NewCollection[R any]() *Collection[R] {
	return &Collection[R]{items: make(map[string]R)}
}

// Upsert inserts rec under id or fully replaces the existing record.
func (c *Collection[R]) Upsert(id string, rec R) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = rec
}

// Remove deletes the record under id, reporting whether it was present.
func (c *Collection[R]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the record under id.
func (c *Collection[R]) Get(id string) (R, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.items[id]
	return rec, ok
}

// List returns a copy of all records in insertion order.
func (c *Collection[R]) List() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]R, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of records held.
func (c *Collection[R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear drops every record.
func (c *Collection[R]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.items = make(map[string]R)
}

// Cache bundles the two decrypted collections of a session.
type Cache struct {
	Credentials *Collection[Credential]
	Notes       *Collection[Note]
}

// NewCache returns an empty vault cache.
func NewCache() *Cache {
	return &Cache{
		Credentials: NewCollection[Credential](),
		Notes:       NewCollection[Note](),
	}
}

// Clear empties both collections. Called on logout.
func (c *Cache) Clear() {
	c.Credentials.Clear()
	c.Notes.Clear()
}
