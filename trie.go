package trie

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get and Delete when the requested key is not
// currently mapped to a value. A key that exists only as an internal path
// (a prefix of other keys, with no value of its own) is still not found.
var ErrKeyNotFound = errors.New("trie: key not found")

// Item is a single key/value pair, used by the pair-based constructors and
// bulk updates.
type Item[V any] struct {
	Key   string
	Value V
}

// Trie is a prefix tree mapping string keys to values of type V. Keys are
// compared rune by rune with no normalisation; the empty string is a valid
// key. A Trie is not safe for unsynchronised concurrent use.
type Trie[V any] struct {
	root *node[V]
	size int
}

// New creates an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

// NewFromMap creates a Trie holding the entries of m.
func NewFromMap[V any](m map[string]V) *Trie[V] {
	t := New[V]()
	t.Update(m)
	return t
}

// NewFromItems creates a Trie holding the given pairs. Later pairs overwrite
// earlier ones with the same key.
func NewFromItems[V any](items []Item[V]) *Trie[V] {
	t := New[V]()
	t.UpdateItems(items)
	return t
}

// Update sets every entry of m in the trie.
func (t *Trie[V]) Update(m map[string]V) {
	for key, value := range m {
		t.Set(key, value)
	}
}

// UpdateItems sets every pair in order.
func (t *Trie[V]) UpdateItems(items []Item[V]) {
	for _, item := range items {
		t.Set(item.Key, item.Value)
	}
}

// Get returns the value mapped to key, or an error wrapping ErrKeyNotFound
// if the key has no value.
func (t *Trie[V]) Get(key string) (V, error) {
	n, ok := t.find(key, false)
	if !ok || !n.hasValue {
		var zero V
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return n.value, nil
}

// Set maps key to value, overwriting any previous value. It always succeeds.
func (t *Trie[V]) Set(key string, value V) {
	n, _ := t.find(key, true)
	t.setNode(n, value)
}

// Delete removes the value mapped to key, returning an error wrapping
// ErrKeyNotFound if the key has no value. Emptied internal nodes are not
// pruned; callers must not rely on memory being reclaimed before the trie
// itself is released.
func (t *Trie[V]) Delete(key string) error {
	n, ok := t.find(key, false)
	if !ok || !n.hasValue {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	n.clearValue()
	t.size--
	return nil
}

// Contains reports whether key is mapped to a value.
func (t *Trie[V]) Contains(key string) bool {
	n, ok := t.find(key, false)
	return ok && n.hasValue
}

// Len returns the number of keys currently mapped to a value.
func (t *Trie[V]) Len() int {
	return t.size
}

// Transform maps key to update(current), where current is the existing value
// or fallback if the key has no value yet. It never fails; a key inserted
// this way counts towards Len exactly as with Set.
func (t *Trie[V]) Transform(key string, update func(V) V, fallback V) {
	n, _ := t.find(key, true)
	current := fallback
	if n.hasValue {
		current = n.value
	}
	t.setNode(n, update(current))
}

// find walks the tree one rune of key at a time. With create set, missing
// edges are created on demand and the walk always reaches a node; without
// it, a missing edge ends the walk with ok false. The node returned may or
// may not hold a value.
func (t *Trie[V]) find(key string, create bool) (*node[V], bool) {
	current := t.root
	for _, r := range key {
		if next := current.child(r); next != nil {
			current = next
		} else if create {
			current = current.childOrCreate(r)
		} else {
			return nil, false
		}
	}
	return current, true
}

// setNode writes value into n's slot, counting the key as new when the slot
// was unset. Shared by Set and Transform so size bookkeeping has one home.
func (t *Trie[V]) setNode(n *node[V], value V) {
	if !n.hasValue {
		t.size++
	}
	n.setValue(value)
}
