package trie

// frame is one pending unit of enumeration work: a node and the key spelled
// out by the path that reached it.
type frame[V any] struct {
	prefix string
	n      *node[V]
}

// Iterator enumerates the key/value pairs of a subtree lazily. It holds its
// own explicit stack of pending frames, so a consumer may stop at any point
// without the rest of the subtree being visited; an abandoned iterator is
// reclaimed like any other value. The order is depth-first and deterministic
// for an unmodified trie, but is defined by traversal, not by insertion
// order, and callers must not rely on it being sorted. Mutating the trie
// while an iterator over it is in progress is undefined.
type Iterator[V any] struct {
	stack []frame[V]
	key   string
	value V
}

// Items returns an iterator over all pairs whose key begins with prefix.
// A prefix matching no keys yields an exhausted iterator, not an error;
// the empty prefix enumerates the whole trie.
func (t *Trie[V]) Items(prefix string) *Iterator[V] {
	it := &Iterator[V]{}
	if start, ok := t.find(prefix, false); ok {
		it.stack = []frame[V]{{prefix: prefix, n: start}}
	}
	return it
}

// Keys is Items projected to the key component: the returned iterator is the
// same enumeration, read through Key.
func (t *Trie[V]) Keys(prefix string) *Iterator[V] {
	return t.Items(prefix)
}

// Values is the full enumeration projected to the value component.
func (t *Trie[V]) Values() *Iterator[V] {
	return t.Items("")
}

// Next advances to the next pair, reporting whether one was found. It pops
// pending frames until it reaches a node with a set value slot, pushing the
// children of every node it visits; children pushed later are therefore
// visited sooner.
func (it *Iterator[V]) Next() bool {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		for _, r := range top.n.edges() {
			it.stack = append(it.stack, frame[V]{prefix: top.prefix + string(r), n: top.n.child(r)})
		}
		if top.n.hasValue {
			it.key = top.prefix
			it.value = top.n.value
			return true
		}
	}
	return false
}

// Key returns the key of the current pair. Valid only after a Next call that
// returned true.
func (it *Iterator[V]) Key() string {
	return it.key
}

// Value returns the value of the current pair. Valid only after a Next call
// that returned true.
func (it *Iterator[V]) Value() V {
	return it.value
}

// Collect drains the iterator into a slice of pairs.
func (it *Iterator[V]) Collect() []Item[V] {
	var items []Item[V]
	for it.Next() {
		items = append(items, Item[V]{Key: it.key, Value: it.value})
	}
	return items
}

// CollectKeys drains the iterator into a slice of keys.
func (it *Iterator[V]) CollectKeys() []string {
	var keys []string
	for it.Next() {
		keys = append(keys, it.key)
	}
	return keys
}
