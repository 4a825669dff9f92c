package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folded wraps a Trie and folds every key before delegating: keys are
// decomposed, stripped of combining marks, recomposed and lower-cased, so
// that "Jürgen" and "jurgen" address the same entry. The wrapped trie stores
// and enumerates the folded form; the core Trie itself never normalises.
type Folded[V any] struct {
	trie *Trie[V]
}

// NewFolded creates an empty key-folding trie.
func NewFolded[V any]() *Folded[V] {
	return &Folded[V]{trie: New[V]()}
}

// foldKey strips diacritics and lower-cases. A key the transformer rejects
// is used as-is, matching how the wrapped trie would treat any other
// uninterpreted rune sequence.
func foldKey(key string) string {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(transformer, key)
	if err != nil {
		return strings.ToLower(key)
	}
	return strings.ToLower(folded)
}

// Get returns the value mapped to the folded key.
func (f *Folded[V]) Get(key string) (V, error) {
	return f.trie.Get(foldKey(key))
}

// Set maps the folded key to value.
func (f *Folded[V]) Set(key string, value V) {
	f.trie.Set(foldKey(key), value)
}

// Delete removes the value mapped to the folded key.
func (f *Folded[V]) Delete(key string) error {
	return f.trie.Delete(foldKey(key))
}

// Contains reports whether the folded key is mapped to a value.
func (f *Folded[V]) Contains(key string) bool {
	return f.trie.Contains(foldKey(key))
}

// Len returns the number of distinct folded keys mapped to a value.
func (f *Folded[V]) Len() int {
	return f.trie.Len()
}

// Transform applies update under the folded key, as Trie.Transform does.
func (f *Folded[V]) Transform(key string, update func(V) V, fallback V) {
	f.trie.Transform(foldKey(key), update, fallback)
}

// Items enumerates pairs whose folded key begins with the folded prefix.
// Keys are yielded in their folded form.
func (f *Folded[V]) Items(prefix string) *Iterator[V] {
	return f.trie.Items(foldKey(prefix))
}

// Keys is Items projected to the key component.
func (f *Folded[V]) Keys(prefix string) *Iterator[V] {
	return f.trie.Keys(foldKey(prefix))
}

// Unwrap returns the underlying trie, which holds the folded keys.
func (f *Folded[V]) Unwrap() *Trie[V] {
	return f.trie
}
