package trie

import "sort"

// node is a single branching point in a Trie. Its children map one rune each
// to the subtree below, and its value slot is explicitly tagged: hasValue
// distinguishes "a key ends here" from "branch point only", so a stored zero
// value is never mistaken for absence.
type node[V any] struct {
	children map[rune]*node[V]
	value    V
	hasValue bool
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[rune]*node[V])}
}

// child returns the child reached over r, or nil if no such edge exists.
func (n *node[V]) child(r rune) *node[V] {
	return n.children[r]
}

// childOrCreate returns the child reached over r, creating and linking an
// empty node first if the edge does not exist. Used only by insert paths.
func (n *node[V]) childOrCreate(r rune) *node[V] {
	child, ok := n.children[r]
	if !ok {
		child = newNode[V]()
		n.children[r] = child
	}
	return child
}

func (n *node[V]) setValue(v V) {
	n.value = v
	n.hasValue = true
}

// clearValue unsets the value slot. Clearing an already unset slot is a no-op.
func (n *node[V]) clearValue() {
	var zero V
	n.value = zero
	n.hasValue = false
}

// edges returns the outgoing runes in ascending order. Map range order would
// differ between two walks of the same tree, so enumeration sorts here to
// keep its order deterministic for an unmodified trie.
func (n *node[V]) edges() []rune {
	rs := make([]rune, 0, len(n.children))
	for r := range n.children {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}
