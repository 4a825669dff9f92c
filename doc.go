/*
Package trie provides a prefix tree mapping string keys to values of any
type. It supports the usual key/value operations, lazy enumeration of all
entries sharing a prefix, and an optional key-folding wrapper for
diacritic-insensitive lookups.
*/
package trie
