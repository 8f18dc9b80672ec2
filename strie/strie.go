/*
Package strie adapts the multi-trie to string keys: words are segmented into
rune paths, with optional unicode normalisation and case folding so that
spelling variants of the same word accumulate in one multiset.
*/
package strie

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/xlab/treeprint"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sarthakjha889/go-multitrie"
)

// Trie stores multisets of values of type V under string keys. It is a
// mutable facade over the immutable core: every mutation swaps in a freshly
// derived trie. Not safe for concurrent use.
type Trie[V any] struct {
	t                         *multitrie.MultiTrie[rune, V]
	normalised, caseSensitive bool
}

// New creates an empty string trie. By default keys are normalised (Jurg
// and Jürg address the same node) and case insensitive.
func New[V any]() *Trie[V] {
	return &Trie[V]{
		t:          multitrie.Empty[rune, V](),
		normalised: true,
	}
}

// WithNormalisation sets the trie to strip combining marks from keys.
func (t *Trie[V]) WithNormalisation() *Trie[V] {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the trie to use keys byte-for-byte.
func (t *Trie[V]) WithoutNormalisation() *Trie[V] {
	t.normalised = false
	return t
}

// CaseSensitive sets the trie to distinguish key case.
func (t *Trie[V]) CaseSensitive() *Trie[V] {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the trie to fold key case.
func (t *Trie[V]) CaseInsensitive() *Trie[V] {
	t.caseSensitive = false
	return t
}

// Add inserts v into the multiset stored under word.
func (t *Trie[V]) Add(word string, v V) {
	t.t = t.t.AddByPath(t.path(word), v)
}

// Values returns the multiset stored under word.
func (t *Trie[V]) Values(word string) []V {
	return t.t.ValuesByPath(t.path(word))
}

// Delete removes the subtree under word, including any longer words that
// extend it.
func (t *Trie[V]) Delete(word string) {
	t.t = t.t.Delete(t.path(word))
}

// Merge unites another string trie into this one. The other trie should use
// the same normalisation settings or keys will not line up.
func (t *Trie[V]) Merge(o *Trie[V]) {
	t.t = t.t.Union(o.t)
}

// Size returns the total number of values stored.
func (t *Trie[V]) Size() int {
	return t.t.Size()
}

// Draw renders the underlying trie for debugging, with labels shown as
// characters rather than rune code points.
func (t *Trie[V]) Draw() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%v", t.t.Values()))
	drawInto(tree, t.t)
	return tree.String()
}

func drawInto[V any](tree treeprint.Tree, node *multitrie.MultiTrie[rune, V]) {
	for _, r := range node.Labels() {
		child := node.Lookup([]rune{r})
		branch := tree.AddBranch(string(r))
		branch.AddNode(fmt.Sprintf("%v", child.Values()))
		drawInto(branch, child)
	}
}

// MultiTrie exposes the current underlying immutable trie.
func (t *Trie[V]) MultiTrie() *multitrie.MultiTrie[rune, V] {
	return t.t
}

func (t *Trie[V]) path(word string) []rune {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !t.caseSensitive {
		word = strings.ToLower(word)
	}
	return []rune(word)
}
