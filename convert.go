package multitrie

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// PathValues associates a full path with the value multiset found at that
// node.
type PathValues[L cmp.Ordered, V any] struct {
	Path   []L
	Values []V
}

// PathValue is a single path/value pair, the input shape for
// FromPathValueList.
type PathValue[L cmp.Ordered, V any] struct {
	Path  []L
	Value V
}

// ToFlatMap returns the flat view of the trie: one entry per node that
// actually holds values, in lexicographic path order. Empty-valued
// intermediate nodes are omitted. Must not be called on an infinite trie.
func (t *MultiTrie[L, V]) ToFlatMap() []PathValues[L, V] {
	var out []PathValues[L, V]
	t.flattenInto(nil, &out)
	return out
}

func (t *MultiTrie[L, V]) flattenInto(path []L, out *[]PathValues[L, V]) {
	if len(t.values) > 0 {
		var p []L
		if len(path) > 0 {
			p = make([]L, len(path))
			copy(p, path)
		}
		*out = append(*out, PathValues[L, V]{Path: p, Values: t.values})
	}
	for _, l := range t.sortedLabels() {
		t.children[l].flattenInto(append(path, l), out)
	}
}

// FromPathValueList folds AddByPath over pairs starting from Empty. Pairs
// sharing a path accumulate into the same multiset rather than overwriting.
func FromPathValueList[L cmp.Ordered, V any](pairs []PathValue[L, V]) *MultiTrie[L, V] {
	t := Empty[L, V]()
	for _, p := range pairs {
		t = t.AddByPath(p.Path, p.Value)
	}
	return t
}

// CleanupEmpties prunes every structurally null subtree, producing the
// canonical minimal representation of a finite trie. Must not be called on
// an infinite trie.
func (t *MultiTrie[L, V]) CleanupEmpties() *MultiTrie[L, V] {
	var children map[L]*MultiTrie[L, V]
	for l, c := range t.children {
		cleaned := c.CleanupEmpties()
		if cleaned.IsNull() {
			continue
		}
		if children == nil {
			children = make(map[L]*MultiTrie[L, V])
		}
		children[l] = cleaned
	}
	return &MultiTrie[L, V]{values: t.values, cyclic: t.cyclic, children: children}
}

// DisplayTree renders the trie as a printable tree, label branches
// alternating with value-multiset nodes. Children that point back at their
// own node (Repeat/Top) are shown as "..." so drawing always terminates on
// library-built tries.
func (t *MultiTrie[L, V]) DisplayTree() treeprint.Tree {
	tree := treeprint.NewWithRoot(formatValues(t.values, t.cyclic))
	t.drawInto(tree)
	return tree
}

// Draw returns the rendered display tree.
func (t *MultiTrie[L, V]) Draw() string {
	return t.DisplayTree().String()
}

func (t *MultiTrie[L, V]) drawInto(tree treeprint.Tree) {
	for _, l := range t.sortedLabels() {
		child := t.children[l]
		branch := tree.AddBranch(fmt.Sprintf("%v", l))
		if child == t {
			branch.AddNode("...")
			continue
		}
		branch.AddNode(formatValues(child.values, child.cyclic))
		child.drawInto(branch)
	}
}

func formatValues[V any](values []V, cyclic bool) string {
	if cyclic {
		return fmt.Sprintf("cycle%v", values)
	}
	return fmt.Sprintf("%v", values)
}
