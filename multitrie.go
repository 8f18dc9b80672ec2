package multitrie

import (
	"cmp"
	"sort"
)

// MultiTrie is a prefix tree keyed by label paths where each node holds a
// multiset of values. The value multiset is kept as a slice in a
// deterministic order; multiset equality ignores that order. Labels must be
// ordered so that flat views and drawings are deterministic.
//
// The zero value is not usable; build tries with Empty, Singleton, Repeat,
// Top or FromPathValueList.
type MultiTrie[L cmp.Ordered, V any] struct {
	values []V
	// cyclic marks a value multiset that conceptually repeats forever.
	// Only Top sets it; see intersectValues.
	cyclic   bool
	children map[L]*MultiTrie[L, V]
}

// Empty returns the trie with no values and no children, the neutral
// element for Union.
func Empty[L cmp.Ordered, V any]() *MultiTrie[L, V] {
	return &MultiTrie[L, V]{}
}

// Singleton returns the trie holding exactly one value at the root.
func Singleton[L cmp.Ordered, V any](v V) *MultiTrie[L, V] {
	return &MultiTrie[L, V]{values: []V{v}}
}

// Repeat returns the structurally infinite trie in which every node holds
// exactly values and has a child under every label in labels, each child
// being the same node again. The result has a finite representation (every
// descendant is the root itself), so Lookup descends it to any depth, but
// full traversals (Size, CleanupEmpties, Union, ToFlatMap, the mapping
// functions) never terminate on it.
func Repeat[L cmp.Ordered, V any](labels []L, values []V) *MultiTrie[L, V] {
	t := &MultiTrie[L, V]{values: values}
	if len(labels) > 0 {
		t.children = make(map[L]*MultiTrie[L, V], len(labels))
		for _, l := range labels {
			t.children[l] = t
		}
	}
	return t
}

// Top returns the universal trie over the given finite label and value
// domains: every node has every label as a child and conceptually holds an
// infinite repeating cycle of every value. It is the neutral element for
// Intersection: Intersection(t, Top(...)) preserves t, values and
// multiplicities included, for any finite t over the same domains. The same
// traversal restrictions as Repeat apply.
func Top[L cmp.Ordered, V any](allLabels []L, allValues []V) *MultiTrie[L, V] {
	t := Repeat(allLabels, allValues)
	t.cyclic = true
	return t
}

// Values returns the value multiset at the root. For Top the returned slice
// is one period of the infinite cycle. The result must not be modified.
func (t *MultiTrie[L, V]) Values() []V {
	return t.values
}

// Lookup follows path label by label and returns the node it reaches. A
// label missing at any step yields Empty, never an error.
func (t *MultiTrie[L, V]) Lookup(path []L) *MultiTrie[L, V] {
	current := t
	for _, l := range path {
		next, ok := current.children[l]
		if !ok {
			return Empty[L, V]()
		}
		current = next
	}
	return current
}

// ValuesByPath returns the value multiset at the node path leads to.
func (t *MultiTrie[L, V]) ValuesByPath(path []L) []V {
	return t.Lookup(path).Values()
}

// IsNull reports whether the trie is structurally null: no values anywhere.
// A child that is the node itself (as built by Repeat/Top) is null exactly
// when the node is, so such self-cycles are skipped rather than recursed
// into; this keeps IsNull terminating on library-built infinite tries.
// Arbitrary deeper cycles are not detected.
func (t *MultiTrie[L, V]) IsNull() bool {
	if t == nil {
		return true
	}
	if len(t.values) > 0 {
		return false
	}
	for _, child := range t.children {
		if child == t {
			continue
		}
		if !child.IsNull() {
			return false
		}
	}
	return true
}

// Size returns the total number of values across all nodes. It must not be
// called on an infinite trie (Repeat/Top); it would not terminate.
func (t *MultiTrie[L, V]) Size() int {
	total := len(t.values)
	for _, child := range t.children {
		total += child.Size()
	}
	return total
}

// Update applies f to the node at path and rebuilds every ancestor with the
// modified subtree installed. Labels missing along path are created as Empty
// before f runs. If the transformed child comes back structurally null it is
// dropped from its parent's map; ancestors and siblings are not otherwise
// canonicalized (see CleanupEmpties).
func (t *MultiTrie[L, V]) Update(path []L, f func(*MultiTrie[L, V]) *MultiTrie[L, V]) *MultiTrie[L, V] {
	if len(path) == 0 {
		return f(t)
	}
	head := path[0]
	child, ok := t.children[head]
	if !ok {
		child = Empty[L, V]()
	}
	updated := child.Update(path[1:], f)
	children := make(map[L]*MultiTrie[L, V], len(t.children)+1)
	for l, c := range t.children {
		children[l] = c
	}
	if updated.IsNull() {
		delete(children, head)
	} else {
		children[head] = updated
	}
	return &MultiTrie[L, V]{values: t.values, cyclic: t.cyclic, children: children}
}

// Add returns the trie with v inserted into the root multiset.
func (t *MultiTrie[L, V]) Add(v V) *MultiTrie[L, V] {
	values := make([]V, 0, len(t.values)+1)
	values = append(values, v)
	values = append(values, t.values...)
	return &MultiTrie[L, V]{values: values, cyclic: t.cyclic, children: t.children}
}

// AddByPath returns the trie with v inserted into the multiset at path.
func (t *MultiTrie[L, V]) AddByPath(path []L, v V) *MultiTrie[L, V] {
	return t.Update(path, func(node *MultiTrie[L, V]) *MultiTrie[L, V] {
		return node.Add(v)
	})
}

// Replace returns the trie with the subtree at path replaced by sub.
func (t *MultiTrie[L, V]) Replace(path []L, sub *MultiTrie[L, V]) *MultiTrie[L, V] {
	return t.Update(path, func(*MultiTrie[L, V]) *MultiTrie[L, V] {
		return sub
	})
}

// Delete returns the trie with the subtree at path removed.
func (t *MultiTrie[L, V]) Delete(path []L) *MultiTrie[L, V] {
	return t.Replace(path, Empty[L, V]())
}

// Unite returns the trie with sub united into the subtree at path.
func (t *MultiTrie[L, V]) Unite(path []L, sub *MultiTrie[L, V]) *MultiTrie[L, V] {
	return t.Update(path, func(node *MultiTrie[L, V]) *MultiTrie[L, V] {
		return sub.Union(node)
	})
}

// Labels returns the node's child labels in ascending order.
func (t *MultiTrie[L, V]) Labels() []L {
	return t.sortedLabels()
}

// sortedLabels returns the node's child labels in ascending order.
func (t *MultiTrie[L, V]) sortedLabels() []L {
	labels := make([]L, 0, len(t.children))
	for l := range t.children {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
