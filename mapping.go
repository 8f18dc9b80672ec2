package multitrie

import "cmp"

// Map applies f to every value at every node, preserving structure and
// multiplicities.
func Map[L cmp.Ordered, V, W any](f func(V) W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	return MapContainers(func(values []V) []W {
		if len(values) == 0 {
			return nil
		}
		out := make([]W, len(values))
		for i, v := range values {
			out[i] = f(v)
		}
		return out
	}, t)
}

// MapWithPath is Map with f also receiving the full path of the node whose
// value is being transformed.
func MapWithPath[L cmp.Ordered, V, W any](f func(path []L, v V) W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	return MapContainersWithPath(func(path []L, values []V) []W {
		if len(values) == 0 {
			return nil
		}
		out := make([]W, len(values))
		for i, v := range values {
			out[i] = f(path, v)
		}
		return out
	}, t)
}

// MapAll treats fs as a multiset of functions: at every node each function
// is applied to each value, so the result multiset has len(fs)*len(values)
// elements.
func MapAll[L cmp.Ordered, V, W any](fs []func(V) W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	return MapContainers(func(values []V) []W {
		return applyValues(fs, values)
	}, t)
}

// MapAllWithPath is MapAll with each function also receiving the node path.
func MapAllWithPath[L cmp.Ordered, V, W any](fs []func(path []L, v V) W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	return MapContainersWithPath(func(path []L, values []V) []W {
		if len(fs) == 0 || len(values) == 0 {
			return nil
		}
		out := make([]W, 0, len(fs)*len(values))
		for _, f := range fs {
			for _, v := range values {
				out = append(out, f(path, v))
			}
		}
		return out
	}, t)
}

// MapContainers is the traversal skeleton shared by the mapping functions:
// g replaces each node's whole value multiset, children recurse
// structurally. Must not be called on an infinite trie.
func MapContainers[L cmp.Ordered, V, W any](g func([]V) []W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	var children map[L]*MultiTrie[L, W]
	if len(t.children) > 0 {
		children = make(map[L]*MultiTrie[L, W], len(t.children))
		for l, c := range t.children {
			children[l] = MapContainers(g, c)
		}
	}
	return &MultiTrie[L, W]{values: g(t.values), children: children}
}

// MapContainersWithPath is MapContainers with g also receiving the node
// path. The path slice is reused across siblings; g must copy it if it
// retains it.
func MapContainersWithPath[L cmp.Ordered, V, W any](g func([]L, []V) []W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	return mapContainersAt(nil, g, t)
}

func mapContainersAt[L cmp.Ordered, V, W any](path []L, g func([]L, []V) []W, t *MultiTrie[L, V]) *MultiTrie[L, W] {
	var children map[L]*MultiTrie[L, W]
	if len(t.children) > 0 {
		children = make(map[L]*MultiTrie[L, W], len(t.children))
		for l, c := range t.children {
			children[l] = mapContainersAt(append(path, l), g, c)
		}
	}
	return &MultiTrie[L, W]{values: g(path, t.values), children: children}
}
