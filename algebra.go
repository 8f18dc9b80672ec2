package multitrie

import "cmp"

// Union combines two tries node-wise: value multisets concatenate and child
// maps merge by label, recursing where both sides have the label. It is
// associative and commutative with Empty as the neutral element. Both
// operands must be finite.
func (t *MultiTrie[L, V]) Union(o *MultiTrie[L, V]) *MultiTrie[L, V] {
	if t == nil {
		return o
	}
	if o == nil {
		return t
	}
	return &MultiTrie[L, V]{
		values:   concatValues(t.values, o.values),
		cyclic:   t.cyclic || o.cyclic,
		children: unionChildren(t.children, o.children),
	}
}

// Intersection combines two tries node-wise: value multisets intersect with
// occurrences matched pairwise (a duplicate on one side needs a matching
// duplicate on the other) and only labels present in both child maps
// survive, recursing on the shared subtrees. Subtrees that come out
// structurally null are pruned, so the result is canonical. Top is the
// neutral element; at least one operand must be finite.
func Intersection[L cmp.Ordered, V comparable](p, q *MultiTrie[L, V]) *MultiTrie[L, V] {
	values, cyclic := intersectValues(p.values, p.cyclic, q.values, q.cyclic)
	return &MultiTrie[L, V]{
		values:   values,
		cyclic:   cyclic,
		children: intersectChildren(p.children, q.children, Intersection[L, V]),
	}
}

// IntersectAt returns t with sub intersected into the subtree at path.
func IntersectAt[L cmp.Ordered, V comparable](t *MultiTrie[L, V], path []L, sub *MultiTrie[L, V]) *MultiTrie[L, V] {
	return t.Update(path, func(node *MultiTrie[L, V]) *MultiTrie[L, V] {
		return Intersection(sub, node)
	})
}

// Pair is an ordered pair of values drawn from two tries.
type Pair[A, B any] struct {
	First  A
	Second B
}

// CartesianProduct pairs two tries path-wise: for every path s of p and t of
// q the result holds, at the concatenated path s·t, every value of p at s
// paired with every value of q at t. Size multiplies accordingly.
func CartesianProduct[L cmp.Ordered, V, W any](p *MultiTrie[L, V], q *MultiTrie[L, W]) *MultiTrie[L, Pair[V, W]] {
	return Flatten(Map(func(v V) *MultiTrie[L, Pair[V, W]] {
		return Map(func(w W) Pair[V, W] {
			return Pair[V, W]{First: v, Second: w}
		}, q)
	}, p))
}

// Flatten collapses a trie whose values are themselves tries: at every node
// the value tries are united together with the recursively flattened
// children. This is the monadic join for the container.
func Flatten[L cmp.Ordered, V any](t *MultiTrie[L, *MultiTrie[L, V]]) *MultiTrie[L, V] {
	result := Empty[L, V]()
	for _, sub := range t.values {
		result = result.Union(sub)
	}
	if len(t.children) > 0 {
		children := make(map[L]*MultiTrie[L, V], len(t.children))
		for l, c := range t.children {
			children[l] = Flatten(c)
		}
		result = result.Union(&MultiTrie[L, V]{children: children})
	}
	return result
}

// BindCartesian is the monadic bind: Flatten(Map(f, t)).
func BindCartesian[L cmp.Ordered, V, W any](t *MultiTrie[L, V], f func(V) *MultiTrie[L, W]) *MultiTrie[L, W] {
	return Flatten(Map(f, t))
}

// ApplyCartesian applies a trie of functions to a trie of values, combining
// children cartesian-style: every function at every path of ft is applied
// against the whole of xt and the results are flattened together.
func ApplyCartesian[L cmp.Ordered, V, W any](ft *MultiTrie[L, func(V) W], xt *MultiTrie[L, V]) *MultiTrie[L, W] {
	return Flatten(Map(func(f func(V) W) *MultiTrie[L, W] {
		return Map(f, xt)
	}, ft))
}

// ApplyUniting applies a trie of functions to a trie of values; node values
// combine by cartesian application while the children of the two operands
// merge by union.
func ApplyUniting[L cmp.Ordered, V, W any](ft *MultiTrie[L, func(V) W], xt *MultiTrie[L, V]) *MultiTrie[L, W] {
	return applyZippingChildren(unionChildren[L, W], ft, xt)
}

// ApplyIntersecting applies a trie of functions to a trie of values; node
// values combine by cartesian application while the children of the two
// operands merge by intersection.
func ApplyIntersecting[L cmp.Ordered, V any, W comparable](ft *MultiTrie[L, func(V) W], xt *MultiTrie[L, V]) *MultiTrie[L, W] {
	return applyZippingChildren(func(a, b map[L]*MultiTrie[L, W]) map[L]*MultiTrie[L, W] {
		return intersectChildren(a, b, Intersection[L, W])
	}, ft, xt)
}

// applyZippingChildren is the shared traversal behind the apply variants: it
// zips ft's children against the whole of xt and xt's children against the
// whole of ft, then merges the two resulting child maps with op.
func applyZippingChildren[L cmp.Ordered, V, W any](op func(a, b map[L]*MultiTrie[L, W]) map[L]*MultiTrie[L, W], ft *MultiTrie[L, func(V) W], xt *MultiTrie[L, V]) *MultiTrie[L, W] {
	var a, b map[L]*MultiTrie[L, W]
	if len(ft.children) > 0 {
		a = make(map[L]*MultiTrie[L, W], len(ft.children))
		for l, fc := range ft.children {
			a[l] = applyZippingChildren(op, fc, xt)
		}
	}
	if len(xt.children) > 0 {
		b = make(map[L]*MultiTrie[L, W], len(xt.children))
		for l, xc := range xt.children {
			b[l] = applyZippingChildren(op, ft, xc)
		}
	}
	return &MultiTrie[L, W]{
		values:   applyValues(ft.values, xt.values),
		children: op(a, b),
	}
}

// unionChildren merges two child maps by label, recursing Union where both
// sides have the label and keeping single-sided subtrees as-is.
func unionChildren[L cmp.Ordered, V any](a, b map[L]*MultiTrie[L, V]) map[L]*MultiTrie[L, V] {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[L]*MultiTrie[L, V], len(a)+len(b))
	for l, c := range a {
		out[l] = c
	}
	for l, c := range b {
		if existing, ok := out[l]; ok {
			out[l] = existing.Union(c)
		} else {
			out[l] = c
		}
	}
	return out
}

// intersectChildren keeps only labels present in both maps, combining the
// shared subtrees with merge and pruning results that come out null.
func intersectChildren[L cmp.Ordered, V any](a, b map[L]*MultiTrie[L, V], merge func(x, y *MultiTrie[L, V]) *MultiTrie[L, V]) map[L]*MultiTrie[L, V] {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	var out map[L]*MultiTrie[L, V]
	for l, ac := range a {
		bc, ok := b[l]
		if !ok {
			continue
		}
		merged := merge(ac, bc)
		if merged.IsNull() {
			continue
		}
		if out == nil {
			out = make(map[L]*MultiTrie[L, V])
		}
		out[l] = merged
	}
	return out
}
