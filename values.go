package multitrie

// Multiset helpers over value slices. A slice paired with a cyclic flag
// models either a finite multiset or one period of an infinitely repeating
// one (Top's value cycle).

func concatValues[V any](a, b []V) []V {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]V, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// intersectValues computes the multiset intersection of a and b: each value
// of a is kept once per matching occurrence still available in b, so
// duplicates match pairwise rather than collapsing to set membership. A
// cyclic side offers every value of its base with unbounded multiplicity.
func intersectValues[V comparable](a []V, aCyclic bool, b []V, bCyclic bool) ([]V, bool) {
	switch {
	case aCyclic && bCyclic:
		kept, _ := intersectValues(a, false, b, true)
		return kept, true
	case bCyclic:
		return keepMembers(a, b), false
	case aCyclic:
		return keepMembers(b, a), false
	}
	remaining := make(map[V]int, len(b))
	for _, v := range b {
		remaining[v]++
	}
	var out []V
	for _, v := range a {
		if remaining[v] > 0 {
			remaining[v]--
			out = append(out, v)
		}
	}
	return out, false
}

// keepMembers keeps each occurrence in a whose value appears anywhere in b.
func keepMembers[V comparable](a, b []V) []V {
	present := make(map[V]struct{}, len(b))
	for _, v := range b {
		present[v] = struct{}{}
	}
	var out []V
	for _, v := range a {
		if _, ok := present[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// applyValues is the cartesian application fs <*> xs: every function applied
// to every value, functions outermost.
func applyValues[V, W any](fs []func(V) W, xs []V) []W {
	if len(fs) == 0 || len(xs) == 0 {
		return nil
	}
	out := make([]W, 0, len(fs)*len(xs))
	for _, f := range fs {
		for _, x := range xs {
			out = append(out, f(x))
		}
	}
	return out
}
