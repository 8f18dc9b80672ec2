package multitrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathOf(labels ...string) []string { return labels }

func TestConstructors(t *testing.T) {
	t.Run("Empty is null and has no values", func(t *testing.T) {
		e := Empty[string, int]()
		assert.True(t, e.IsNull())
		assert.Empty(t, e.Values())
		assert.Equal(t, 0, e.Size())
	})

	t.Run("Singleton holds one value at the root", func(t *testing.T) {
		s := Singleton[string](42)
		assert.False(t, s.IsNull())
		assert.Equal(t, []int{42}, s.Values())
		assert.Equal(t, 1, s.Size())
	})

	t.Run("Repeat descends to any depth", func(t *testing.T) {
		r := Repeat([]string{"a", "b"}, []int{7})
		deep := r.Lookup(pathOf("a", "b", "a", "a", "b"))
		assert.Equal(t, []int{7}, deep.Values())
		assert.False(t, r.IsNull())
	})

	t.Run("Repeat with no values is null", func(t *testing.T) {
		r := Repeat[string, int]([]string{"a"}, nil)
		assert.True(t, r.IsNull())
	})

	t.Run("Top descends under every label", func(t *testing.T) {
		top := Top([]string{"x", "y"}, []int{1, 2})
		assert.Equal(t, []int{1, 2}, top.Lookup(pathOf("y", "x", "y")).Values())
	})
}

func TestLookup(t *testing.T) {
	tr := FromPathValueList([]PathValue[string, int]{
		{Path: pathOf("a", "b"), Value: 1},
		{Path: pathOf("a"), Value: 2},
	})

	t.Run("follows paths", func(t *testing.T) {
		assert.Equal(t, []int{1}, tr.Lookup(pathOf("a", "b")).Values())
		assert.Equal(t, []int{2}, tr.Lookup(pathOf("a")).Values())
	})

	t.Run("missing labels yield Empty, not an error", func(t *testing.T) {
		assert.True(t, tr.Lookup(pathOf("nope")).IsNull())
		assert.True(t, tr.Lookup(pathOf("a", "b", "c", "d")).IsNull())
	})

	t.Run("empty path is the root", func(t *testing.T) {
		assert.Same(t, tr, tr.Lookup(nil))
	})
}

func TestMutators(t *testing.T) {
	t.Run("Add prepends into the root multiset", func(t *testing.T) {
		tr := Singleton[string](1).Add(2)
		assert.Equal(t, []int{2, 1}, tr.Values())
	})

	t.Run("AddByPath creates missing intermediate nodes", func(t *testing.T) {
		tr := Empty[string, int]().AddByPath(pathOf("a", "b", "c"), 9)
		assert.Equal(t, []int{9}, tr.ValuesByPath(pathOf("a", "b", "c")))
		assert.Empty(t, tr.ValuesByPath(pathOf("a", "b")))
	})

	t.Run("operands are never mutated", func(t *testing.T) {
		orig := Singleton[string](1)
		_ = orig.AddByPath(pathOf("x"), 2)
		_ = orig.Add(5)
		assert.Equal(t, []int{1}, orig.Values())
		assert.True(t, orig.Lookup(pathOf("x")).IsNull())
	})

	t.Run("Replace swaps in a subtree", func(t *testing.T) {
		tr := Singleton[string](1).Replace(pathOf("a"), Singleton[string](2))
		assert.Equal(t, []int{2}, tr.ValuesByPath(pathOf("a")))
	})

	t.Run("Delete leaves a null node at the path", func(t *testing.T) {
		tr := FromPathValueList([]PathValue[string, int]{
			{Path: pathOf("a", "b"), Value: 1},
			{Path: pathOf("a"), Value: 2},
		})
		deleted := tr.Delete(pathOf("a", "b"))
		assert.True(t, deleted.Lookup(pathOf("a", "b")).IsNull())
		assert.Equal(t, []int{2}, deleted.ValuesByPath(pathOf("a")))
	})

	t.Run("Delete of the whole value chain prunes it", func(t *testing.T) {
		tr := Empty[string, int]().AddByPath(pathOf("a", "b"), 1)
		deleted := tr.Delete(pathOf("a", "b"))
		assert.True(t, deleted.IsNull())
		assert.True(t, deleted.Lookup(pathOf("a")).IsNull())
	})

	t.Run("Unite merges a subtree in place", func(t *testing.T) {
		tr := Empty[string, int]().AddByPath(pathOf("a"), 1)
		sub := Singleton[string](2).AddByPath(pathOf("b"), 3)
		united := tr.Unite(pathOf("a"), sub)
		assert.ElementsMatch(t, []int{1, 2}, united.ValuesByPath(pathOf("a")))
		assert.Equal(t, []int{3}, united.ValuesByPath(pathOf("a", "b")))
	})

	t.Run("IntersectAt narrows a subtree in place", func(t *testing.T) {
		tr := Empty[string, int]().AddByPath(pathOf("a"), 1).AddByPath(pathOf("a"), 2)
		narrowed := IntersectAt(tr, pathOf("a"), Singleton[string](2))
		assert.Equal(t, []int{2}, narrowed.ValuesByPath(pathOf("a")))
	})
}

func TestSize(t *testing.T) {
	tr := FromPathValueList([]PathValue[string, int]{
		{Path: pathOf("a"), Value: 1},
		{Path: pathOf("a"), Value: 1},
		{Path: pathOf("b"), Value: 2},
	})
	require.Equal(t, 3, tr.Size())
	assert.Equal(t, []int{1, 1}, tr.ValuesByPath(pathOf("a")))
}

func TestIsNullSkipsSelfCycles(t *testing.T) {
	// Update's pruning decision calls IsNull on whatever the transform
	// returned, so IsNull has to terminate on Repeat-built nodes.
	tr := Singleton[string](1).Update(pathOf("a"), func(*MultiTrie[string, int]) *MultiTrie[string, int] {
		return Repeat([]string{"x"}, []int{5})
	})
	assert.Equal(t, []int{5}, tr.ValuesByPath(pathOf("a", "x", "x")))

	pruned := Singleton[string](1).Update(pathOf("a"), func(*MultiTrie[string, int]) *MultiTrie[string, int] {
		return Repeat[string, int]([]string{"x"}, nil)
	})
	assert.True(t, pruned.Lookup(pathOf("a")).IsNull())
}

func TestUpdateDoesNotCanonicalizeSiblings(t *testing.T) {
	// Update prunes only the child it rebuilt; a pre-existing null sibling
	// subtree stays until CleanupEmpties.
	junk := &MultiTrie[string, int]{children: map[string]*MultiTrie[string, int]{
		"z": Empty[string, int](),
	}}
	require.True(t, junk.IsNull())
	tr := &MultiTrie[string, int]{
		values:   []int{1},
		children: map[string]*MultiTrie[string, int]{"j": junk},
	}

	updated := tr.AddByPath(pathOf("a"), 2)
	_, stillThere := updated.Lookup(pathOf("j")).children["z"]
	assert.True(t, stillThere)

	clean := updated.CleanupEmpties()
	assert.True(t, clean.Lookup(pathOf("j")).IsNull())
	assert.NotContains(t, clean.children, "j")
}
