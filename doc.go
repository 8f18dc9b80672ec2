/*
Package multitrie provides a prefix tree whose every node carries a multiset
of values rather than a single terminal marker. Nodes are addressed by paths
(ordered sequences of labels) and the container supports a full algebra:
union, intersection, cartesian product, structural mapping, and flatten/bind
for nested multi-tries.

All operations are purely functional: they consume one or two tries and
return a new one, never mutating their operands, so tries may be shared
freely without locking. Repeat and Top build structurally infinite tries;
see their documentation for which operations must not be called on them.
*/
package multitrie
