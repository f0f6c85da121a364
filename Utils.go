/*
Package Go_ADTs holds the low level pieces shared by the tree and table packages: node allocators and a packed bool stack.

Sub-packages:
  - Trees: keyed binary search tree with traversals and a rebuild based balancer.
  - Maps/ChainTable: fixed bucket count hash table with explicit chaining.
  - Queues: growable circular array queue.
  - Tally: character and word frequency counting built on the above.
*/
package Go_ADTs

import "golang.org/x/exp/constraints"

func Max[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Mid of the inclusive range [a,b], rounded toward a. Equivalent to (a+b)/2 for non-negative a<=b but doesn't overflow.
func Mid[T constraints.Integer](a, b T) T {
	return a + (b-a)/2
}
