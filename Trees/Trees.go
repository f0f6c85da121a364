// Package Trees implements a binary search tree keyed by single bytes with int values.
//
// Receivers that have a bool as a second return value indicate whether the first return value is defined. Methods
// implemented recursively are noted, otherwise they are implemented iteratively. Recursion depth is bounded by the
// height of the tree, which can't exceed 256 since keys are bytes.
//
// Besides search, insert, delete and dispose, the tree offers the three depth first traversals in both an iterative
// and a recursive form, a breadth first traversal, and Balance, which rebuilds a height balanced tree from the
// existing nodes.
package Trees
