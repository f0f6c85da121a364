package Trees

import (
	Go_ADTs "github.com/g-m-twostay/go-adts"
)

// build a tree over nodes[start:end+1], which must be sorted by key, and return its root. The lower middle node
// becomes the root so that the heights of the two halves differ by at most one. Recursive.
func build(nodes []*Node, start, end int) *Node {
	if start > end {
		return nil
	}
	mid := Go_ADTs.Mid(start, end)
	root := nodes[mid]
	root.l = build(nodes, start, mid-1)
	root.r = build(nodes, mid+1, end)
	return root
}

// Balance rebuilds the tree so that for every node the heights of its two subtrees differ by at most one.
// The nodes are collected in order into a temporary buffer and relinked, so no node is created or freed and every
// key keeps its value. Does nothing on a nil or empty tree.
// Time: O(n); Space: O(n)
func (u *Tree) Balance() {
	if u == nil || u.root == nil {
		return
	}
	nodes := make([]*Node, 0, count(u.root))
	inorder(u.root, func(n *Node) {
		nodes = append(nodes, n)
	})
	u.root = build(nodes, 0, len(nodes)-1)
}
