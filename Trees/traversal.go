package Trees

import (
	Go_ADTs "github.com/g-m-twostay/go-adts"
	"github.com/g-m-twostay/go-adts/Queues"
)

// The traversals visit every node exactly once. f mustn't change links of the tree while a traversal is running.
// The iterative forms keep their own stacks, so they don't grow the call stack on degenerate trees; the recursive
// forms (suffix Rec) produce exactly the same sequences.

func preorder(n *Node, f func(*Node)) {
	var st []*Node
	for cur := n; ; {
		for ; cur != nil; cur = cur.l {
			f(cur)
			st = append(st, cur)
		}
		if len(st) == 0 {
			return
		}
		cur, st = st[len(st)-1].r, st[:len(st)-1]
	}
}

func inorder(n *Node, f func(*Node)) {
	var st []*Node
	for cur := n; ; {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		if len(st) == 0 {
			return
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		f(cur)
		cur = cur.r
	}
}

// postorder keeps, for each stacked node, whether it is visited for the first time (its right subtree is still to
// be descended) or the second time (ready to emit).
func postorder(n *Node, f func(*Node)) {
	var st []*Node
	var first Go_ADTs.BitStack
	leftmost := func(cur *Node) {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
			first.Push(true)
		}
	}
	for leftmost(n); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if fst, _ := first.Pop(); fst {
			st = append(st, top)
			first.Push(false)
			leftmost(top.r)
		} else {
			f(top)
		}
	}
}

func preorderRec(n *Node, f func(*Node)) {
	if n != nil {
		f(n)
		preorderRec(n.l, f)
		preorderRec(n.r, f)
	}
}

func inorderRec(n *Node, f func(*Node)) {
	if n != nil {
		inorderRec(n.l, f)
		f(n)
		inorderRec(n.r, f)
	}
}

func postorderRec(n *Node, f func(*Node)) {
	if n != nil {
		postorderRec(n.l, f)
		postorderRec(n.r, f)
		f(n)
	}
}

// collect runs walk over the tree, appending every visited node to items.
func (u *Tree) collect(walk func(*Node, func(*Node)), items []Item) []Item {
	walk(u.root, func(n *Node) {
		items = append(items, n.item())
	})
	return items
}

// PreOrder appends the items of the tree to items in node, left, right order and returns the extended slice.
// Time: O(n); Space: O(D)
func (u *Tree) PreOrder(items []Item) []Item {
	return u.collect(preorder, items)
}

// InOrder appends the items of the tree to items in left, node, right order, which is ascending key order.
// Time: O(n); Space: O(D)
func (u *Tree) InOrder(items []Item) []Item {
	return u.collect(inorder, items)
}

// PostOrder appends the items of the tree to items in left, right, node order.
// Time: O(n); Space: O(D)
func (u *Tree) PostOrder(items []Item) []Item {
	return u.collect(postorder, items)
}

// PreOrderRec [Tree.PreOrder]. Recursive.
func (u *Tree) PreOrderRec(items []Item) []Item {
	return u.collect(preorderRec, items)
}

// InOrderRec [Tree.InOrder]. Recursive.
func (u *Tree) InOrderRec(items []Item) []Item {
	return u.collect(inorderRec, items)
}

// PostOrderRec [Tree.PostOrder]. Recursive.
func (u *Tree) PostOrderRec(items []Item) []Item {
	return u.collect(postorderRec, items)
}

// Levels returns the items of the tree grouped by depth, root first, each level from left to right.
// Time: O(n); Space: O(n)
func (u *Tree) Levels() [][]Item {
	var levels [][]Item
	if u.root == nil {
		return levels
	}
	q := Queues.MakeArrayQueue[*Node](1)
	q.Push(u.root)
	for !q.Empty() {
		level := make([]Item, 0, q.Size())
		for i := q.Size(); i > 0; i-- {
			n, _ := q.Pop()
			level = append(level, n.item())
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
		levels = append(levels, level)
	}
	return levels
}

// LevelOrder appends the items of the tree to items breadth first.
func (u *Tree) LevelOrder(items []Item) []Item {
	for _, level := range u.Levels() {
		items = append(items, level...)
	}
	return items
}
