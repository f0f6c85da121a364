package Trees

import (
	Go_ADTs "github.com/g-m-twostay/go-adts"
)

// Tree is a binary search tree with unique byte keys and int values. For every node, all keys in its left subtree
// are less than its key, and all keys in its right subtree are greater.
// The tree owns every reachable node: nodes come from the allocator on Insert and go back to it on Delete and
// Dispose, each exactly once. The zero value is an empty tree using the heap allocator.
// Tree isn't safe for concurrent use.
type Tree struct {
	root  *Node
	alloc Go_ADTs.Allocator[Node]
	sz    uint
}

// New empty tree taking its nodes from a. A nil a means Go_ADTs.Heap.
func New(a Go_ADTs.Allocator[Node]) *Tree {
	return &Tree{alloc: a}
}

func (u *Tree) allocator() Go_ADTs.Allocator[Node] {
	if u.alloc == nil {
		return Go_ADTs.Heap[Node]{}
	}
	return u.alloc
}

// Init sets the tree to empty. Calling Init on a non-empty tree drops its nodes without freeing them; call Dispose
// instead if the tree may hold nodes.
func (u *Tree) Init() {
	u.root, u.sz = nil, 0
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *Tree) Size() uint {
	return u.sz
}

// Empty reports whether the tree has no nodes.
func (u *Tree) Empty() bool {
	return u.root == nil
}

// Search returns the value stored under k. The second return value is false if k isn't in the tree, in which case
// the first one is 0.
// Time: O(D); Space: O(1)
func (u *Tree) Search(k byte) (int, bool) {
	for cur := u.root; cur != nil; {
		if k < cur.Key {
			cur = cur.l
		} else if k == cur.Key {
			return cur.Value, true
		} else {
			cur = cur.r
		}
	}
	return 0, false
}

// Has reports whether k is in the tree.
func (u *Tree) Has(k byte) bool {
	_, ok := u.Search(k)
	return ok
}

// Insert v under k. If k is already in the tree its value is replaced in place and Insert returns false. Otherwise a
// new leaf is linked where the ordering demands and Insert returns true. If the allocator fails, the tree is left
// unchanged and Insert returns false.
// Time: O(D); Space: O(1)
func (u *Tree) Insert(k byte, v int) bool {
	link := &u.root
	for cur := *link; cur != nil; cur = *link {
		if k < cur.Key {
			link = &cur.l
		} else if k == cur.Key {
			cur.Value = v
			return false
		} else {
			link = &cur.r
		}
	}
	n := u.allocator().Alloc()
	if n == nil {
		return false
	}
	n.Key, n.Value = k, v
	*link = n
	u.sz++
	return true
}

// Delete the node with key k. Returns false if there is no such node.
// A node with at most one child is replaced by that child. A node with two children takes the key and value of its
// in-order predecessor, the rightmost node of its left subtree, which is then removed instead.
// Time: O(D); Space: O(1)
func (u *Tree) Delete(k byte) bool {
	link := &u.root
	for *link != nil && (*link).Key != k {
		if k < (*link).Key {
			link = &(*link).l
		} else {
			link = &(*link).r
		}
	}
	target := *link
	if target == nil {
		return false
	}
	if target.l != nil && target.r != nil {
		u.replaceByRightmost(target, &target.l)
		return true
	}
	if target.l == nil {
		*link = target.r
	} else {
		*link = target.l
	}
	u.free(target)
	return true
}

// replaceByRightmost copies the key and value of the rightmost node of the subtree *sub into target, then unlinks
// that node, hanging its left child where it was, and frees it. *sub mustn't be nil.
func (u *Tree) replaceByRightmost(target *Node, sub **Node) {
	for (*sub).r != nil {
		sub = &(*sub).r
	}
	found := *sub
	target.Key, target.Value = found.Key, found.Value
	*sub = found.l
	u.free(found)
}

func (u *Tree) free(n *Node) {
	u.allocator().Free(n)
	u.sz--
}

// Dispose frees every node and leaves the tree as after Init. Uses an explicit stack of pending right subtrees, so
// it doesn't recurse.
// Time: O(n); Space: O(D)
func (u *Tree) Dispose() {
	a := u.allocator()
	var st []*Node
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur == nil {
			cur, st = st[len(st)-1], st[:len(st)-1]
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
		next := cur.l
		a.Free(cur)
		cur = next
	}
	u.root, u.sz = nil, 0
}

// DisposeRec does the same as Dispose. Recursive, freeing children before their parent.
func (u *Tree) DisposeRec() {
	var dispose func(*Node)
	a := u.allocator()
	dispose = func(n *Node) {
		if n != nil {
			dispose(n.l)
			dispose(n.r)
			a.Free(n)
		}
	}
	dispose(u.root)
	u.root, u.sz = nil, 0
}

// Minimum key of the tree and its value.
// Time: O(D); Space: O(1)
func (u *Tree) Minimum() (Item, bool) {
	if cur := u.root; cur == nil {
		return Item{}, false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.item(), true
	}
}

// Maximum key of the tree and its value.
// Time: O(D); Space: O(1)
func (u *Tree) Maximum() (Item, bool) {
	if cur := u.root; cur == nil {
		return Item{}, false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.item(), true
	}
}

func (u *Tree) maxDepth(c *Node, cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return Go_ADTs.Max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// Height is the number of nodes on the longest root to leaf path; 0 for an empty tree. Recursive.
func (u *Tree) Height() uint {
	return u.maxDepth(u.root, 1)
}

func (u *Tree) minDepth(c *Node, cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return Go_ADTs.Min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth is the number of nodes on the shortest path from the root to a missing child. Recursive.
func (u *Tree) MinDepth() uint {
	return u.minDepth(u.root, 1)
}

// Corrupt reports whether some node breaks the ordering of keys. Recursive.
func (u *Tree) Corrupt() bool {
	var corrupt func(n *Node, lo, hi int) bool
	corrupt = func(n *Node, lo, hi int) bool {
		if n == nil {
			return false
		}
		if k := int(n.Key); k <= lo || k >= hi {
			return true
		} else {
			return corrupt(n.l, lo, k) || corrupt(n.r, k, hi)
		}
	}
	return corrupt(u.root, -1, 1<<8)
}

// Balanced reports whether the heights of the two subtrees of every node differ by at most one. Recursive.
func (u *Tree) Balanced() bool {
	var height func(*Node) int // -1 once unbalanced
	height = func(n *Node) int {
		if n == nil {
			return 0
		}
		lh, rh := height(n.l), height(n.r)
		if lh < 0 || rh < 0 || lh-rh > 1 || rh-lh > 1 {
			return -1
		}
		return Go_ADTs.Max(lh, rh) + 1
	}
	return height(u.root) >= 0
}
