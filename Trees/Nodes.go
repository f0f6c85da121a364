package Trees

// Node in the Tree. Each node exclusively owns its two subtrees; a nil link is an empty subtree.
// Nodes are only created and released by the Tree's allocator, so the zero value is what the allocator hands out.
type Node struct {
	Key   byte
	Value int
	l, r  *Node
}

// Item is the key value pair of a Node as seen by callers of the traversals.
type Item struct {
	Key   byte
	Value int
}

func (n *Node) item() Item {
	return Item{n.Key, n.Value}
}

// count nodes in the subtree rooting at n. Recursive.
func count(n *Node) uint {
	if n == nil {
		return 0
	}
	return count(n.l) + count(n.r) + 1
}
