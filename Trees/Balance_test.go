package Trees

import (
	"math/bits"
	"slices"
	"testing"

	Go_ADTs "github.com/g-m-twostay/go-adts"
)

func TestTree_Balance_Chain(t *testing.T) {
	tree := New(nil)
	for k := byte(1); k <= 7; k++ {
		tree.Insert(k, int(k)*10)
	}
	if tree.Height() != 7 {
		t.Fatalf("chain height is %d, want 7", tree.Height())
	}
	tree.Balance()
	if pre := tree.PreOrder(nil); pre[0].Key != 4 {
		t.Errorf("root is %d, want 4", pre[0].Key)
	}
	if tree.Height() != 3 {
		t.Errorf("balanced height is %d, want 3", tree.Height())
	}
	if got := keys(tree.PreOrder(nil)); !slices.Equal(got, []byte{4, 2, 1, 3, 6, 5, 7}) {
		t.Errorf("pre-order after balance is %v", got)
	}
}

func TestTree_Balance(t *testing.T) {
	for range 100 {
		alloc := &Go_ADTs.Counting[Node]{}
		tree := New(alloc)
		for range rg.Intn(2 * tKeyRange) {
			tree.Insert(byte(rg.Intn(256)), rg.Intn(tValueRange))
		}
		before, allocs := tree.InOrder(nil), alloc.Allocs
		uh := tree.Height()
		tree.Balance()
		if after := tree.InOrder(nil); !slices.Equal(before, after) {
			t.Fatalf("balance changed the content: %v, %v", before, after)
		}
		if alloc.Allocs != allocs || alloc.Frees != 0 {
			t.Fatalf("balance allocated %d and freed %d nodes", alloc.Allocs-allocs, alloc.Frees)
		}
		if !tree.Balanced() || tree.Corrupt() {
			t.Fatalf("tree isn't balanced or is corrupt after balance")
		}
		if want := uint(bits.Len(tree.Size())); tree.Height() != want {
			t.Fatalf("balanced height is %d, want %d", tree.Height(), want)
		}
		if tree.Height() > uh {
			t.Fatalf("balance made the tree higher: %d > %d", tree.Height(), uh)
		}
	}
}

func TestTree_Balance_Small(t *testing.T) {
	var nilTree *Tree
	nilTree.Balance()
	tree := New(nil)
	tree.Balance()
	if !tree.Empty() {
		t.Errorf("balancing an empty tree made it non-empty")
	}
	tree.Insert('a', 1)
	tree.Balance()
	if tree.Height() != 1 || tree.Size() != 1 {
		t.Errorf("single node tree changed: height %d, size %d", tree.Height(), tree.Size())
	}
	tree.Insert('b', 2)
	tree.Balance()
	if got := string(keys(tree.PreOrder(nil))); got != "ab" {
		t.Errorf("two node tree pre-order is %q, want %q", got, "ab")
	}
}

// Insert, delete and balance stay consistent when mixed.
func TestTree_Balance_Mixed(t *testing.T) {
	tree := New(nil)
	content := make(map[byte]int)
	for i := range tOpN {
		k := byte(rg.Intn(tKeyRange))
		switch rg.Intn(4) {
		case 0:
			tree.Delete(k)
			delete(content, k)
		case 1:
			if i%50 == 0 {
				tree.Balance()
				if !tree.Balanced() {
					t.Fatalf("op %d: tree isn't balanced", i)
				}
			}
		default:
			tree.Insert(k, i)
			content[k] = i
		}
	}
	if tree.Corrupt() || int(tree.Size()) != len(content) {
		t.Fatalf("tree is corrupt or has size %d, want %d", tree.Size(), len(content))
	}
	for k, v := range content {
		if got, _ := tree.Search(k); got != v {
			t.Errorf("search %d = %d, want %d", k, got, v)
		}
	}
}
