package Trees

import (
	"slices"
	"testing"
)

func TestTraversal_Orders(t *testing.T) {
	tree := mktree("dbfaceg")
	tests := []struct {
		name      string
		iter, rec func([]Item) []Item
		want      string
	}{
		{"pre", tree.PreOrder, tree.PreOrderRec, "dbacfeg"},
		{"in", tree.InOrder, tree.InOrderRec, "abcdefg"},
		{"post", tree.PostOrder, tree.PostOrderRec, "acbegfd"},
		{"level", tree.LevelOrder, tree.LevelOrder, "dbfaceg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(keys(tt.iter(nil))); got != tt.want {
				t.Errorf("iterative order is %q, want %q", got, tt.want)
			}
			if got := string(keys(tt.rec(nil))); got != tt.want {
				t.Errorf("recursive order is %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTraversal_Empty(t *testing.T) {
	tree := New(nil)
	for _, f := range []func([]Item) []Item{tree.PreOrder, tree.InOrder, tree.PostOrder, tree.PreOrderRec, tree.InOrderRec, tree.PostOrderRec, tree.LevelOrder} {
		if items := f(nil); len(items) != 0 {
			t.Errorf("empty tree yields %v", items)
		}
	}
	if levels := tree.Levels(); len(levels) != 0 {
		t.Errorf("empty tree has %d levels", len(levels))
	}
}

// Traversals append to the given slice and leave what's already in it alone.
func TestTraversal_Appends(t *testing.T) {
	tree := mktree("bac")
	items := []Item{{'z', 26}}
	items = tree.InOrder(items)
	items = tree.PostOrder(items)
	if got := string(keys(items)); got != "zabcacb" {
		t.Errorf("appended keys are %q, want %q", got, "zabcacb")
	}
	if items[1].Value != 'a' {
		t.Errorf("value of a is %d, want %d", items[1].Value, 'a')
	}
}

func TestTraversal_Equivalence(t *testing.T) {
	for range 200 {
		tree := New(nil)
		for range rg.Intn(tKeyRange) {
			tree.Insert(byte(rg.Intn(tKeyRange)), rg.Intn(tValueRange))
		}
		if a, b := tree.PreOrder(nil), tree.PreOrderRec(nil); !slices.Equal(a, b) {
			t.Fatalf("pre-orders differ: %v, %v", a, b)
		}
		if a, b := tree.InOrder(nil), tree.InOrderRec(nil); !slices.Equal(a, b) {
			t.Fatalf("in-orders differ: %v, %v", a, b)
		}
		if a, b := tree.PostOrder(nil), tree.PostOrderRec(nil); !slices.Equal(a, b) {
			t.Fatalf("post-orders differ: %v, %v", a, b)
		}
		in := tree.InOrder(nil)
		if !slices.IsSortedFunc(in, func(a, b Item) int { return int(a.Key) - int(b.Key) }) || uint(len(in)) != tree.Size() {
			t.Fatalf("in-order isn't sorted or misses nodes: %v", in)
		}
	}
}

// A chain of every possible key, the deepest tree there is.
func TestTraversal_Degenerate(t *testing.T) {
	tree := New(nil)
	for k := range 256 {
		tree.Insert(byte(255-k), k)
	}
	if tree.Height() != 256 {
		t.Fatalf("tree height is %d, want 256", tree.Height())
	}
	pre, post := tree.PreOrder(nil), tree.PostOrder(nil)
	for i := range 256 {
		if pre[i].Key != byte(255-i) || post[i].Key != byte(i) {
			t.Fatalf("pre[%d]=%d, post[%d]=%d", i, pre[i].Key, i, post[i].Key)
		}
	}
	if levels := tree.Levels(); len(levels) != 256 {
		t.Errorf("chain has %d levels, want 256", len(levels))
	}
}

func TestTree_Levels(t *testing.T) {
	levels := mktree("dbfaceg").Levels()
	want := []string{"d", "bf", "aceg"}
	if len(levels) != len(want) {
		t.Fatalf("%d levels, want %d", len(levels), len(want))
	}
	for i, l := range levels {
		if got := string(keys(l)); got != want[i] {
			t.Errorf("level %d is %q, want %q", i, got, want[i])
		}
	}
}
