package Go_ADTs

import "fmt"

// Allocator hands out and takes back nodes of type T. Containers in this module own every node they get from Alloc
// until they give it back through Free, and they give each node back exactly once.
type Allocator[T any] interface {
	// Alloc a zeroed T. Returning nil means the allocation failed; the caller must treat the requested mutation as a no-op.
	Alloc() *T
	// Free a T previously returned by Alloc. The container mustn't touch the node afterward.
	Free(*T)
}

// Heap allocates with new and leaves reclamation to the garbage collector. Free zeroes the node so that nothing it
// referenced stays reachable through a stale pointer.
type Heap[T any] struct{}

func (Heap[T]) Alloc() *T {
	return new(T)
}

func (Heap[T]) Free(t *T) {
	*t = *new(T)
}

// DoubleFreeError is the panic value of Counting.Free when the node isn't live.
type DoubleFreeError struct {
	Addr any
}

func (e DoubleFreeError) Error() string {
	return fmt.Sprintf("free of a node that isn't live: %p", e.Addr)
}

// Counting is an Allocator that keeps track of live nodes. It panics with DoubleFreeError when a node is freed twice or
// was never allocated by it. When Limit is non-zero, Alloc fails (returns nil) once Allocs reaches Limit.
// The zero value is ready to use.
type Counting[T any] struct {
	Allocs, Frees, Failed uint
	Limit                 uint
	live                  map[*T]struct{}
}

func (u *Counting[T]) Alloc() *T {
	if u.Limit != 0 && u.Allocs >= u.Limit {
		u.Failed++
		return nil
	}
	if u.live == nil {
		u.live = make(map[*T]struct{})
	}
	t := new(T)
	u.live[t] = struct{}{}
	u.Allocs++
	return t
}

func (u *Counting[T]) Free(t *T) {
	if _, in := u.live[t]; !in {
		panic(DoubleFreeError{t})
	}
	delete(u.live, t)
	*t = *new(T)
	u.Frees++
}

// Live is the number of nodes allocated but not yet freed.
func (u *Counting[T]) Live() uint {
	return u.Allocs - u.Frees
}
