// Package ChainTable implements a hash table with a fixed number of buckets, string keys and float64 values.
// Keys that hash to the same bucket (synonyms) are kept in a singly linked chain per bucket.
package ChainTable

import (
	Go_ADTs "github.com/g-m-twostay/go-adts"
)

// Entry in a bucket chain. An entry exclusively owns the rest of its chain.
type Entry struct {
	Key   string
	Value float64
	next  *Entry
}

// InvalidCapacityError is the panic value of New when asked for a table without buckets.
type InvalidCapacityError struct{}

func (InvalidCapacityError) Error() string {
	return "ChainTable: capacity must be at least 1"
}

// Table is a chained hash table. The bucket count is fixed when the table is made. Entries come from the allocator
// on Insert and go back to it on Delete and DeleteAll, each exactly once.
// Table isn't safe for concurrent use.
type Table struct {
	buckets []*Entry
	hash    Hasher
	alloc   Go_ADTs.Allocator[Entry]
	sz      uint
}

// New table with capacity buckets. A nil hash means AdditiveHash, a nil a means Go_ADTs.Heap.
// Panics with InvalidCapacityError if capacity is 0.
func New(capacity uint, hash Hasher, a Go_ADTs.Allocator[Entry]) *Table {
	if capacity == 0 {
		panic(InvalidCapacityError{})
	}
	if hash == nil {
		hash = AdditiveHash
	}
	if a == nil {
		a = Go_ADTs.Heap[Entry]{}
	}
	return &Table{buckets: make([]*Entry, capacity), hash: hash, alloc: a}
}

// Init sets every bucket to empty. Entries still in the table are dropped without being freed; use DeleteAll to
// empty a table that may hold entries.
func (u *Table) Init() {
	clear(u.buckets)
	u.sz = 0
}

// Cap is the number of buckets.
func (u *Table) Cap() uint {
	return uint(len(u.buckets))
}

// Size is the number of entries.
func (u *Table) Size() uint {
	return u.sz
}

func (u *Table) index(key string) uint {
	return u.hash(key, uint(len(u.buckets)))
}

// Search the chain of key's bucket for key. Returns nil if key isn't in the table.
// Time: O(chain length)
func (u *Table) Search(key string) *Entry {
	for e := u.buckets[u.index(key)]; e != nil; e = e.next {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Insert v under key. If key is anywhere in its bucket's chain, its value is replaced and Insert returns false.
// Otherwise a new entry is put at the head of the chain and Insert returns true. If the allocator fails the table is
// left unchanged and Insert returns false.
func (u *Table) Insert(key string, v float64) bool {
	i := u.index(key)
	for e := u.buckets[i]; e != nil; e = e.next {
		if e.Key == key {
			e.Value = v
			return false
		}
	}
	e := u.alloc.Alloc()
	if e == nil {
		return false
	}
	e.Key, e.Value, e.next = key, v, u.buckets[i]
	u.buckets[i] = e
	u.sz++
	return true
}

// Get a pointer to the value stored under key, or nil if key isn't in the table. The pointer is valid until the
// entry is deleted.
func (u *Table) Get(key string) *float64 {
	if e := u.Search(key); e != nil {
		return &e.Value
	}
	return nil
}

// Delete the entry of key, splicing it out of its chain. Returns false if key isn't in the table.
func (u *Table) Delete(key string) bool {
	for link := &u.buckets[u.index(key)]; *link != nil; link = &(*link).next {
		if e := *link; e.Key == key {
			*link = e.next
			u.alloc.Free(e)
			u.sz--
			return true
		}
	}
	return false
}

// DeleteAll frees every entry, leaving the table as after Init.
// Time: O(capacity+size)
func (u *Table) DeleteAll() {
	for i, e := range u.buckets {
		for e != nil {
			next := e.next
			u.alloc.Free(e)
			e = next
		}
		u.buckets[i] = nil
	}
	u.sz = 0
}

// ChainLen is the number of entries in bucket i.
func (u *Table) ChainLen(i uint) uint {
	n := uint(0)
	for e := u.buckets[i]; e != nil; e = e.next {
		n++
	}
	return n
}

// Range calls f on every entry, bucket by bucket, each chain from its head, until f returns false.
// f mustn't insert or delete.
func (u *Table) Range(f func(key string, v float64) bool) {
	for _, e := range u.buckets {
		for ; e != nil; e = e.next {
			if !f(e.Key, e.Value) {
				return
			}
		}
	}
}
