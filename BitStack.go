package Go_ADTs

import (
	"math/bits"
)

// BitStack is a growable stack of bools packed into machine words. The zero value is an empty stack.
type BitStack struct {
	words []uint
	sz    int
}

// Push b on top of the stack. The word slice doubles when full.
func (u *BitStack) Push(b bool) {
	w, off := u.sz/bits.UintSize, u.sz%bits.UintSize
	if w == len(u.words) {
		grown := make([]uint, Max(len(u.words)<<1, 1))
		copy(grown, u.words)
		u.words = grown
	}
	if b {
		u.words[w] |= 1 << off
	} else {
		u.words[w] &^= 1 << off
	}
	u.sz++
}

func (u *BitStack) at(i int) bool {
	return u.words[i/bits.UintSize]>>(i%bits.UintSize)&1 == 1
}

// Pop the top of the stack. Returns (false, false) if the stack is empty.
func (u *BitStack) Pop() (b, ok bool) {
	if u.sz == 0 {
		return
	}
	u.sz--
	return u.at(u.sz), true
}

// Top of the stack without removing it. Same convention as Pop.
func (u *BitStack) Top() (b, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.at(u.sz - 1), true
}

func (u *BitStack) Len() int {
	return u.sz
}

func (u *BitStack) Empty() bool {
	return u.sz == 0
}

// Clear the stack, keeping its words.
func (u *BitStack) Clear() {
	u.sz = 0
}
