// Package Tally counts characters into a Trees.Tree and words into a ChainTable.Table.
package Tally

import (
	"strings"

	"github.com/g-m-twostay/go-adts/Maps/ChainTable"
	"github.com/g-m-twostay/go-adts/Trees"
)

// Other is the key every character outside [a-z0-9 ] is counted under, after upper case letters are folded.
const Other byte = '_'

// Classify returns the key c is counted under: lower case letters, digits and the space stand for themselves, upper
// case letters are folded to lower case, and anything else is Other.
func Classify(c byte) byte {
	switch {
	case 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == ' ':
		return c
	case 'A' <= c && c <= 'Z':
		return c + 'a' - 'A'
	default:
		return Other
	}
}

// Letters adds the occurrences of every class of character in input to t.
func Letters(t *Trees.Tree, input string) {
	for i := range len(input) {
		k := Classify(input[i])
		n, _ := t.Search(k)
		t.Insert(k, n+1)
	}
}

// LetterCount counts the classes of characters of input into a new tree. The tree isn't balanced.
func LetterCount(input string) *Trees.Tree {
	t := Trees.New(nil)
	Letters(t, input)
	return t
}

// Words adds the occurrences of every whitespace separated, lower cased word of input to t.
func Words(t *ChainTable.Table, input string) {
	for _, w := range strings.Fields(input) {
		w = strings.ToLower(w)
		if n := t.Get(w); n != nil {
			*n++
		} else {
			t.Insert(w, 1)
		}
	}
}
