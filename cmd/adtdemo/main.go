package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	Go_ADTs "github.com/g-m-twostay/go-adts"
	"github.com/g-m-twostay/go-adts/Maps/ChainTable"
	"github.com/g-m-twostay/go-adts/Tally"
	"github.com/g-m-twostay/go-adts/Trees"
)

// Command-line flags
var (
	input    string
	words    string
	capacity uint
	hashName string
)

func init() {
	flag.StringVar(&input, "input", "abBccc_ 123 *", "String whose characters are counted into a tree")
	flag.StringVar(&words, "words", "", "File whose words are counted into a hash table; - reads stdin")
	flag.UintVar(&capacity, "capacity", 101, "Number of buckets of the hash table")
	flag.StringVar(&hashName, "hash", "additive", "Hash function of the table: additive or xxhash")
}

func main() {
	flag.Parse()

	tree := Tally.LetterCount(input)
	fmt.Printf("preorder:  %s\n", format(tree.PreOrder(nil)))
	fmt.Printf("inorder:   %s\n", format(tree.InOrder(nil)))
	fmt.Printf("postorder: %s\n", format(tree.PostOrder(nil)))
	fmt.Printf("height: %d\n", tree.Height())
	tree.Balance()
	fmt.Printf("height after balance: %d\n", tree.Height())
	for i, level := range tree.Levels() {
		fmt.Printf("level %d: %s\n", i, format(level))
	}
	tree.Dispose()

	if words == "" {
		return
	}
	var hash ChainTable.Hasher
	switch hashName {
	case "additive":
		hash = ChainTable.AdditiveHash
	case "xxhash":
		hash = ChainTable.XXHash
	default:
		log.Fatalf("Unknown hash function %q", hashName)
	}
	if capacity == 0 {
		log.Fatalf("Capacity must be at least 1")
	}
	var data []byte
	var err error
	if words == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(words)
	}
	if err != nil {
		log.Fatalf("Failed to read words: %v", err)
	}
	table := ChainTable.New(capacity, hash, nil)
	Tally.Words(table, string(data))
	fmt.Printf("distinct words: %d\n", table.Size())
	longest, used := uint(0), uint(0)
	for i := range table.Cap() {
		if n := table.ChainLen(i); n > 0 {
			used++
			longest = Go_ADTs.Max(longest, n)
		}
	}
	fmt.Printf("buckets used: %d/%d, longest chain: %d\n", used, table.Cap(), longest)
	table.Range(func(w string, n float64) bool {
		fmt.Printf("%s: %g\n", w, n)
		return true
	})
	table.DeleteAll()
}

func format(items []Trees.Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%q:%d", it.Key, it.Value)
	}
	return strings.Join(parts, " ")
}
