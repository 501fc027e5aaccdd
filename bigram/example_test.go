package bigram_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/scalargrad/bigram"
)

// ExampleCount builds a bigram table from a tiny word list and prints the
// most frequent pairs.
func ExampleCount() {
	in := strings.NewReader("emma\nemil\n")
	words, err := bigram.ReadWords(in)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	table := bigram.Count(words)
	for _, e := range table.TopK(3) {
		fmt.Printf("%s: %d\n", e.Pair, e.Count)
	}
	// Output:
	// <S>→e: 2
	// e→m: 2
	// a→<E>: 1
}
