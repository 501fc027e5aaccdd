// Package bigram builds character-bigram frequency tables from word lists.
//
// Overview:
//
//   - ReadWords loads a newline-separated word list, trimming whitespace
//     and dropping empty lines.
//   - Count surrounds each word with the StartToken/EndToken markers and
//     tallies every adjacent character pair into a Table.
//   - Table.TopK returns the most frequent pairs in a deterministic order
//     (count descending, then lexical) for display or sampling priors.
//
// The package is a data-loading collaborator around the scalar engine: it
// contains no differentiable logic itself, only the corpus statistics a
// caller might feed into a model built from scalar nodes.
//
// Complexity:
//
//   - Count: O(total characters) time, O(distinct pairs) memory.
//   - TopK:  O(P log P) time for P distinct pairs.
//
// Errors:
//
//   - ErrNoWords — the input contained no non-empty lines.
//
// Example usage:
//
//	f, _ := os.Open("names.txt")
//	words, err := bigram.ReadWords(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table := bigram.Count(words)
//	for _, e := range table.TopK(10) {
//	    fmt.Printf("%s%s: %d\n", e.Pair.First, e.Pair.Second, e.Count)
//	}
package bigram
