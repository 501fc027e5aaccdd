package bigram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	// StartToken marks the position before the first character of a word.
	StartToken = "<S>"

	// EndToken marks the position after the last character of a word.
	EndToken = "<E>"
)

// ErrNoWords indicates that the input contained no non-empty lines.
var ErrNoWords = errors.New("bigram: word list is empty")

// Pair is an ordered character bigram. First and Second hold single
// characters or the start/end tokens.
type Pair struct {
	First  string
	Second string
}

// String renders the pair as First→Second.
func (p Pair) String() string {
	return p.First + "→" + p.Second
}

// Table maps each observed pair to its occurrence count across the corpus.
type Table map[Pair]int

// Entry is a pair with its count, used for sorted views of a Table.
type Entry struct {
	Pair  Pair
	Count int
}

// ReadWords reads a newline-separated word list from r, trimming
// surrounding whitespace and skipping empty lines.
// Returns ErrNoWords if nothing remains.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bigram: reading word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return words, nil
}

// Count tallies every adjacent character pair across words, with each word
// framed as StartToken, characters…, EndToken. Characters are counted per
// rune, so multi-byte input is handled correctly.
func Count(words []string) Table {
	t := make(Table)
	for _, w := range words {
		// frame: <S> c1 c2 … cn <E>
		chars := []string{StartToken}
		for _, r := range w {
			chars = append(chars, string(r))
		}
		chars = append(chars, EndToken)

		for i := 0; i+1 < len(chars); i++ {
			t[Pair{First: chars[i], Second: chars[i+1]}]++
		}
	}

	return t
}

// TopK returns the k most frequent entries, ordered by count descending
// and then lexically by pair for determinism. k ≤ 0 or k beyond the number
// of distinct pairs returns all entries.
func (t Table) TopK(k int) []Entry {
	entries := make([]Entry, 0, len(t))
	for p, c := range t {
		entries = append(entries, Entry{Pair: p, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if entries[i].Pair.First != entries[j].Pair.First {
			return entries[i].Pair.First < entries[j].Pair.First
		}
		return entries[i].Pair.Second < entries[j].Pair.Second
	})
	if k <= 0 || k > len(entries) {
		k = len(entries)
	}

	return entries[:k]
}

// Longest returns the longest word in the list by rune count; ties keep
// the earliest word. Returns "" for an empty list.
func Longest(words []string) string {
	longest := ""
	max := 0
	for _, w := range words {
		if n := len([]rune(w)); n > max {
			longest, max = w, n
		}
	}

	return longest
}
