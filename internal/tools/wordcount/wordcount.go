package wordcount

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Entry is one word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Result lists word frequencies in first-seen order. Matching is
// case-sensitive and exact.
type Result struct {
	Entries []Entry
	Skipped []string // lines that are not purely alphabetic
}

// Compute counts newline-delimited tokens. A line qualifies as a word when
// it is non-empty and made of letters only; everything else is skipped.
func Compute(lines []string) Result {
	var res Result
	counts := make(map[string]int)
	var order []string
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if !isWord(w) {
			res.Skipped = append(res.Skipped, w)
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}
	for _, w := range order {
		res.Entries = append(res.Entries, Entry{Word: w, Count: counts[w]})
	}
	return res
}

// Render writes the numbered frequency table to the given sink.
func (r Result) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Results:"); err != nil {
		return err
	}
	for i, e := range r.Entries {
		if _, err := fmt.Fprintf(w, "%d Word: %s, Occurrences: %d\n", i+1, e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
