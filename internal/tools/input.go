// Package tools holds the coursework utilities. Each subpackage exposes a
// pure compute function over raw input lines plus a Render method taking an
// explicit output sink, so the CLIs can write the same report to the console
// and to a results file without redirecting anything global.
package tools

import (
	"os"
	"strings"
)

// ReadLines loads a whole input file and splits it into lines.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(b), "\n"), nil
}
