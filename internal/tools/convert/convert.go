package convert

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Conversion is one input value with its binary and hexadecimal renditions.
type Conversion struct {
	Decimal int64
	Binary  string
	Hex     string
}

// Result carries the conversions of one input file. Every value shares the
// same bit width, chosen from the largest magnitude in the input.
type Result struct {
	Values  []Conversion
	Width   int      // bits, always a multiple of 4
	Skipped []string // non-numeric lines, reported and left out
}

// Compute parses newline-delimited integers and converts each to
// two's-complement binary and hexadecimal at a shared width. Negative values
// are additionally left-padded with F to 10 hex digits.
func Compute(lines []string) Result {
	var data []int64
	var skipped []string
	for _, line := range lines {
		v := strings.TrimSpace(line)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			skipped = append(skipped, v)
			continue
		}
		data = append(data, n)
	}
	res := Result{Width: bitWidth(data), Skipped: skipped}
	for _, n := range data {
		res.Values = append(res.Values, Conversion{
			Decimal: n,
			Binary:  toBinary(n, res.Width),
			Hex:     toHex(n, res.Width),
		})
	}
	return res
}

// Render writes the numbered conversion table to the given sink.
func (r Result) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Results:"); err != nil {
		return err
	}
	for i, c := range r.Values {
		_, err := fmt.Fprintf(w, "%d Decimal: %d, Binary: %s, Hexadecimal: %s\n", i+1, c.Decimal, c.Binary, c.Hex)
		if err != nil {
			return err
		}
	}
	return nil
}

// bitWidth returns the width shared by every conversion: enough bits to
// cover the largest magnitude plus one, rounded up to a multiple of 4, and
// never below 4.
func bitWidth(data []int64) int {
	var maxAbs uint64
	for _, n := range data {
		a := uint64(n)
		if n < 0 {
			a = uint64(-(n + 1)) + 1
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	bits := 1
	for cover := uint64(1); bits < 64 && cover < maxAbs+1; cover <<= 1 {
		bits++
	}
	if r := bits % 4; r != 0 {
		bits += 4 - r
	}
	return bits
}

func truncate(n int64, width int) uint64 {
	v := uint64(n)
	if width < 64 {
		v &= (uint64(1) << width) - 1
	}
	return v
}

func toBinary(n int64, width int) string {
	s := strconv.FormatUint(truncate(n, width), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

func toHex(n int64, width int) string {
	s := strings.ToUpper(strconv.FormatUint(truncate(n, width), 16))
	if digits := width / 4; len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	if n < 0 && len(s) < 10 {
		s = strings.Repeat("F", 10-len(s)) + s
	}
	return s
}
