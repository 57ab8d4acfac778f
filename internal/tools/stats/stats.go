package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Result holds the descriptive statistics of one input file.
type Result struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     int
	Variance float64 // population, not sample
	StdDev   float64
	Skipped  []string // non-numeric lines, reported and left out
}

// Compute parses newline-delimited integers and derives count, mean, median,
// mode, population variance and standard deviation. Blank lines are ignored;
// any other non-numeric line lands in Skipped.
func Compute(lines []string) Result {
	var data []int
	var skipped []string
	for _, line := range lines {
		v := strings.TrimSpace(line)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			skipped = append(skipped, v)
			continue
		}
		data = append(data, n)
	}
	res := Result{Count: len(data), Skipped: skipped}
	if res.Count == 0 {
		return res
	}
	res.Mean = mean(data)
	res.Mode = mode(data)
	res.Median = median(data)
	res.Variance = variance(data, res.Mean)
	res.StdDev = math.Sqrt(res.Variance)
	return res
}

// Render writes the report to the given sink. Floats print as plain
// decimals at any magnitude, never in scientific notation.
func (r Result) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Results:\nCount: %d, Mean: %s, Median: %s, Mode: %d, Variance: %s, Standard Deviation: %s\n",
		r.Count, formatFloat(r.Mean), formatFloat(r.Median), r.Mode, formatFloat(r.Variance), formatFloat(r.StdDev))
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mean(data []int) float64 {
	total := 0
	for _, v := range data {
		total += v
	}
	return float64(total) / float64(len(data))
}

// mode returns the first value, in input order, that reaches the maximal
// occurrence count.
func mode(data []int) int {
	best, bestCount := 0, 0
	for _, v := range data {
		count := 0
		for _, w := range data {
			if w == v {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = v, count
		}
	}
	return best
}

func median(data []int) float64 {
	sorted := append([]int(nil), data...)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 != 0 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2]+sorted[n/2-1]) / 2
}

func variance(data []int, mean float64) float64 {
	var total float64
	for _, v := range data {
		d := float64(v) - mean
		total += d * d
	}
	return total / float64(len(data))
}
