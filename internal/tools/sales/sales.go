package sales

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// Product is one catalogue entry.
type Product struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// Sale is one sales-record entry. The field casing follows the record
// format, not the catalogue's.
type Sale struct {
	Product  string  `json:"Product"`
	Quantity float64 `json:"Quantity"`
}

// Result is the priced total of a sales record.
type Result struct {
	Total     float64
	Unmatched []string // product names missing from the catalogue
}

// LoadInputs reads and decodes the catalogue and the sales record
// concurrently.
func LoadInputs(cataloguePath, recordPath string) ([]Product, []Sale, error) {
	var (
		catalogue []Product
		record    []Sale
	)
	var g errgroup.Group
	g.Go(func() error { return readJSON(cataloguePath, &catalogue) })
	g.Go(func() error { return readJSON(recordPath, &record) })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return catalogue, record, nil
}

// Compute prices every sale against the catalogue. Sales whose product name
// has no catalogue entry are collected in Unmatched and skipped.
func Compute(catalogue []Product, record []Sale) Result {
	prices := make(map[string]float64, len(catalogue))
	for _, p := range catalogue {
		if _, ok := prices[p.Title]; !ok {
			// first catalogue entry wins on duplicate titles
			prices[p.Title] = p.Price
		}
	}
	var res Result
	for _, s := range record {
		price, ok := prices[s.Product]
		if !ok {
			res.Unmatched = append(res.Unmatched, s.Product)
			continue
		}
		res.Total += price * s.Quantity
	}
	return res
}

// Render writes the total to the given sink.
func (r Result) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Total Cost: $%.2f\n", r.Total)
	return err
}

func readJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
