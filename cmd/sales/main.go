package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/tools/sales"
)

func main() {
	_ = godotenv.Load()
	log.Logger = observability.NewLogger(os.Getenv("APP_ENV"))

	out := flag.String("out", "SalesResults.txt", "results file")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: sales [-out file] priceCatalogue.json salesRecord.json")
		os.Exit(2)
	}

	start := time.Now()
	catalogue, record, err := sales.LoadInputs(flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatal().Err(err).Msg("read inputs failed")
	}
	res := sales.Compute(catalogue, record)
	for _, name := range res.Unmatched {
		log.Warn().Str("product", name).Msg("product not found in catalogue, skipped")
	}

	if err := res.Render(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("write results failed")
	}
	fmt.Printf("Time Elapsed: %s\n", time.Since(start))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("create results file failed")
	}
	defer f.Close()
	if err := res.Render(f); err != nil {
		log.Fatal().Err(err).Msg("write results file failed")
	}
}
