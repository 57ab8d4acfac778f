package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/tools"
	"hotel_desk/internal/tools/wordcount"
)

func main() {
	_ = godotenv.Load()
	log.Logger = observability.NewLogger(os.Getenv("APP_ENV"))

	out := flag.String("out", "WordCountResults.txt", "results file")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wordcount [-out file] input.txt")
		os.Exit(2)
	}

	start := time.Now()
	lines, err := tools.ReadLines(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("read input failed")
	}
	res := wordcount.Compute(lines)
	for _, v := range res.Skipped {
		log.Warn().Str("value", v).Msg("not a word, skipped")
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
