package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/MehmetGoekce/go-examples/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.SlogLevel())

	if len(os.Args) < 2 {
		runAllExamples(cfg)
		return
	}

	switch strings.ToLower(os.Args[1]) {
	case "fundamentals":
		runFundamentals()
	case "patterns":
		runPatterns()
	case "concurrency":
		runConcurrency()
	case "dataprocessing":
		runDataProcessing()
	case "webscraper":
		runWebScraper(cfg)
	case "ecommerce":
		runEcommerce(cfg)
	default:
		fmt.Println("Unknown example. Available options: fundamentals, patterns, concurrency, dataprocessing, webscraper, ecommerce")
	}
}

func runAllExamples(cfg *config.Config) {
	fmt.Println("\n=== Running Fundamentals Examples ===")
	runFundamentals()

	fmt.Println("\n=== Running Design Patterns Examples ===")
	runPatterns()

	fmt.Println("\n=== Running Web Scraper Example ===")
	runWebScraper(cfg)

	fmt.Println("\n=== Running E-Commerce System Example ===")
	runEcommerce(cfg)

	fmt.Println("\n=== Running Data Processing Example ===")
	runDataProcessing()

	fmt.Println("\n=== Running Concurrency Examples ===")
	runConcurrency()
}
