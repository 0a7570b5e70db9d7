package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MehmetGoekce/go-examples/internal/config"
	"github.com/MehmetGoekce/go-examples/internal/scraper"
)

func runWebScraper(cfg *config.Config) {
	fmt.Println("Starting web scraping demo...")

	urls := []string{
		"https://example.com",
		"https://opensource.org",
		"https://www.wikipedia.org",
	}
	keywords := []string{"open", "source", "free", "software", "web"}

	s := scraper.New(cfg.Scraper.Timeout, cfg.Scraper.Concurrency, cfg.Scraper.UserAgent)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	results := s.ScrapeAll(ctx, urls, keywords)
	fmt.Printf("Scraping completed in %v\n", time.Since(start))

	fmt.Println("Scraping Results:")
	for _, result := range results {
		fmt.Println(result)
		fmt.Println()
	}
}
