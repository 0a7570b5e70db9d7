// Package scraper fetches pages over HTTP and pulls a few facts out of the
// raw HTML with regular expressions. It is deliberately naive: no DOM, no
// robots.txt, no retries.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

var (
	titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	linkRe  = regexp.MustCompile(`href=["'](http[^"']+)["']`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// Result holds what was extracted from one page.
type Result struct {
	URL              string
	Title            string
	WordCount        int
	KeywordFrequency map[string]int
	Links            []string
}

func (r Result) String() string {
	return fmt.Sprintf("URL: %s\nTitle: %s\nWord Count: %d\nKeywords: %v\nLinks: %d",
		r.URL, r.Title, r.WordCount, r.KeywordFrequency, len(r.Links))
}

type Scraper struct {
	client      *http.Client
	userAgent   string
	concurrency int64
}

// New builds a scraper with the given request timeout and fan-out limit.
func New(timeout time.Duration, concurrency int, userAgent string) *Scraper {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
			// follows redirects by default
		},
		userAgent:   userAgent,
		concurrency: int64(concurrency),
	}
}

// Scrape fetches a single URL and extracts title, word count, keyword
// frequencies and absolute links.
func (s *Scraper) Scrape(ctx context.Context, url string, keywords []string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	html := string(body)

	return Result{
		URL:              url,
		Title:            extractTitle(html),
		WordCount:        countWords(html),
		KeywordFrequency: countKeywords(html, keywords),
		Links:            extractLinks(html),
	}, nil
}

// ScrapeAll fans Scrape out over the URLs, at most concurrency fetches in
// flight at once. Per-URL failures are logged and the URL is skipped; the
// call returns once every fetch has finished. Result order follows the
// input URLs.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, keywords []string) []Result {
	sem := semaphore.NewWeighted(s.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make([]Result, 0, len(urls))

	for _, url := range urls {
		if err := sem.Acquire(ctx, 1); err != nil {
			slog.Error("Scrape cancelled", "url", url, "err", err)
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			result, err := s.Scrape(ctx, url, keywords)
			if err != nil {
				slog.Error("Error scraping", "url", url, "err", err)
				return
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}()
	}
	wg.Wait()

	ordered := make([]Result, 0, len(results))
	for _, url := range urls {
		for _, r := range results {
			if r.URL == url {
				ordered = append(ordered, r)
				break
			}
		}
	}
	return ordered
}

func extractTitle(html string) string {
	if m := titleRe.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "No title found"
}

func countWords(html string) int {
	text := tagRe.ReplaceAllString(html, " ")
	return len(strings.Fields(text))
}

func countKeywords(html string, keywords []string) map[string]int {
	text := strings.ToLower(tagRe.ReplaceAllString(html, " "))
	frequencies := make(map[string]int, len(keywords))
	for _, keyword := range keywords {
		frequencies[keyword] = strings.Count(text, strings.ToLower(keyword))
	}
	return frequencies
}

func extractLinks(html string) []string {
	var links []string
	for _, m := range linkRe.FindAllStringSubmatch(html, -1) {
		links = append(links, m[1])
	}
	return links
}
