package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title> Open Source Software </title></head>
<body>
<h1>Free and open source</h1>
<p>Software that is free to use, study and share.</p>
<a href="https://example.com/about">About</a>
<a href='http://example.org/docs'>Docs</a>
<a href="/relative">Relative</a>
</body>
</html>`

func TestScrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		fmt.Fprint(w, samplePage)
	}))
	defer server.Close()

	s := New(5*time.Second, 2, "test-agent")
	result, err := s.Scrape(context.Background(), server.URL, []string{"free", "software", "kernel"})
	require.NoError(t, err)

	assert.Equal(t, server.URL, result.URL)
	assert.Equal(t, "Open Source Software", result.Title)
	assert.Equal(t, 2, result.KeywordFrequency["free"])
	assert.Equal(t, 2, result.KeywordFrequency["software"])
	assert.Zero(t, result.KeywordFrequency["kernel"])
	assert.Greater(t, result.WordCount, 10)

	// only absolute http(s) links are collected
	assert.Equal(t, []string{"https://example.com/about", "http://example.org/docs"}, result.Links)
}

func TestScrapeNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	s := New(5*time.Second, 2, "")
	_, err := s.Scrape(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestScrapeAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fail":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			fmt.Fprintf(w, "<html><head><title>%s</title></head><body>page</body></html>", r.URL.Path)
		}
	}))
	defer server.Close()

	urls := []string{
		server.URL + "/a",
		server.URL + "/fail",
		server.URL + "/b",
		server.URL + "/c",
	}

	s := New(5*time.Second, 2, "")
	results := s.ScrapeAll(context.Background(), urls, nil)

	// The failing URL is skipped, the rest come back in input order.
	require.Len(t, results, 3)
	assert.Equal(t, urls[0], results[0].URL)
	assert.Equal(t, urls[2], results[1].URL)
	assert.Equal(t, urls[3], results[2].URL)
	assert.Equal(t, "/a", results[0].Title)
}

func TestScrapeAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(5*time.Second, 1, "")
	results := s.ScrapeAll(ctx, []string{"http://127.0.0.1:0/never"}, nil)
	assert.Empty(t, results)
}

func TestExtractTitleFallback(t *testing.T) {
	assert.Equal(t, "No title found", extractTitle("<html><body>nothing here</body></html>"))
	assert.Equal(t, "Spread Out", extractTitle("<title>\n Spread Out \n</title>"))
}

func TestCountWordsStripsTags(t *testing.T) {
	assert.Equal(t, 3, countWords("<p>one <b>two</b> three</p>"))
}
