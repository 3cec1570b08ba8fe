// Package main implements a mock search index for local development. It
// serves listing documents from a JSON fixture through the subset of the
// Elasticsearch _search API the aggregator uses: a bool query of term, terms
// and range clauses, a multi-key sort, and size/from paging.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

func main() {
	port := flag.Int("port", 9200, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-index/testdata/listings.json", "path to listing documents fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	docs, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "documents", len(docs))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock search index", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, docs)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, docs []document) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", infoHandler) // also serves HEAD, used by Ping
	mux.HandleFunc("GET /{index}/_search", searchHandler(logger, docs))
	mux.HandleFunc("POST /{index}/_search", searchHandler(logger, docs))
	return productHeader(mux)
}

func loadFixture(path string) ([]document, error) {
	f, err := os.Open(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var docs []document
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return docs, nil
}

// productHeader sets the header the Elasticsearch client checks on every
// response.
func productHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func infoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodHead {
		return
	}
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"name":         "mock-index",
		"cluster_name": "lagg-dev",
		"version":      map[string]string{"number": "8.17.0"},
		"tagline":      "You Know, for Search",
	})
}
