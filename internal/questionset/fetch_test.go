package questionset

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetcherAppendsCacheBuster(t *testing.T) {
	var buster, keep string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buster = r.URL.Query().Get("_")
		keep = r.URL.Query().Get("v")
		fmt.Fprint(w, "body")
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	body, err := f.Fetch(context.Background(), srv.URL+"/set.ndjson?v=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "body" {
		t.Fatalf("body = %q", body)
	}
	if buster == "" {
		t.Fatal("cache-buster parameter not appended")
	}
	if keep != "1" {
		t.Fatalf("existing query parameter lost: v=%q", keep)
	}
}

func TestFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.csv")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", fetchErr.Status)
	}
}
