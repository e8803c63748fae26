package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/errors"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/testutil"
)

const coursePage = `<!DOCTYPE html>
<html>
<body>
  <nav aria-label="Main navigation"><a href="/">Home</a></nav>
  <div class="sidebar">
    <nav aria-label="Challenge 1: Show/Hide Password"><a href="/c1">1</a></nav>
    <nav aria-label="Challenge 2: Foo Bar"><a href="/c2">2</a></nav>
    <nav aria-label="Bonus challenge"><a href="/bonus">lowercase, not matched</a></nav>
    <nav aria-label="Challenge 2: Foo Bar"><a href="/c2-again">duplicate</a></nav>
  </div>
  <div aria-label="Challenge 3: Not A Nav"></div>
  <nav><a href="/none">no label</a></nav>
</body>
</html>`

func TestExtractLabels(t *testing.T) {
	got, err := ExtractLabels(strings.NewReader(coursePage), DefaultSelector)
	if err != nil {
		t.Fatalf("ExtractLabels() failed: %v", err)
	}

	want := []string{
		"Challenge 1: Show/Hide Password",
		"Challenge 2: Foo Bar",
		"Challenge 2: Foo Bar",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractLabels_NoMatches(t *testing.T) {
	got, err := ExtractLabelsFromBytes([]byte("<html><body><p>redesigned page</p></body></html>"), DefaultSelector)
	if err != nil {
		t.Fatalf("ExtractLabels() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ExtractLabels() = %v, want none", got)
	}
}

func TestExtractLabels_EmptyAttributeSkipped(t *testing.T) {
	page := `<nav aria-label=""></nav><nav aria-label="Challenge 9: X"></nav>`
	// an empty label cannot contain "Challenge", so widen the selector to reach it
	got, err := ExtractLabelsFromBytes([]byte(page), "nav")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Challenge 9: X"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractLabels_BadSelector(t *testing.T) {
	_, err := ExtractLabelsFromBytes([]byte(coursePage), "nav[aria-label*=")
	if !errors.Is(err, errors.ErrParseFailed) {
		t.Errorf("ExtractLabels() error = %v, want ErrParseFailed", err)
	}
}

func TestExtractLabels_MalformedMarkup(t *testing.T) {
	// the HTML5 parser recovers from unclosed tags the same way browsers do
	page := `<div><nav aria-label="Challenge 5: Unclosed"><span>oops</div>`
	got, err := ExtractLabelsFromBytes([]byte(page), DefaultSelector)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Challenge 5: Unclosed"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFetch_Success(t *testing.T) {
	srv := testutil.NewPageServer(t, http.StatusOK, coursePage)

	body, err := NewClient(0).Fetch(context.Background(), srv.URL+"/course")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if string(body) != coursePage {
		t.Errorf("Fetch() body mismatch")
	}
	if srv.Hits.Load() != 1 {
		t.Errorf("server hit %d times, want exactly 1", srv.Hits.Load())
	}
}

func TestFetch_StatusErrorsAreNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests} {
		srv := testutil.NewPageServer(t, status, "nope")

		_, err := NewClient(0).Fetch(context.Background(), srv.URL)
		if !errors.Is(err, errors.ErrUnexpectedStatus) {
			t.Errorf("status %d: Fetch() error = %v, want ErrUnexpectedStatus", status, err)
		}
		if srv.Hits.Load() != 1 {
			t.Errorf("status %d: server hit %d times, want 1", status, srv.Hits.Load())
		}
	}
}

func TestFetch_Unreachable(t *testing.T) {
	srv := testutil.NewPageServer(t, http.StatusOK, "")
	url := srv.URL
	srv.Close()

	_, err := NewClient(0).Fetch(context.Background(), url)
	if !errors.Is(err, errors.ErrFetchFailed) {
		t.Errorf("Fetch() error = %v, want ErrFetchFailed", err)
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	_, err := NewClient(0).Fetch(context.Background(), "")
	if !errors.Is(err, errors.ErrEmptyURL) {
		t.Errorf("Fetch() error = %v, want ErrEmptyURL", err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(100*time.Millisecond).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, errors.ErrFetchFailed) {
		t.Errorf("Fetch() error = %v, want ErrFetchFailed", err)
	}
}
