// Package scraper fetches the course page and pulls challenge labels out of its markup.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/imroc/req/v3"
	"golang.org/x/net/html"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/errors"
	"github.com/dimasma0305/challscaffold/internal/log"
)

const (
	// DefaultURL is the course page listing the challenges
	DefaultURL = "https://store.selfteach.me/view/courses/advent-of-javascript-2024/2872740-challenge-1-show-hide-password/9303349-challenge-1-project-files"

	// DefaultSelector matches the navigation landmarks labelled after a challenge
	DefaultSelector = `nav[aria-label*="Challenge"]`

	// LabelAttr holds the challenge name on matched elements
	LabelAttr = "aria-label"

	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/110.0"
)

// Client fetches pages over HTTP
type Client struct {
	http *req.Client
}

// NewClient returns a Client. A zero timeout leaves requests unbounded.
func NewClient(timeout time.Duration) *Client {
	client := req.C().
		SetUserAgent(userAgent).
		EnableKeepAlives()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{http: client}
}

// Fetch performs a single GET and returns the body. Anything but a 2xx status is an error.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.ErrEmptyURL
	}

	log.Debug("Fetching %s", url)
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", errors.ErrFetchFailed, url, err)
	}
	if !resp.IsSuccessState() {
		return nil, errors.Wrapf(errors.ErrUnexpectedStatus, "GET %s returned %d", url, resp.StatusCode)
	}

	body := resp.Bytes()
	log.DebugH2("Fetched %d bytes", len(body))
	return body, nil
}

// ExtractLabels parses markup and returns the label attribute of every element matching selector,
// in document order. Matches without the attribute, or with an empty one, are skipped.
func ExtractLabels(r io.Reader, selector string) ([]string, error) {
	// goquery silently matches nothing on a bad selector; compile it first to report the mistake
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: selector %q: %w", errors.ErrParseFailed, selector, err)
	}

	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrParseFailed, err)
	}

	var labels []string
	doc := goquery.NewDocumentFromNode(root)
	doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
		label, ok := s.Attr(LabelAttr)
		if !ok || label == "" {
			log.DebugH2("Skipping element without %s", LabelAttr)
			return
		}
		labels = append(labels, label)
	})
	return labels, nil
}

// ExtractLabelsFromBytes is ExtractLabels over an in-memory page
func ExtractLabelsFromBytes(page []byte, selector string) ([]string, error) {
	return ExtractLabels(bytes.NewReader(page), selector)
}
