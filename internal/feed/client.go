// Package feed fetches the news, award and event lists from the content
// backend and validates each record once into the typed model shapes.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tinytelemetry/signboard/internal/model"
)

// Config selects the backend and the query parameters.
type Config struct {
	BaseURL    string
	NewsLimit  int
	AwardYear  int
	HTTPClient *http.Client
}

// Client implements model.ContentSource over HTTP.
type Client struct {
	base      *url.URL
	newsLimit int
	awardYear int
	http      *http.Client
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// StatusCode lets callers recover the code without importing this package.
func (e *StatusError) StatusCode() int { return e.Code }

var _ model.ContentSource = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("feed: base url is empty")
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("feed: parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("feed: base url %q must be http or https", raw)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: base, newsLimit: cfg.NewsLimit, awardYear: cfg.AwardYear, http: hc}, nil
}

// News fetches up to the configured limit of news records.
func (c *Client) News(ctx context.Context) ([]model.NewsItem, error) {
	q := url.Values{}
	if c.newsLimit > 0 {
		q.Set("limit", strconv.Itoa(c.newsLimit))
	}
	var recs []record
	if err := c.getJSON(ctx, "news", q, &recs); err != nil {
		return nil, fmt.Errorf("feed: news: %w", err)
	}
	return parseNews(recs), nil
}

// Awards fetches the configured year's achievements, latest first. The
// backend filters by one year per call; a single configured year feeds the
// one award section.
func (c *Client) Awards(ctx context.Context) ([]model.Achievement, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(c.awardYear))
	var recs []record
	if err := c.getJSON(ctx, "filter", q, &recs); err != nil {
		return nil, fmt.Errorf("feed: awards: %w", err)
	}
	return parseAwards(recs), nil
}

// Events fetches posted event media; items without an upload link are
// dropped.
func (c *Client) Events(ctx context.Context) ([]model.EventMedia, error) {
	var recs []record
	if err := c.getJSON(ctx, "events", nil, &recs); err != nil {
		return nil, fmt.Errorf("feed: events: %w", err)
	}
	return parseEvents(recs), nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + path
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	target := c.endpoint(path, q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return &StatusError{Code: resp.StatusCode, URL: target}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
