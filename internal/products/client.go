package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotFound is returned by Get when the API has no product for the ASIN.
var ErrNotFound = errors.New("product not found")

// StatusError is any non-2xx answer from the pipeline API, carrying the
// status code and the raw body text.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// Lister is the read surface the pages need from the pipeline API.
type Lister interface {
	List(ctx context.Context, f Filter) (*ListResponse, error)
	Get(ctx context.Context, asin string) (*Product, error)
}

// Client talks to the pipeline API over HTTP. Each call is fresh: no retry,
// no caching, no timeout beyond what the request context imposes.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{},
	}
}

// List fetches one page of products. Filter parameters pass through to the
// API verbatim; the client does no filtering of its own.
func (c *Client) List(ctx context.Context, f Filter) (*ListResponse, error) {
	var out ListResponse
	if err := c.getJSON(ctx, "/products?"+f.APIQuery().Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a full product, including its price-history sparkline. Any
// non-success response maps to ErrNotFound: the API does not distinguish a
// missing ASIN from other per-product failures in a way the UI cares about.
func (c *Client) Get(ctx context.Context, asin string) (*Product, error) {
	var out Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(asin), &out); err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, asin)
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	// Every page render must see current data.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			body = []byte("unknown error")
		}
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
