// Package steamwebapi fetches inventories from the steamwebapi.com API.
package steamwebapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the root of the API.
	DefaultBaseURL = "https://www.steamwebapi.com/steam/api/"
	// Game is the game identifier of the inventory.
	Game = "csgo"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
	defaultBackoff    = 500 * time.Millisecond
)

// StatusError is returned for a non 2xx response.
type StatusError struct {
	Code   int
	Status string
	Host   string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http GET %v%v: %v", e.Host, e.Path, e.Status)
}

// temporary reports whether the request is worth retrying.
func (e *StatusError) temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Client calls the API.
//
// Requests are paced by a rate limiter and failed calls (transport errors,
// 429 and 5xx statuses) are retried with an exponential backoff.
type Client struct {
	BaseURL    string
	HTTP       *http.Client
	MaxRetries int           // retries after the first attempt
	Backoff    time.Duration // wait before the first retry, doubled for each retry

	limiter *rate.Limiter
}

// New returns a Client for the public API.
func New() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTP:       &http.Client{Timeout: defaultTimeout},
		MaxRetries: defaultMaxRetries,
		Backoff:    defaultBackoff,
		// the free plan allows about one call per second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Inventory returns the raw JSON array of the inventory records of steamID.
func (c *Client) Inventory(ctx context.Context, apiKey, steamID string) ([]byte, error) {
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("steam_id", steamID)
	q.Set("game", Game)
	addr := c.BaseURL + "inventory?" + q.Encode()

	body, err := c.getWithRetry(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch inventory: %w", err)
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("cannot fetch inventory: unexpected payload, want a JSON array: %.80q", trimmed)
	}
	return body, nil
}

func (c *Client) getWithRetry(ctx context.Context, addr string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.Backoff * (1 << uint(attempt-1))
			log.Printf("retrying in %v after: %v", wait, lastErr)
			select {
			case <-ctx.Done():
				return nil, lastErr
			case <-time.After(wait):
			}
		}

		body, err := c.get(ctx, addr)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.temporary() {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

// get performs a single GET request and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		// do not leak the API key in error messages
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = req.URL.Host + req.URL.Path
		}
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Host: req.URL.Host, Path: req.URL.Path}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
