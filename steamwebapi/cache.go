package steamwebapi

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// DailyCache is an http.RoundTripper that stores successful GET responses on
// disk for the rest of the day, so that importing twice a day makes a single
// API call.
type DailyCache struct {
	Base http.RoundTripper // nil means http.DefaultTransport
	Dir  string            // where responses are stored, os.TempDir() if empty
	Day  func() string     // current day, used to expire entries
}

func (c *DailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Method != http.MethodGet {
		return base.RoundTrip(req)
	}

	// the key hashes the URL: it holds the API key.
	file := c.file(req)
	if resp, err := c.get(file, req); err == nil {
		log.Printf("%v %v%v from cache", req.Method, req.URL.Host, req.URL.Path)
		return resp, nil
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(file, resp); err != nil {
		log.Printf("cache write error (ignored): %v", err)
	}
	return resp, nil
}

func (c *DailyCache) file(req *http.Request) string {
	day := time.Now().Format("2006-01-02")
	if c.Day != nil {
		day = c.Day()
	}
	dir := c.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	key := fmt.Sprintf("%s %s %s", day, req.Method, req.URL.String())
	return filepath.Join(dir, fmt.Sprintf("steamwebapi-%x", sha1.Sum([]byte(key))))
}

// get reads a cached response.
func (c *DailyCache) get(file string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores resp, whose body remains readable.
func (c *DailyCache) put(file string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(file, content, 0o600)
}
