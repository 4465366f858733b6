// Package mcsrv is a small client for the mcsrvstat.us Minecraft server
// status API.
package mcsrv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.mcsrvstat.us"
	DefaultPort    = "25565"

	maxBodySize = 1 << 20
)

var ErrEmptyHost = errors.New("server host is empty")

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status API returned %s", e.Status)
}

type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRateLimit caps outbound requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Inf, 0),
		userAgent: "mcstatus-bot",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address joins host and port the way the API expects them in the path.
func Address(host, port string) string {
	if port == "" {
		port = DefaultPort
	}
	return host + ":" + port
}

// IconURL returns the favicon URL for a server.
func (c *Client) IconURL(host, port string) string {
	return c.baseURL + "/icon/" + url.PathEscape(Address(host, port))
}

// Lookup fetches the status of host:port. An offline server is not an
// error; check Status.Online.
func (c *Client) Lookup(ctx context.Context, host, port string) (*Status, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, ErrEmptyHost
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	endpoint := c.baseURL + "/2/" + url.PathEscape(Address(host, strings.TrimSpace(port)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", Address(host, port), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var st Status
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&st); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &st, nil
}
