// Package osuapi is a small osu! API v2 client covering the lookups needed to
// normalize scores to their legacy form.
package osuapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/levigross/grequests"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultRatePerMinute = 60
	defaultMaxConcurrent = 2
	maxRetries           = 3
	requestTimeout       = 2 * time.Minute
)

var ErrMissingCredentials = errors.New("osu! API client id and secret are required")

type Config struct {
	BaseURL       string
	ClientID      int
	ClientSecret  string
	RatePerMinute int
	MaxConcurrent int
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("osu! API error: status %d, body: %s", e.StatusCode, e.Body)
}

type Client struct {
	cfg    Config
	logger *zap.Logger

	limiter *rate.Limiter
	slots   chan struct{}

	mu      sync.Mutex
	token   *TokenResponse
	expires time.Time
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = defaultRatePerMinute
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultMaxConcurrent
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:     cfg,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), 1),
		slots:   make(chan struct{}, cfg.MaxConcurrent),
	}
	for i := 0; i < cfg.MaxConcurrent; i++ {
		c.slots <- struct{}{}
	}
	return c
}

// acquire blocks until a concurrency slot is free and the rate limiter lets
// the request through. The returned func releases the slot.
func (c *Client) acquire(ctx context.Context) (func(), error) {
	select {
	case <-c.slots:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	release := func() { c.slots <- struct{}{} }
	if err := c.limiter.Wait(ctx); err != nil {
		release()
		return nil, err
	}
	return release, nil
}

type requestFunc func(url string, options ...grequests.Option) (*grequests.Response, error)

func (c *Client) send(ctx context.Context, do requestFunc, path string, ro *grequests.RequestOptions) (*grequests.Response, error) {
	url := c.cfg.BaseURL + path
	if ro.Headers == nil {
		ro.Headers = map[string]string{}
	}
	ro.Headers["Accept"] = "application/json"

	for attempt := 0; ; attempt++ {
		release, err := c.acquire(ctx)
		if err != nil {
			return nil, err
		}
		// FromRequestOptions replaces the whole option set, so it goes first.
		resp, err := do(url,
			grequests.FromRequestOptions(ro),
			grequests.Context(ctx),
			grequests.RequestTimeout(requestTimeout))
		release()
		if err != nil {
			return nil, fmt.Errorf("send request %s: %w", path, err)
		}
		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			resp.Close()
			wait := retryAfter(resp, attempt)
			c.logger.Warn("rate limited by osu! API",
				zap.String("path", path),
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait))
			select {
			case <-time.After(wait):
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if !resp.Ok {
			defer resp.Close()
			return nil, &APIError{StatusCode: resp.StatusCode, Body: resp.String()}
		}
		return resp, nil
	}
}

func retryAfter(resp *grequests.Response, attempt int) time.Duration {
	if resp.Header != nil {
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(attempt+1) * time.Second
}

// getJSON performs an authorized GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	return c.authorizedJSON(ctx, grequests.Get, path, &grequests.RequestOptions{Params: params}, out)
}

func (c *Client) authorizedJSON(ctx context.Context, do requestFunc, path string, ro *grequests.RequestOptions, out any) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}
	ro.Headers = map[string]string{
		"Authorization": token.TokenType + " " + token.AccessToken,
	}

	resp, err := c.send(ctx, do, path, ro)
	if err != nil {
		return err
	}
	defer resp.Close()

	if err := resp.JSON(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
