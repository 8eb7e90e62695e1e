package osuapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/levigross/grequests"
	"go.uber.org/zap"
)

// TokenResponse models the osu! OAuth token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// Token returns a client_credentials token, fetching a new one when the
// cached token is missing or about to expire.
func (c *Client) Token(ctx context.Context) (*TokenResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && time.Now().Before(c.expires) {
		return c.token, nil
	}
	if c.cfg.ClientID == 0 || c.cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := c.send(ctx, grequests.Post, "/oauth/token", &grequests.RequestOptions{
		Data: map[string]string{
			"client_id":     strconv.Itoa(c.cfg.ClientID),
			"client_secret": c.cfg.ClientSecret,
			"grant_type":    "client_credentials",
			"scope":         "public",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch token: %w", err)
	}
	defer resp.Close()

	var tok TokenResponse
	if err := resp.JSON(&tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	c.token = &tok
	// refresh a minute early so in-flight requests never carry a stale token
	c.expires = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	c.logger.Debug("fetched osu! API token", zap.Int("expires_in", tok.ExpiresIn))
	return c.token, nil
}
