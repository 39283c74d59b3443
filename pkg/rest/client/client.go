// Package client provides a basic REST client for the autoconfig daemon.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client accesses the autoconfig daemon's HTTP endpoints.
type Client struct {
	restClient
}

// ServerStatus mirrors the daemon's status document.
type ServerStatus struct {
	Version     string   `json:"version"`
	BuildDate   string   `json:"build-date"`
	WebListener string   `json:"web-listener"`
	Domains     []string `json:"domains"`
}

// New creates a client given the base URL of an autoconfig server, ex:
// "http://localhost:8000".
func New(baseURL string) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		restClient{
			client: &http.Client{
				Timeout: 30 * time.Second,
			},
			baseURL: parsedURL,
		},
	}
	return c, nil
}

// GetClientConfig fetches the rendered autoconfig XML document for the
// given email address.
func (c *Client) GetClientConfig(ctx context.Context, emailAddress string) ([]byte, error) {
	return c.getDocument(ctx, url.Values{"emailaddress": {emailAddress}})
}

// GetClientConfigForDomain fetches the autoconfig XML document for the
// given domain, with its placeholders unexpanded.
func (c *Client) GetClientConfigForDomain(ctx context.Context, domain string) ([]byte, error) {
	return c.getDocument(ctx, url.Values{"domain": {domain}})
}

// GetServerStatus fetches the daemon status.
func (c *Client) GetServerStatus(ctx context.Context) (*ServerStatus, error) {
	status := &ServerStatus{}
	if err := c.doJSON(ctx, "/api/v1/status", status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) getDocument(ctx context.Context, query url.Values) ([]byte, error) {
	resp, err := c.do(ctx, "/mail/config-v1.1.xml", query)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP response status %v: %s",
			resp.StatusCode, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
