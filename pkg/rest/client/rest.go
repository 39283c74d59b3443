package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// httpClient allows http.Client to be mocked for tests.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Generic REST restClient.
type restClient struct {
	client  httpClient
	baseURL *url.URL
}

// do performs an HTTP GET with this client and returns the response.
func (c *restClient) do(ctx context.Context, uri string, query url.Values) (*http.Response, error) {
	u := c.baseURL.JoinPath(uri)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("GET for %q: %w", u, err)
	}
	return c.client.Do(req)
}

// doJSON performs an HTTP GET with this client and unmarshalls the JSON
// response into v.
func (c *restClient) doJSON(ctx context.Context, uri string, v interface{}) error {
	resp, err := c.do(ctx, uri, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET for %q, unexpected %v: %s", uri, resp.StatusCode, resp.Status)
	}
	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
