package toggl

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sporadisk/timesheet/client"
)

func (c *Client) GetRequest(ctx context.Context, path string, params map[string]string) (*client.Resp, error) {
	endpointUrl := c.Endpoint + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}
	q := url.Values{}
	for k, v := range params {
		q.Add(k, v)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	return c.HttpClient.Do(req)
}

func (c *Client) PostRequest(ctx context.Context, path string, body []byte) (*client.Resp, error) {
	endpointUrl := c.Endpoint + path
	bodyReader := bytes.NewBuffer(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointUrl, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.HttpClient.Do(req)
}

// authorize sets basic auth for API tokens. Bearer tokens are attached by the
// oauth2 transport set up in Init.
func (c *Client) authorize(req *http.Request) {
	if c.APIToken != "" {
		req.SetBasicAuth(c.APIToken, "api_token")
	}
}
