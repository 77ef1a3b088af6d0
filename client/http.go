package client

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpClient wraps an http.Client, reading and closing every response body.
// The underlying client may carry its own transport (an oauth2 one, for
// instance).
type HttpClient struct {
	Client *http.Client
}

func NewHttpClient(timeout time.Duration) *HttpClient {
	return WrapHttpClient(&http.Client{}, timeout)
}

// WrapHttpClient adopts hc, setting its timeout when one is given.
func WrapHttpClient(hc *http.Client, timeout time.Duration) *HttpClient {
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &HttpClient{Client: hc}
}

type Resp struct {
	Code   int
	Body   []byte
	Header http.Header
}

// Expect returns a *StatusError unless the response carries the given code.
func (r *Resp) Expect(code int) error {
	if r.Code != code {
		return &StatusError{Code: r.Code, Body: string(r.Body)}
	}
	return nil
}

// StatusError describes a response with an unexpected status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error: resp %d - %s", e.Code, e.Body)
}

func (hc *HttpClient) Do(req *http.Request) (*Resp, error) {
	hr, err := hc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client error: %w", err)
	}
	defer hr.Body.Close()

	body, err := io.ReadAll(hr.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return &Resp{
		Code:   hr.StatusCode,
		Body:   body,
		Header: hr.Header,
	}, nil
}
