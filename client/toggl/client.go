package toggl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sporadisk/timesheet/client"
	"github.com/sporadisk/timesheet/format"
	"golang.org/x/oauth2"
)

const DefaultEndpoint = "https://api.track.toggl.com"

// Client fetches detailed time entry reports from Toggl Track. Credentials
// are supplied by the caller: either an API token (sent as HTTP basic auth)
// or a bearer token.
type Client struct {
	// Configuration
	Endpoint    string
	APIToken    string
	BearerToken string
	WorkspaceID string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	RawOutput   string // optional path; the raw report pages are written here
	Timeout     time.Duration

	// State
	HttpClient *client.HttpClient
	projects   map[int64]string
}

func (c *Client) Init(ctx context.Context) error {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")

	if strings.TrimSpace(c.WorkspaceID) == "" {
		return fmt.Errorf("workspace ID cannot be empty")
	}

	if strings.TrimSpace(c.APIToken) == "" && strings.TrimSpace(c.BearerToken) == "" {
		return fmt.Errorf("either an API token or a bearer token is required")
	}

	err := c.validateRange()
	if err != nil {
		return fmt.Errorf("validateRange: %w", err)
	}

	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}

	if c.HttpClient != nil {
		return nil
	}

	if c.BearerToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: c.BearerToken,
			TokenType:   "Bearer",
		})
		c.HttpClient = client.WrapHttpClient(oauth2.NewClient(ctx, src), c.Timeout)
		return nil
	}

	c.HttpClient = client.NewHttpClient(c.Timeout)
	return nil
}

func (c *Client) validateRange() error {
	start, err := time.Parse(format.DateLayout, c.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date %q", format.ErrInvalidDate, c.StartDate)
	}

	end, err := time.Parse(format.DateLayout, c.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end date %q", format.ErrInvalidDate, c.EndDate)
	}

	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", c.EndDate, c.StartDate)
	}

	return nil
}
