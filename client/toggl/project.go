package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

type Project struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (c *Client) GetProjects(ctx context.Context) error {
	if c.projects != nil {
		return nil // projects are already loaded
	}

	endpoint := fmt.Sprintf("/api/v9/workspaces/%s/projects", c.WorkspaceID)
	resp, err := c.GetRequest(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("c.GetRequest(%s): %w", endpoint, err)
	}

	err = resp.Expect(http.StatusOK)
	if err != nil {
		return err
	}

	var projects []Project
	err = json.Unmarshal(resp.Body, &projects)
	if err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	c.projects = make(map[int64]string, len(projects))
	for _, p := range projects {
		c.projects[p.ID] = p.Name
	}
	return nil
}

// projectName falls back to the numeric ID for projects the workspace listing
// did not include, such as archived ones.
func (c *Client) projectName(id *int64) string {
	if id == nil {
		return ""
	}

	name, ok := c.projects[*id]
	if ok {
		return name
	}

	return strconv.FormatInt(*id, 10)
}
