package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// TeamsClient implements gridapi.TeamsClient.
type TeamsClient struct {
	httpClient *http.Client
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client) *TeamsClient {
	return &TeamsClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID string) (*gridapi.Team, error) {
	path := "/v1/teams/" + teamID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	var team gridapi.Team

	err = json.Unmarshal(resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team: %w", err)
	}

	return &team, nil
}

// List implements gridapi.TeamsClient.List.
func (c *TeamsClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.Team], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/teams", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	var list gridapi.ListResponse[gridapi.Team]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing teams list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.TeamsClient.ListAll.
func (c *TeamsClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.Team] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}
