package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// CompensationsClient implements gridapi.CompensationsClient.
type CompensationsClient struct {
	httpClient *http.Client
}

// NewCompensationsClient creates a new compensations client.
func NewCompensationsClient(httpClient *http.Client) *CompensationsClient {
	return &CompensationsClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.CompensationsClient.Get.
func (c *CompensationsClient) Get(ctx context.Context, compensationID string) (*gridapi.Compensation, error) {
	path := "/v1/compensations/" + compensationID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting compensation: %w", err)
	}

	var compensation gridapi.Compensation

	err = json.Unmarshal(resp.Body, &compensation)
	if err != nil {
		return nil, fmt.Errorf("parsing compensation: %w", err)
	}

	return &compensation, nil
}

// List implements gridapi.CompensationsClient.List.
func (c *CompensationsClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.Compensation], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/compensations", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing compensations: %w", err)
	}

	var list gridapi.ListResponse[gridapi.Compensation]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing compensations list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.CompensationsClient.ListAll.
func (c *CompensationsClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.Compensation] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}
