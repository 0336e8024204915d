package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// TimeEntriesClient implements gridapi.TimeEntriesClient.
type TimeEntriesClient struct {
	httpClient *http.Client
}

// NewTimeEntriesClient creates a new time entries client.
func NewTimeEntriesClient(httpClient *http.Client) *TimeEntriesClient {
	return &TimeEntriesClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.TimeEntriesClient.Get.
func (c *TimeEntriesClient) Get(ctx context.Context, timeEntryID string) (*gridapi.TimeEntry, error) {
	path := "/v1/time_entries/" + timeEntryID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting time entry: %w", err)
	}

	var timeEntry gridapi.TimeEntry

	err = json.Unmarshal(resp.Body, &timeEntry)
	if err != nil {
		return nil, fmt.Errorf("parsing time entry: %w", err)
	}

	return &timeEntry, nil
}

// List implements gridapi.TimeEntriesClient.List.
func (c *TimeEntriesClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.TimeEntry], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/time_entries", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}

	var list gridapi.ListResponse[gridapi.TimeEntry]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing time entries list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.TimeEntriesClient.ListAll.
func (c *TimeEntriesClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.TimeEntry] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}

// Create implements gridapi.TimeEntriesClient.Create.
func (c *TimeEntriesClient) Create(ctx context.Context, request *gridapi.TimeEntryCreateRequest) (*gridapi.TimeEntry, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/time_entries", request)
	if err != nil {
		return nil, fmt.Errorf("creating time entry: %w", err)
	}

	var timeEntry gridapi.TimeEntry

	err = json.Unmarshal(resp.Body, &timeEntry)
	if err != nil {
		return nil, fmt.Errorf("parsing time entry response: %w", err)
	}

	return &timeEntry, nil
}

// Delete implements gridapi.TimeEntriesClient.Delete.
func (c *TimeEntriesClient) Delete(ctx context.Context, timeEntryID string) error {
	path := "/v1/time_entries/" + timeEntryID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}

	return nil
}
