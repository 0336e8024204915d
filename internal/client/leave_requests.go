package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// LeaveRequestsClient implements gridapi.LeaveRequestsClient.
type LeaveRequestsClient struct {
	httpClient *http.Client
}

// NewLeaveRequestsClient creates a new leave requests client.
func NewLeaveRequestsClient(httpClient *http.Client) *LeaveRequestsClient {
	return &LeaveRequestsClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.LeaveRequestsClient.Get.
func (c *LeaveRequestsClient) Get(ctx context.Context, leaveRequestID string) (*gridapi.LeaveRequest, error) {
	path := "/v1/leave_requests/" + leaveRequestID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting leave request: %w", err)
	}

	var leaveRequest gridapi.LeaveRequest

	err = json.Unmarshal(resp.Body, &leaveRequest)
	if err != nil {
		return nil, fmt.Errorf("parsing leave request: %w", err)
	}

	return &leaveRequest, nil
}

// List implements gridapi.LeaveRequestsClient.List.
func (c *LeaveRequestsClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.LeaveRequestList, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/leave_requests", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing leave requests: %w", err)
	}

	var list gridapi.ListResponse[gridapi.LeaveRequest]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing leave requests list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.LeaveRequestsClient.ListAll.
func (c *LeaveRequestsClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.LeaveRequest] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}

// Create implements gridapi.LeaveRequestsClient.Create.
func (c *LeaveRequestsClient) Create(ctx context.Context, request *gridapi.LeaveRequestCreateRequest) (*gridapi.LeaveRequest, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/leave_requests", request)
	if err != nil {
		return nil, fmt.Errorf("creating leave request: %w", err)
	}

	var leaveRequest gridapi.LeaveRequest

	err = json.Unmarshal(resp.Body, &leaveRequest)
	if err != nil {
		return nil, fmt.Errorf("parsing leave request response: %w", err)
	}

	return &leaveRequest, nil
}

// Approve implements gridapi.LeaveRequestsClient.Approve.
func (c *LeaveRequestsClient) Approve(ctx context.Context, leaveRequestID string) (*gridapi.LeaveRequest, error) {
	return c.transition(ctx, leaveRequestID, "approve")
}

// Decline implements gridapi.LeaveRequestsClient.Decline.
func (c *LeaveRequestsClient) Decline(ctx context.Context, leaveRequestID string) (*gridapi.LeaveRequest, error) {
	return c.transition(ctx, leaveRequestID, "decline")
}

// Cancel implements gridapi.LeaveRequestsClient.Cancel.
func (c *LeaveRequestsClient) Cancel(ctx context.Context, leaveRequestID string) (*gridapi.LeaveRequest, error) {
	return c.transition(ctx, leaveRequestID, "cancel")
}

// transition posts a lifecycle action for a leave request.
func (c *LeaveRequestsClient) transition(ctx context.Context, leaveRequestID, action string) (*gridapi.LeaveRequest, error) {
	path := "/v1/leave_requests/" + leaveRequestID + "/" + action

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s leave request: %w", action, err)
	}

	var leaveRequest gridapi.LeaveRequest

	err = json.Unmarshal(resp.Body, &leaveRequest)
	if err != nil {
		return nil, fmt.Errorf("parsing leave request response: %w", err)
	}

	return &leaveRequest, nil
}
