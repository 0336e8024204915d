package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// DepartmentsClient implements gridapi.DepartmentsClient.
type DepartmentsClient struct {
	httpClient *http.Client
}

// NewDepartmentsClient creates a new departments client.
func NewDepartmentsClient(httpClient *http.Client) *DepartmentsClient {
	return &DepartmentsClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.DepartmentsClient.Get.
func (c *DepartmentsClient) Get(ctx context.Context, departmentID string) (*gridapi.Department, error) {
	path := "/v1/departments/" + departmentID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting department: %w", err)
	}

	var department gridapi.Department

	err = json.Unmarshal(resp.Body, &department)
	if err != nil {
		return nil, fmt.Errorf("parsing department: %w", err)
	}

	return &department, nil
}

// List implements gridapi.DepartmentsClient.List.
func (c *DepartmentsClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.Department], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/departments", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}

	var list gridapi.ListResponse[gridapi.Department]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing departments list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.DepartmentsClient.ListAll.
func (c *DepartmentsClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.Department] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}

// Create implements gridapi.DepartmentsClient.Create.
func (c *DepartmentsClient) Create(ctx context.Context, request *gridapi.DepartmentCreateRequest) (*gridapi.Department, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/departments", request)
	if err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}

	var department gridapi.Department

	err = json.Unmarshal(resp.Body, &department)
	if err != nil {
		return nil, fmt.Errorf("parsing department response: %w", err)
	}

	return &department, nil
}

// Update implements gridapi.DepartmentsClient.Update.
func (c *DepartmentsClient) Update(ctx context.Context, departmentID string, request *gridapi.DepartmentUpdateRequest) (*gridapi.Department, error) {
	path := "/v1/departments/" + departmentID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating department: %w", err)
	}

	var department gridapi.Department

	err = json.Unmarshal(resp.Body, &department)
	if err != nil {
		return nil, fmt.Errorf("parsing department response: %w", err)
	}

	return &department, nil
}

// Delete implements gridapi.DepartmentsClient.Delete.
func (c *DepartmentsClient) Delete(ctx context.Context, departmentID string) error {
	path := "/v1/departments/" + departmentID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}

	return nil
}
