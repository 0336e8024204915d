package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// EmployeesClient implements gridapi.EmployeesClient.
type EmployeesClient struct {
	httpClient *http.Client
}

// NewEmployeesClient creates a new employees client.
func NewEmployeesClient(httpClient *http.Client) *EmployeesClient {
	return &EmployeesClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.EmployeesClient.Get.
func (c *EmployeesClient) Get(ctx context.Context, employeeID string) (*gridapi.Employee, error) {
	path := "/v1/employees/" + employeeID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting employee: %w", err)
	}

	var employee gridapi.Employee

	err = json.Unmarshal(resp.Body, &employee)
	if err != nil {
		return nil, fmt.Errorf("parsing employee: %w", err)
	}

	return &employee, nil
}

// List implements gridapi.EmployeesClient.List.
func (c *EmployeesClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.EmployeeList, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/employees", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	var list gridapi.ListResponse[gridapi.Employee]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing employees list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.EmployeesClient.ListAll.
func (c *EmployeesClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.Employee] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}

// Create implements gridapi.EmployeesClient.Create.
func (c *EmployeesClient) Create(ctx context.Context, request *gridapi.EmployeeCreateRequest) (*gridapi.Employee, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/employees", request)
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	var employee gridapi.Employee

	err = json.Unmarshal(resp.Body, &employee)
	if err != nil {
		return nil, fmt.Errorf("parsing employee response: %w", err)
	}

	return &employee, nil
}

// Update implements gridapi.EmployeesClient.Update.
func (c *EmployeesClient) Update(ctx context.Context, employeeID string, request *gridapi.EmployeeUpdateRequest) (*gridapi.Employee, error) {
	path := "/v1/employees/" + employeeID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating employee: %w", err)
	}

	var employee gridapi.Employee

	err = json.Unmarshal(resp.Body, &employee)
	if err != nil {
		return nil, fmt.Errorf("parsing employee response: %w", err)
	}

	return &employee, nil
}

// Terminate implements gridapi.EmployeesClient.Terminate.
func (c *EmployeesClient) Terminate(ctx context.Context, employeeID string, request *gridapi.EmployeeTerminateRequest) (*gridapi.Employee, error) {
	path := "/v1/employees/" + employeeID + "/terminate"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("terminating employee: %w", err)
	}

	var employee gridapi.Employee

	err = json.Unmarshal(resp.Body, &employee)
	if err != nil {
		return nil, fmt.Errorf("parsing employee response: %w", err)
	}

	return &employee, nil
}
