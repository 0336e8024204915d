package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

func TestEmployeesGet(t *testing.T) {
	tests := []TestGetOperation[gridapi.Employee]{
		{
			Name:         "existing employee",
			ID:           "emp-1",
			ExpectedPath: "/v1/employees/emp-1",
			StatusCode:   http.StatusOK,
			Response: &gridapi.Employee{
				Resource:  gridapi.Resource{ID: "emp-1"},
				FirstName: "Ada",
				LastName:  "Byron",
				WorkEmail: "ada@example.com",
				Status:    gridapi.EmployeeStatusActive,
			},
		},
		{
			Name:         "missing employee",
			ID:           "emp-404",
			ExpectedPath: "/v1/employees/emp-404",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "not_found",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gridapi.Employee, error) {
		return c.Employees().Get
	})
}

func TestEmployeesCreate(t *testing.T) {
	tests := []TestCreateOperation[gridapi.EmployeeCreateRequest, gridapi.Employee]{
		{
			Name: "valid employee",
			Request: &gridapi.EmployeeCreateRequest{
				FirstName: "Grace",
				LastName:  "Hopper",
				WorkEmail: "grace@example.com",
			},
			ExpectedPath: "/v1/employees",
			StatusCode:   http.StatusCreated,
			Response: &gridapi.Employee{
				Resource:  gridapi.Resource{ID: "emp-2"},
				FirstName: "Grace",
				LastName:  "Hopper",
				WorkEmail: "grace@example.com",
				Status:    gridapi.EmployeeStatusOnboarding,
			},
		},
		{
			Name: "validation failure",
			Request: &gridapi.EmployeeCreateRequest{
				FirstName: "No",
				LastName:  "Email",
			},
			ExpectedPath: "/v1/employees",
			StatusCode:   http.StatusUnprocessableEntity,
			Response: map[string]interface{}{
				"error": map[string]interface{}{
					"code":    "invalid_request",
					"message": "work_email is required",
				},
			},
			WantErr:    true,
			ErrMessage: "invalid_request",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *gridapi.EmployeeCreateRequest) (*gridapi.Employee, error) {
		return c.Employees().Create
	})
}

func TestEmployeesList(t *testing.T) {
	requestCount := 0
	pages := []gridapi.ListResponse[gridapi.Employee]{
		{
			Results: []gridapi.Employee{
				{Resource: gridapi.Resource{ID: "emp-1"}, FirstName: "Ada"},
				{Resource: gridapi.Resource{ID: "emp-2"}, FirstName: "Grace"},
			},
			HasMore:    true,
			NextCursor: StringPtr("c2"),
		},
	}

	server := newListServer(t, "/v1/employees", pages, &requestCount)
	defer server.Close()

	client := NewTestClient(server.URL)

	opts := gridapi.NewListOptions().WithLimit(2).WithFilter("status", "active")

	var page *gridapi.EmployeeList

	page, err := client.Employees().List(context.Background(), opts)
	require.NoError(t, err)

	assert.Len(t, page.Results, 2)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "c2", *page.NextCursor)
	assert.Equal(t, 1, requestCount)
}

func TestEmployeesListAllCrossesPages(t *testing.T) {
	requestCount := 0
	pages := []gridapi.ListResponse[gridapi.Employee]{
		{
			Results: []gridapi.Employee{
				{Resource: gridapi.Resource{ID: "emp-1"}},
				{Resource: gridapi.Resource{ID: "emp-2"}},
			},
			HasMore:    true,
			NextCursor: StringPtr("c2"),
		},
		{
			Results: []gridapi.Employee{
				{Resource: gridapi.Resource{ID: "emp-3"}},
			},
			HasMore: false,
		},
	}

	server := newListServer(t, "/v1/employees", pages, &requestCount)
	defer server.Close()

	client := NewTestClient(server.URL)

	employees, err := client.Employees().ListAll(context.Background(), nil).All()
	require.NoError(t, err)

	require.Len(t, employees, 3)
	assert.Equal(t, "emp-1", employees[0].ID)
	assert.Equal(t, "emp-3", employees[2].ID)
	assert.Equal(t, 2, requestCount)
}

func TestEmployeesUpdate(t *testing.T) {
	server := newMethodServer(t, http.MethodPatch, "/v1/employees/emp-1", http.StatusOK,
		&gridapi.Employee{
			Resource:  gridapi.Resource{ID: "emp-1"},
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
	defer server.Close()

	client := NewTestClient(server.URL)

	request := &gridapi.EmployeeUpdateRequest{LastName: StringPtr("Lovelace")}

	employee, err := client.Employees().Update(context.Background(), "emp-1", request)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", employee.LastName)
}

func TestEmployeesTerminate(t *testing.T) {
	server := newMethodServer(t, http.MethodPost, "/v1/employees/emp-1/terminate", http.StatusOK,
		&gridapi.Employee{
			Resource: gridapi.Resource{ID: "emp-1"},
			Status:   gridapi.EmployeeStatusTerminated,
			EndDate:  StringPtr("2026-09-30"),
		})
	defer server.Close()

	client := NewTestClient(server.URL)

	request := &gridapi.EmployeeTerminateRequest{EndDate: "2026-09-30"}

	employee, err := client.Employees().Terminate(context.Background(), "emp-1", request)
	require.NoError(t, err)
	assert.Equal(t, gridapi.EmployeeStatusTerminated, employee.Status)
}
