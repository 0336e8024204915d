package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

func TestPayrollRunsGet(t *testing.T) {
	tests := []TestGetOperation[gridapi.PayrollRun]{
		{
			Name:         "existing run",
			ID:           "run-1",
			ExpectedPath: "/v1/payroll_runs/run-1",
			StatusCode:   http.StatusOK,
			Response: &gridapi.PayrollRun{
				Resource:       gridapi.Resource{ID: "run-1"},
				Status:         gridapi.PayrollRunStatusProcessed,
				PayPeriodStart: "2026-08-01",
				PayPeriodEnd:   "2026-08-31",
				PayDate:        "2026-09-05",
			},
		},
		{
			Name:         "missing run",
			ID:           "run-404",
			ExpectedPath: "/v1/payroll_runs/run-404",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gridapi.PayrollRun, error) {
		return c.PayrollRuns().Get
	})
}

func TestPayrollRunsListPayments(t *testing.T) {
	requestCount := 0
	pages := []gridapi.ListResponse[gridapi.PayrollPayment]{
		{
			Results: []gridapi.PayrollPayment{
				{
					Resource:     gridapi.Resource{ID: "pay-1"},
					PayrollRunID: "run-1",
					EmployeeID:   "emp-1",
					Currency:     "USD",
					GrossAmount:  "8250.00",
					NetAmount:    "6112.40",
				},
			},
			HasMore: false,
		},
	}

	server := newListServer(t, "/v1/payroll_runs/run-1/payments", pages, &requestCount)
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.PayrollRuns().ListPayments(context.Background(), "run-1", nil)
	require.NoError(t, err)

	require.Len(t, page.Results, 1)
	assert.Equal(t, "emp-1", page.Results[0].EmployeeID)
	assert.Equal(t, "6112.40", page.Results[0].NetAmount)
}

func TestPayrollRunsListAllPaymentsCrossesPages(t *testing.T) {
	requestCount := 0
	pages := []gridapi.ListResponse[gridapi.PayrollPayment]{
		{
			Results: []gridapi.PayrollPayment{
				{Resource: gridapi.Resource{ID: "pay-1"}, EmployeeID: "emp-1"},
				{Resource: gridapi.Resource{ID: "pay-2"}, EmployeeID: "emp-2"},
			},
			HasMore:    true,
			NextCursor: StringPtr("c2"),
		},
		{
			Results: []gridapi.PayrollPayment{
				{Resource: gridapi.Resource{ID: "pay-3"}, EmployeeID: "emp-3"},
			},
			HasMore: false,
		},
	}

	server := newListServer(t, "/v1/payroll_runs/run-1/payments", pages, &requestCount)
	defer server.Close()

	client := NewTestClient(server.URL)

	payments, err := client.PayrollRuns().ListAllPayments(context.Background(), "run-1", nil).All()
	require.NoError(t, err)

	require.Len(t, payments, 3)
	assert.Equal(t, "pay-3", payments[2].ID)
	assert.Equal(t, 2, requestCount)
}
