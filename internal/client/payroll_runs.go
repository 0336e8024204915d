package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// PayrollRunsClient implements gridapi.PayrollRunsClient.
type PayrollRunsClient struct {
	httpClient *http.Client
}

// NewPayrollRunsClient creates a new payroll runs client.
func NewPayrollRunsClient(httpClient *http.Client) *PayrollRunsClient {
	return &PayrollRunsClient{
		httpClient: httpClient,
	}
}

// Get implements gridapi.PayrollRunsClient.Get.
func (c *PayrollRunsClient) Get(ctx context.Context, payrollRunID string) (*gridapi.PayrollRun, error) {
	path := "/v1/payroll_runs/" + payrollRunID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting payroll run: %w", err)
	}

	var payrollRun gridapi.PayrollRun

	err = json.Unmarshal(resp.Body, &payrollRun)
	if err != nil {
		return nil, fmt.Errorf("parsing payroll run: %w", err)
	}

	return &payrollRun, nil
}

// List implements gridapi.PayrollRunsClient.List.
func (c *PayrollRunsClient) List(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.PayrollRun], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/payroll_runs", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing payroll runs: %w", err)
	}

	var list gridapi.ListResponse[gridapi.PayrollRun]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing payroll runs list: %w", err)
	}

	return &list, nil
}

// ListAll implements gridapi.PayrollRunsClient.ListAll.
func (c *PayrollRunsClient) ListAll(ctx context.Context, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.PayrollRun] {
	return gridapi.NewPageIterator(ctx, pageFetcher(opts, c.List))
}

// ListPayments implements gridapi.PayrollRunsClient.ListPayments.
func (c *PayrollRunsClient) ListPayments(ctx context.Context, payrollRunID string, opts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.PayrollPayment], error) {
	path := "/v1/payroll_runs/" + payrollRunID + "/payments"

	resp, err := c.httpClient.Get(ctx, path, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing payroll payments: %w", err)
	}

	var list gridapi.ListResponse[gridapi.PayrollPayment]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing payroll payments list: %w", err)
	}

	return &list, nil
}

// ListAllPayments implements gridapi.PayrollRunsClient.ListAllPayments.
func (c *PayrollRunsClient) ListAllPayments(ctx context.Context, payrollRunID string, opts *gridapi.ListOptions) *gridapi.PageIterator[gridapi.PayrollPayment] {
	list := func(ctx context.Context, pageOpts *gridapi.ListOptions) (*gridapi.ListResponse[gridapi.PayrollPayment], error) {
		return c.ListPayments(ctx, payrollRunID, pageOpts)
	}

	return gridapi.NewPageIterator(ctx, pageFetcher(opts, list))
}
