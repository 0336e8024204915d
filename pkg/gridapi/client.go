package gridapi

import (
	"context"
	"time"
)

// EmployeesClient provides access to employee resources.
type EmployeesClient interface {
	Get(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, opts *ListOptions) (*EmployeeList, error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Employee]
	Create(ctx context.Context, request *EmployeeCreateRequest) (*Employee, error)
	Update(ctx context.Context, employeeID string, request *EmployeeUpdateRequest) (*Employee, error)
	Terminate(ctx context.Context, employeeID string, request *EmployeeTerminateRequest) (*Employee, error)
}

// DepartmentsClient provides access to department resources.
type DepartmentsClient interface {
	Get(ctx context.Context, departmentID string) (*Department, error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Department], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Department]
	Create(ctx context.Context, request *DepartmentCreateRequest) (*Department, error)
	Update(ctx context.Context, departmentID string, request *DepartmentUpdateRequest) (*Department, error)
	Delete(ctx context.Context, departmentID string) error
}

// TeamsClient provides access to team resources.
type TeamsClient interface {
	Get(ctx context.Context, teamID string) (*Team, error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Team], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Team]
}

// CompensationsClient provides access to compensation records.
type CompensationsClient interface {
	Get(ctx context.Context, compensationID string) (*Compensation, error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Compensation], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Compensation]
}

// LeaveRequestsClient provides access to leave requests.
type LeaveRequestsClient interface {
	Get(ctx context.Context, leaveRequestID string) (*LeaveRequest, error)
	List(ctx context.Context, opts *ListOptions) (*LeaveRequestList, error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[LeaveRequest]
	Create(ctx context.Context, request *LeaveRequestCreateRequest) (*LeaveRequest, error)
	Approve(ctx context.Context, leaveRequestID string) (*LeaveRequest, error)
	Decline(ctx context.Context, leaveRequestID string) (*LeaveRequest, error)
	Cancel(ctx context.Context, leaveRequestID string) (*LeaveRequest, error)
}

// TimeEntriesClient provides access to time entries.
type TimeEntriesClient interface {
	Get(ctx context.Context, timeEntryID string) (*TimeEntry, error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[TimeEntry], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[TimeEntry]
	Create(ctx context.Context, request *TimeEntryCreateRequest) (*TimeEntry, error)
	Delete(ctx context.Context, timeEntryID string) error
}

// PayrollRunsClient provides access to payroll runs and their payments.
type PayrollRunsClient interface {
	Get(ctx context.Context, payrollRunID string) (*PayrollRun, error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[PayrollRun], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[PayrollRun]
	ListPayments(ctx context.Context, payrollRunID string, opts *ListOptions) (*ListResponse[PayrollPayment], error)
	ListAllPayments(ctx context.Context, payrollRunID string, opts *ListOptions) *PageIterator[PayrollPayment]
}

// Client provides access to all Grid API resource clients.
type Client interface {
	Employees() EmployeesClient
	Departments() DepartmentsClient
	Teams() TeamsClient
	Compensations() CompensationsClient
	LeaveRequests() LeaveRequestsClient
	TimeEntries() TimeEntriesClient
	PayrollRuns() PayrollRunsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gridapi.Client.
//
// Authentication is a static Bearer token attached to every request. Token
// acquisition and refresh are outside this library; rotate the token by
// constructing a new client.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. Transient failures (>=500, 429, connection errors) are
// retried inside the HTTP transport according to RetryMax/RetryWaitMin/
// RetryWaitMax; nothing above the transport retries.
type Config struct {
	// APIEndpoint is the base URL for the Grid API
	// (e.g., "https://api.peoplegrid.dev").
	APIEndpoint string

	// APIToken is the static Bearer token.
	APIToken string

	// RetryMax is the maximum number of transport-level retries for
	// transient failures. If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally configures GET response caching.
	Cache *CacheConfig
}
