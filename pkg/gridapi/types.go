package gridapi

import (
	"time"
)

// Resource represents the base structure for all Grid API resources.
type Resource struct {
	ID        string    `json:"id"         yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// ListResponse represents one page of a cursor-paginated list response.
//
// NextCursor is an opaque server-issued token; callers must not interpret or
// mutate it, only round-trip it into the next request. A response with
// HasMore set but no cursor is treated as exhausted by the pagination
// helpers.
type ListResponse[T any] struct {
	Results    []T     `json:"results"               yaml:"results"`
	HasMore    bool    `json:"has_more"              yaml:"has_more"`
	NextCursor *string `json:"next_cursor,omitempty" yaml:"next_cursor,omitempty"`
	TotalCount *int    `json:"total_count,omitempty" yaml:"total_count,omitempty"`
}

// EmployeeStatus enumerates lifecycle states of an employee record.
type EmployeeStatus string

const (
	EmployeeStatusOnboarding EmployeeStatus = "onboarding"
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

// Employee represents an employee record.
type Employee struct {
	Resource

	FirstName     string         `json:"first_name"              yaml:"first_name"`
	LastName      string         `json:"last_name"               yaml:"last_name"`
	PreferredName *string        `json:"preferred_name,omitempty" yaml:"preferred_name,omitempty"`
	WorkEmail     string         `json:"work_email"              yaml:"work_email"`
	Title         *string        `json:"title,omitempty"         yaml:"title,omitempty"`
	Status        EmployeeStatus `json:"status"                  yaml:"status"`
	DepartmentID  *string        `json:"department_id,omitempty" yaml:"department_id,omitempty"`
	TeamID        *string        `json:"team_id,omitempty"       yaml:"team_id,omitempty"`
	ManagerID     *string        `json:"manager_id,omitempty"    yaml:"manager_id,omitempty"`
	StartDate     *string        `json:"start_date,omitempty"    yaml:"start_date,omitempty"`
	EndDate       *string        `json:"end_date,omitempty"      yaml:"end_date,omitempty"`
}

// EmployeeCreateRequest is the payload for creating an employee.
type EmployeeCreateRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	WorkEmail    string  `json:"work_email"`
	Title        *string `json:"title,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	TeamID       *string `json:"team_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
}

// EmployeeUpdateRequest is the payload for updating an employee. Nil fields
// are left unchanged.
type EmployeeUpdateRequest struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	PreferredName *string `json:"preferred_name,omitempty"`
	WorkEmail     *string `json:"work_email,omitempty"`
	Title         *string `json:"title,omitempty"`
	DepartmentID  *string `json:"department_id,omitempty"`
	TeamID        *string `json:"team_id,omitempty"`
	ManagerID     *string `json:"manager_id,omitempty"`
}

// EmployeeTerminateRequest is the payload for terminating an employee.
type EmployeeTerminateRequest struct {
	EndDate string  `json:"end_date"`
	Reason  *string `json:"reason,omitempty"`
}

// Department represents a department.
type Department struct {
	Resource

	Name     string  `json:"name"                yaml:"name"`
	ParentID *string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// DepartmentCreateRequest is the payload for creating a department.
type DepartmentCreateRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

// DepartmentUpdateRequest is the payload for updating a department.
type DepartmentUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
}

// Team represents a team within a department.
type Team struct {
	Resource

	Name         string  `json:"name"                    yaml:"name"`
	DepartmentID *string `json:"department_id,omitempty" yaml:"department_id,omitempty"`
}

// PayPeriod enumerates supported compensation pay periods.
type PayPeriod string

const (
	PayPeriodHourly   PayPeriod = "hourly"
	PayPeriodMonthly  PayPeriod = "monthly"
	PayPeriodAnnually PayPeriod = "annually"
)

// Compensation represents a compensation record for an employee. Amounts are
// decimal strings in the minor unit of Currency.
type Compensation struct {
	Resource

	EmployeeID    string    `json:"employee_id"              yaml:"employee_id"`
	Currency      string    `json:"currency"                 yaml:"currency"`
	Amount        string    `json:"amount"                   yaml:"amount"`
	PayPeriod     PayPeriod `json:"pay_period"               yaml:"pay_period"`
	EffectiveDate string    `json:"effective_date"           yaml:"effective_date"`
	EndDate       *string   `json:"end_date,omitempty"       yaml:"end_date,omitempty"`
}

// LeaveRequestStatus enumerates leave request states.
type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusDeclined LeaveRequestStatus = "declined"
	LeaveRequestStatusCanceled LeaveRequestStatus = "canceled"
)

// LeaveRequest represents a leave request.
type LeaveRequest struct {
	Resource

	EmployeeID string             `json:"employee_id"         yaml:"employee_id"`
	LeaveType  string             `json:"leave_type"          yaml:"leave_type"`
	Status     LeaveRequestStatus `json:"status"              yaml:"status"`
	StartDate  string             `json:"start_date"          yaml:"start_date"`
	EndDate    string             `json:"end_date"            yaml:"end_date"`
	NumHours   *float64           `json:"num_hours,omitempty" yaml:"num_hours,omitempty"`
	Reason     *string            `json:"reason,omitempty"    yaml:"reason,omitempty"`
}

// LeaveRequestCreateRequest is the payload for creating a leave request.
type LeaveRequestCreateRequest struct {
	EmployeeID string   `json:"employee_id"`
	LeaveType  string   `json:"leave_type"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	NumHours   *float64 `json:"num_hours,omitempty"`
	Reason     *string  `json:"reason,omitempty"`
}

// TimeEntry represents a logged unit of work time.
type TimeEntry struct {
	Resource

	EmployeeID string   `json:"employee_id"          yaml:"employee_id"`
	Date       string   `json:"date"                 yaml:"date"`
	Hours      float64  `json:"hours"                yaml:"hours"`
	Approved   bool     `json:"approved"             yaml:"approved"`
	ProjectID  *string  `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Note       *string  `json:"note,omitempty"       yaml:"note,omitempty"`
}

// TimeEntryCreateRequest is the payload for creating a time entry.
type TimeEntryCreateRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	ProjectID  *string `json:"project_id,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// PayrollRunStatus enumerates payroll run states.
type PayrollRunStatus string

const (
	PayrollRunStatusDraft     PayrollRunStatus = "draft"
	PayrollRunStatusApproved  PayrollRunStatus = "approved"
	PayrollRunStatusProcessed PayrollRunStatus = "processed"
)

// PayrollRun represents one payroll run.
type PayrollRun struct {
	Resource

	Status         PayrollRunStatus `json:"status"           yaml:"status"`
	PayPeriodStart string           `json:"pay_period_start" yaml:"pay_period_start"`
	PayPeriodEnd   string           `json:"pay_period_end"   yaml:"pay_period_end"`
	PayDate        string           `json:"pay_date"         yaml:"pay_date"`
}

// PayrollPayment represents one employee's payment within a payroll run.
type PayrollPayment struct {
	Resource

	PayrollRunID string `json:"payroll_run_id" yaml:"payroll_run_id"`
	EmployeeID   string `json:"employee_id"    yaml:"employee_id"`
	Currency     string `json:"currency"       yaml:"currency"`
	GrossAmount  string `json:"gross_amount"   yaml:"gross_amount"`
	NetAmount    string `json:"net_amount"     yaml:"net_amount"`
}

// EmployeeList represents a page of Employee resources.
type EmployeeList = ListResponse[Employee]

// LeaveRequestList represents a page of LeaveRequest resources.
type LeaveRequestList = ListResponse[LeaveRequest]
