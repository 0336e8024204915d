package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

func TestTeamsGet(t *testing.T) {
	tests := []TestGetOperation[gridapi.Team]{
		{
			Name:         "existing team",
			ID:           "team-1",
			ExpectedPath: "/v1/teams/team-1",
			StatusCode:   http.StatusOK,
			Response: &gridapi.Team{
				Resource: gridapi.Resource{ID: "team-1"},
				Name:     "Platform",
			},
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gridapi.Team, error) {
		return c.Teams().Get
	})
}

func TestCompensationsGet(t *testing.T) {
	tests := []TestGetOperation[gridapi.Compensation]{
		{
			Name:         "existing compensation",
			ID:           "comp-1",
			ExpectedPath: "/v1/compensations/comp-1",
			StatusCode:   http.StatusOK,
			Response: &gridapi.Compensation{
				Resource:      gridapi.Resource{ID: "comp-1"},
				EmployeeID:    "emp-1",
				Currency:      "USD",
				Amount:        "142000.00",
				PayPeriod:     gridapi.PayPeriodAnnually,
				EffectiveDate: "2026-01-01",
			},
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*gridapi.Compensation, error) {
		return c.Compensations().Get
	})
}

func TestCompensationsListFilters(t *testing.T) {
	server := newListServerWithQuery(t, "/v1/compensations",
		map[string]string{"employee_id": "emp-1", "limit": "10"},
		gridapi.ListResponse[gridapi.Compensation]{
			Results: []gridapi.Compensation{
				{Resource: gridapi.Resource{ID: "comp-1"}, EmployeeID: "emp-1"},
			},
			HasMore: false,
		})
	defer server.Close()

	client := NewTestClient(server.URL)

	opts := gridapi.NewListOptions().WithLimit(10).WithFilter("employee_id", "emp-1")

	page, err := client.Compensations().List(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "emp-1", page.Results[0].EmployeeID)
}

func TestTimeEntriesCreate(t *testing.T) {
	tests := []TestCreateOperation[gridapi.TimeEntryCreateRequest, gridapi.TimeEntry]{
		{
			Name: "valid time entry",
			Request: &gridapi.TimeEntryCreateRequest{
				EmployeeID: "emp-1",
				Date:       "2026-08-28",
				Hours:      7.5,
			},
			ExpectedPath: "/v1/time_entries",
			StatusCode:   http.StatusCreated,
			Response: &gridapi.TimeEntry{
				Resource:   gridapi.Resource{ID: "te-1"},
				EmployeeID: "emp-1",
				Date:       "2026-08-28",
				Hours:      7.5,
			},
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *gridapi.TimeEntryCreateRequest) (*gridapi.TimeEntry, error) {
		return c.TimeEntries().Create
	})
}

func TestTimeEntriesDelete(t *testing.T) {
	server := newMethodServer(t, http.MethodDelete, "/v1/time_entries/te-1", http.StatusNoContent, nil)
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.TimeEntries().Delete(context.Background(), "te-1")
	require.NoError(t, err)
}

func TestListAllPropagatesCursorParameter(t *testing.T) {
	var cursors []string

	server := newRecordingListServer(t, "/v1/teams", &cursors, []gridapi.ListResponse[gridapi.Team]{
		{
			Results:    []gridapi.Team{{Resource: gridapi.Resource{ID: "team-1"}}},
			HasMore:    true,
			NextCursor: StringPtr("c2"),
		},
		{
			Results: []gridapi.Team{{Resource: gridapi.Resource{ID: "team-2"}}},
			HasMore: false,
		},
	})
	defer server.Close()

	client := NewTestClient(server.URL)

	teams, err := client.Teams().ListAll(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, teams, 2)

	// The first request carries no cursor; the second carries the token the
	// server handed back.
	require.Len(t, cursors, 2)
	assert.Empty(t, cursors[0])
	assert.Equal(t, "c2", cursors[1])
}
