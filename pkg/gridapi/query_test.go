package gridapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

func TestListOptionsToValues(t *testing.T) {
	t.Parallel()

	opts := gridapi.NewListOptions().
		WithCursor("abc").
		WithLimit(25).
		WithOrderBy("-created_at").
		WithExpand("department", "team").
		WithFilter("status", "active", "on_leave")

	values := opts.ToValues()

	assert.Equal(t, "abc", values.Get("cursor"))
	assert.Equal(t, "25", values.Get("limit"))
	assert.Equal(t, "-created_at", values.Get("order_by"))
	assert.Equal(t, "department,team", values.Get("expand"))
	assert.Equal(t, "active,on_leave", values.Get("status"))
}

func TestListOptionsToValuesEmpty(t *testing.T) {
	t.Parallel()

	values := gridapi.NewListOptions().ToValues()

	assert.Empty(t, values)
}

func TestListOptionsOmitsEmptyCursor(t *testing.T) {
	t.Parallel()

	values := gridapi.NewListOptions().WithLimit(10).ToValues()

	_, present := values["cursor"]
	assert.False(t, present)
}

func TestListOptionsClone(t *testing.T) {
	t.Parallel()

	opts := gridapi.NewListOptions().
		WithCursor("pos").
		WithFilter("status", "active").
		WithExpand("team")

	clone := opts.Clone()
	require.NotNil(t, clone)

	clone.Cursor = "elsewhere"
	clone.WithFilter("status", "terminated")
	clone.WithExpand("manager")

	// Mutating the clone leaves the original untouched.
	assert.Equal(t, "pos", opts.Cursor)
	assert.Equal(t, []string{"active"}, opts.Filters["status"])
	assert.Equal(t, []string{"team"}, opts.Expand)
}

func TestListOptionsCloneNil(t *testing.T) {
	t.Parallel()

	var opts *gridapi.ListOptions

	clone := opts.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone.Cursor)
	assert.NotNil(t, clone.Filters)
}
