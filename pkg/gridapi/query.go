package gridapi

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions expresses common list parameters: cursor, page size, ordering,
// expansions, and arbitrary equality filters. Everything except Cursor is a
// fixed per-listing parameter and stays constant across all pages of one
// logical listing.
type ListOptions struct {
	// Cursor is the opaque position token for the page to fetch. Empty for
	// the first page.
	Cursor string
	// Limit is the requested page size. Zero lets the server choose.
	Limit int
	// OrderBy names a sort field, optionally prefixed with "-" for
	// descending order.
	OrderBy string
	// Expand lists related objects to inline in the response.
	Expand []string
	// Filters maps filter names to accepted values. Multiple values for one
	// name are joined with commas.
	Filters map[string][]string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string][]string),
	}
}

// WithCursor sets the cursor.
func (o *ListOptions) WithCursor(cursor string) *ListOptions {
	o.Cursor = cursor

	return o
}

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = limit

	return o
}

// WithOrderBy sets the sort order.
func (o *ListOptions) WithOrderBy(orderBy string) *ListOptions {
	o.OrderBy = orderBy

	return o
}

// WithExpand appends expansions.
func (o *ListOptions) WithExpand(relations ...string) *ListOptions {
	o.Expand = append(o.Expand, relations...)

	return o
}

// WithFilter appends values to a named filter.
func (o *ListOptions) WithFilter(name string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[name] = append(o.Filters[name], values...)

	return o
}

// ToValues converts the options to URL query values. The cursor parameter is
// present only when a cursor is known.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Cursor != "" {
		values.Set("cursor", o.Cursor)
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.OrderBy != "" {
		values.Set("order_by", o.OrderBy)
	}

	if len(o.Expand) > 0 {
		values.Set("expand", strings.Join(o.Expand, ","))
	}

	for name, vals := range o.Filters {
		if len(vals) > 0 {
			values.Set(name, strings.Join(vals, ","))
		}
	}

	return values
}

// Clone returns a copy of the options so one logical listing can advance its
// cursor without mutating the caller's options.
func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return NewListOptions()
	}

	copied := &ListOptions{
		Cursor:  o.Cursor,
		Limit:   o.Limit,
		OrderBy: o.OrderBy,
		Expand:  append([]string(nil), o.Expand...),
		Filters: make(map[string][]string, len(o.Filters)),
	}

	for name, vals := range o.Filters {
		copied.Filters[name] = append([]string(nil), vals...)
	}

	return copied
}
