package client

import (
	"context"
	"net/url"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// listValues converts list options to query values, tolerating nil options.
func listValues(opts *gridapi.ListOptions) url.Values {
	if opts == nil {
		return nil
	}

	return opts.ToValues()
}

// listFunc is the List method shape shared by all resource clients.
type listFunc[T any] func(ctx context.Context, opts *gridapi.ListOptions) (*gridapi.ListResponse[T], error)

// pageFetcher adapts a List method into a gridapi.PageFetcher. The caller's
// options are cloned up front so the iterator can advance its cursor without
// touching them; the other parameters stay fixed across all pages.
func pageFetcher[T any](opts *gridapi.ListOptions, list listFunc[T]) gridapi.PageFetcher[T] {
	base := opts.Clone()

	return func(ctx context.Context, cursor *string) (*gridapi.ListResponse[T], error) {
		pageOpts := base.Clone()
		if cursor != nil {
			pageOpts.Cursor = *cursor
		}

		return list(ctx, pageOpts)
	}
}
