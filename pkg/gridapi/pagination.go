package gridapi

import (
	"context"
)

// PageFetcher fetches one page of a cursor-paginated listing. A nil cursor
// requests the first page; otherwise the cursor is the opaque token returned
// by the previous page. Fixed per-listing parameters (filters, ordering,
// expansions) are captured in the closure and must not vary between pages.
type PageFetcher[T any] func(ctx context.Context, cursor *string) (*ListResponse[T], error)

// PageIterator converts a PageFetcher into a lazy, pull-based sequence of
// items. Pages are fetched strictly on demand: the request for page N+1 is
// issued only once page N's items are drained and the consumer keeps
// pulling. An iterator is single-use; create a new one to restart from the
// beginning.
//
// After all successfully fetched items have been yielded, Next returns either
// ErrNoMoreItems (clean end of listing) or, exactly once, the error of the
// page fetch that broke the listing off. The iterator never retries and never
// yields a partially decoded page.
type PageIterator[T any] struct {
	ctx       context.Context
	fetch     PageFetcher[T]
	buffer    []T
	cursor    *string
	exhausted bool
	err       error
	errServed bool
}

// NewPageIterator creates an iterator over all items produced by fetch,
// starting from the beginning of the listing.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// fill fetches the next page into the buffer if the buffer is drained and
// further fetches are permitted. It also decides, from the page just
// fetched, whether another fetch will be allowed later.
func (it *PageIterator[T]) fill() {
	if len(it.buffer) > 0 || it.exhausted || it.err != nil {
		return
	}

	if it.fetch == nil {
		it.err = ErrNilPageFetcher
		return
	}

	requestCursor := it.cursor

	page, err := it.fetch(it.ctx, requestCursor)
	if err != nil {
		it.err = err
		it.exhausted = true

		return
	}

	it.buffer = page.Results

	// Continuation predicate. The cursor comparison is a tie-break against
	// servers that echo back the cursor they were given; without it a
	// malformed response would loop forever.
	if page.HasMore && len(page.Results) > 0 && page.NextCursor != nil &&
		!cursorsEqual(page.NextCursor, requestCursor) {
		it.cursor = page.NextCursor
	} else {
		it.exhausted = true
	}
}

// HasNext reports whether Next will yield another item or a pending terminal
// error. It may perform a page fetch when the current page is drained.
func (it *PageIterator[T]) HasNext() bool {
	if len(it.buffer) > 0 {
		return true
	}

	if it.err != nil {
		return !it.errServed
	}

	if it.exhausted {
		return false
	}

	it.fill()

	return len(it.buffer) > 0 || (it.err != nil && !it.errServed)
}

// Next returns the next item in the listing. When the listing is cleanly
// exhausted it returns ErrNoMoreItems; when a page fetch failed it returns
// that error exactly once and ErrNoMoreItems afterwards.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if len(it.buffer) == 0 {
		it.fill()
	}

	if len(it.buffer) > 0 {
		item := it.buffer[0]
		it.buffer = it.buffer[1:]

		return item, nil
	}

	if it.err != nil && !it.errServed {
		it.errServed = true

		return zero, it.err
	}

	return zero, ErrNoMoreItems
}

// All drains the iterator and returns every remaining item. On a page fetch
// failure it returns the items collected so far alongside the error.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return all, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item. Iteration stops at the first
// error, whether from a page fetch or from fn.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// PaginationOptions tunes the page-collecting helpers.
type PaginationOptions struct {
	// MaxPages caps how many pages are fetched. Zero means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns options with no page cap.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// FetchAll collects every item of the listing into a slice, fetching pages
// sequentially until the listing is exhausted or options.MaxPages is
// reached.
func FetchAll[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	var (
		all    []T
		cursor *string
	)

	for pages := 0; options.MaxPages == 0 || pages < options.MaxPages; pages++ {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return all, err
		}

		all = append(all, page.Results...)

		if !page.HasMore || len(page.Results) == 0 || page.NextCursor == nil ||
			cursorsEqual(page.NextCursor, cursor) {
			break
		}

		cursor = page.NextCursor
	}

	return all, nil
}

// PageResult is one element of a page stream: the items of a successfully
// fetched page, or the terminal error.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and sends each page's items on the
// returned channel. A fetch failure is sent as the final element, after
// which the channel is closed. The stream stops early when ctx is canceled;
// no fetch for a subsequent page is issued before the consumer has received
// the current one.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) <-chan PageResult[T] {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		var cursor *string

		for pages := 0; options.MaxPages == 0 || pages < options.MaxPages; pages++ {
			page, err := fetch(ctx, cursor)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Results}:
			case <-ctx.Done():
				return
			}

			if !page.HasMore || len(page.Results) == 0 || page.NextCursor == nil ||
				cursorsEqual(page.NextCursor, cursor) {
				return
			}

			cursor = page.NextCursor
		}
	}()

	return results
}

// cursorsEqual compares two cursor tokens by value.
func cursorsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
