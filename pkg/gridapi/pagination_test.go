package gridapi_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

type testItem struct {
	ID   string
	Name string
}

var errPageFetch = errors.New("page fetch failed")

func strPtr(s string) *string {
	return &s
}

// scriptedFetcher serves a fixed sequence of pages keyed by the request
// cursor and counts how many fetches were issued.
type scriptedFetcher struct {
	pages map[string]*gridapi.ListResponse[testItem]
	calls atomic.Int32
}

func (f *scriptedFetcher) fetch(_ context.Context, cursor *string) (*gridapi.ListResponse[testItem], error) {
	f.calls.Add(1)

	key := ""
	if cursor != nil {
		key = *cursor
	}

	page, ok := f.pages[key]
	if !ok {
		return nil, errPageFetch
	}

	return page, nil
}

func newThreePageFetcher() *scriptedFetcher {
	return &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}},
				HasMore:    true,
				NextCursor: strPtr("c2"),
			},
			"c2": {
				Results:    []testItem{{ID: "3", Name: "three"}, {ID: "4", Name: "four"}},
				HasMore:    true,
				NextCursor: strPtr("c3"),
			},
			"c3": {
				Results: []testItem{{ID: "5", Name: "five"}},
				HasMore: false,
			},
		},
	}
}

func TestPageIteratorYieldsItemsInOrder(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	var ids []string

	for iterator.HasNext() {
		item, err := iterator.Next()
		require.NoError(t, err)

		ids = append(ids, item.ID)
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
	assert.Equal(t, int32(3), fetcher.calls.Load())
}

func TestPageIteratorNextAfterExhaustion(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {Results: []testItem{{ID: "1"}}, HasMore: false},
		},
	}
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	item, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	_, err = iterator.Next()
	require.ErrorIs(t, err, gridapi.ErrNoMoreItems)

	// Repeated calls keep returning the sentinel without refetching.
	_, err = iterator.Next()
	require.ErrorIs(t, err, gridapi.ErrNoMoreItems)
	assert.False(t, iterator.HasNext())
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestPageIteratorFetchesOnDemand(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	// Nothing is fetched at construction time.
	assert.Equal(t, int32(0), fetcher.calls.Load())

	item, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, int32(1), fetcher.calls.Load())

	// Draining the first page does not trigger the second fetch yet.
	item, err = iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", item.ID)
	assert.Equal(t, int32(1), fetcher.calls.Load())

	// The next pull crosses the page boundary.
	item, err = iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", item.ID)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestPageIteratorStopsOnRepeatedCursor(t *testing.T) {
	t.Parallel()

	// The server claims more data but echoes back the cursor it was given.
	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{{ID: "1"}},
				HasMore:    true,
				NextCursor: strPtr("stuck"),
			},
			"stuck": {
				Results:    []testItem{{ID: "2"}},
				HasMore:    true,
				NextCursor: strPtr("stuck"),
			},
		},
	}
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	items, err := iterator.All()
	require.NoError(t, err)

	assert.Equal(t, []testItem{{ID: "1"}, {ID: "2"}}, items)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestPageIteratorStopsOnEmptyPageWithHasMore(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{},
				HasMore:    true,
				NextCursor: strPtr("next"),
			},
		},
	}
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	assert.False(t, iterator.HasNext())

	_, err := iterator.Next()
	require.ErrorIs(t, err, gridapi.ErrNoMoreItems)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestPageIteratorStopsOnMissingCursor(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results: []testItem{{ID: "1"}},
				HasMore: true,
			},
		},
	}
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	items, err := iterator.All()
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestPageIteratorErrorServedOnce(t *testing.T) {
	t.Parallel()

	// First page succeeds, second page blows up.
	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{{ID: "1"}},
				HasMore:    true,
				NextCursor: strPtr("boom"),
			},
		},
	}
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	item, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	assert.True(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, errPageFetch)

	// The error is terminal and served exactly once.
	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, gridapi.ErrNoMoreItems)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestPageIteratorAllReturnsPartialResultsOnError(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{{ID: "1"}, {ID: "2"}},
				HasMore:    true,
				NextCursor: strPtr("boom"),
			},
		},
	}
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	items, err := iterator.All()
	require.ErrorIs(t, err, errPageFetch)
	assert.Len(t, items, 2)
}

func TestPageIteratorsAreIndependent(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()

	first := gridapi.NewPageIterator(context.Background(), fetcher.fetch)
	second := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	item, err := first.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	item, err = first.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", item.ID)

	item, err = first.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", item.ID)

	// The second iterator starts from the beginning regardless of the
	// first one's position.
	item, err = second.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)
}

func TestPageIteratorNilFetcher(t *testing.T) {
	t.Parallel()

	iterator := gridapi.NewPageIterator[testItem](context.Background(), nil)

	assert.True(t, iterator.HasNext())

	_, err := iterator.Next()
	require.ErrorIs(t, err, gridapi.ErrNilPageFetcher)

	_, err = iterator.Next()
	require.ErrorIs(t, err, gridapi.ErrNoMoreItems)
}

func TestPageIteratorForEach(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	var count int

	err := iterator.ForEach(func(item testItem) error {
		count++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestPageIteratorForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")

	fetcher := newThreePageFetcher()
	iterator := gridapi.NewPageIterator(context.Background(), fetcher.fetch)

	var seen int

	err := iterator.ForEach(func(item testItem) error {
		seen++
		if seen == 2 {
			return errStop
		}

		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 2, seen)

	// Only the first page was ever fetched.
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestFetchAll(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()

	items, err := gridapi.FetchAll(context.Background(), fetcher.fetch, nil)
	require.NoError(t, err)

	assert.Len(t, items, 5)
	assert.Equal(t, int32(3), fetcher.calls.Load())
}

func TestFetchAllMaxPages(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()
	options := &gridapi.PaginationOptions{MaxPages: 2}

	items, err := gridapi.FetchAll(context.Background(), fetcher.fetch, options)
	require.NoError(t, err)

	assert.Len(t, items, 4)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestFetchAllReturnsPartialResultsOnError(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{{ID: "1"}},
				HasMore:    true,
				NextCursor: strPtr("boom"),
			},
		},
	}

	items, err := gridapi.FetchAll(context.Background(), fetcher.fetch, nil)
	require.ErrorIs(t, err, errPageFetch)
	assert.Len(t, items, 1)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	fetcher := newThreePageFetcher()

	var (
		pages int
		items int
	)

	for result := range gridapi.StreamPages(context.Background(), fetcher.fetch, nil) {
		require.NoError(t, result.Err)

		pages++
		items += len(result.Items)
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, 5, items)
}

func TestStreamPagesDeliversErrorLast(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{
		pages: map[string]*gridapi.ListResponse[testItem]{
			"": {
				Results:    []testItem{{ID: "1"}},
				HasMore:    true,
				NextCursor: strPtr("boom"),
			},
		},
	}

	var results []gridapi.PageResult[testItem]

	for result := range gridapi.StreamPages(context.Background(), fetcher.fetch, nil) {
		results = append(results, result)
	}

	require.Len(t, results, 2)
	assert.Len(t, results[0].Items, 1)
	require.ErrorIs(t, results[1].Err, errPageFetch)
}

func TestStreamPagesContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	// An endless listing: every page advances the cursor and claims more.
	var counter atomic.Int32

	endless := func(_ context.Context, cursor *string) (*gridapi.ListResponse[testItem], error) {
		n := counter.Add(1)

		return &gridapi.ListResponse[testItem]{
			Results:    []testItem{{ID: "item"}},
			HasMore:    true,
			NextCursor: strPtr("c" + string(rune('0'+n%10))),
		}, nil
	}

	stream := gridapi.StreamPages(ctx, endless, nil)

	first, ok := <-stream
	require.True(t, ok)
	require.NoError(t, first.Err)

	cancel()

	// Cancellation is the only way this stream ends. Draining must
	// terminate.
	for range stream {
	}
}
