package fanout

import (
	"context"
	"sync"
)

// Collect applies fn to every item in its own goroutine and returns the
// results in input order. It blocks until every call has finished; once
// launched, individual calls are not aborted on sibling failure.
//
// On failure the error of the first failed item in input order is
// returned together with a nil result slice.
func Collect[T, U any](ctx context.Context, items []T, fn func(context.Context, T) (U, error)) ([]U, error) {
	results := make([]U, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = fn(ctx, item)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
