package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// splitBatches retorna os intervalos [início, fim) de cada lote.
func splitBatches(n, size int) [][2]int {
	if size <= 0 {
		size = 1
	}

	batches := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		batches = append(batches, [2]int{start, end})
	}
	return batches
}

// runInBatches runs fn over items in fixed-size batches. Batches run one after
// the other; items inside a batch run concurrently. results[i] always belongs to
// items[i]. fn must capture its own failure in R: the batch never aborts early.
//
// Once ctx is done no further batch is dispatched and the remaining items get
// skipped(item, ctx.Err()).
func runInBatches[T, R any](
	ctx context.Context,
	items []T,
	size int,
	fn func(ctx context.Context, item T) R,
	skipped func(item T, err error) R,
	afterBatch func(done []R),
) []R {
	results := make([]R, len(items))

	for _, b := range splitBatches(len(items), size) {
		if err := ctx.Err(); err != nil {
			for i := b[0]; i < len(items); i++ {
				results[i] = skipped(items[i], err)
			}
			break
		}

		var g errgroup.Group
		for i := b[0]; i < b[1]; i++ {
			g.Go(func() error {
				results[i] = fn(ctx, items[i])
				return nil
			})
		}
		_ = g.Wait()

		if afterBatch != nil {
			afterBatch(results[b[0]:b[1]])
		}
	}

	return results
}
