package fluent

import (
	"iter"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Collector is a reduction of elements of type T into a result R through a
// mutable accumulator A.
//
// Supply returns an empty accumulator. Accumulate folds one element into it.
// Combine merges two partial accumulators built from consecutive runs of the
// source, left before right. Finish turns the accumulator into the result.
type Collector[T, A, R any] interface {
	Supply() A
	Accumulate(acc A, el T) (A, error)
	Combine(left, right A) (A, error)
	Finish(acc A) R
}

// CollectorOf builds a Collector from its four steps. A nil finish returns the
// accumulator as is, which requires A and R to be the same type.
func CollectorOf[T, A, R any](
	supply func() A,
	accumulate func(A, T) (A, error),
	combine func(A, A) (A, error),
	finish func(A) R,
) Collector[T, A, R] {
	if supply == nil || accumulate == nil || combine == nil {
		panic("fluent: collector steps cannot be nil")
	}
	if finish == nil {
		finish = func(acc A) R {
			return any(acc).(R)
		}
	}
	return funcCollector[T, A, R]{
		supply:     supply,
		accumulate: accumulate,
		combine:    combine,
		finish:     finish,
	}
}

type funcCollector[T, A, R any] struct {
	supply     func() A
	accumulate func(A, T) (A, error)
	combine    func(A, A) (A, error)
	finish     func(A) R
}

func (c funcCollector[T, A, R]) Supply() A {
	return c.supply()
}

func (c funcCollector[T, A, R]) Accumulate(acc A, el T) (A, error) {
	return c.accumulate(acc, el)
}

func (c funcCollector[T, A, R]) Combine(left, right A) (A, error) {
	return c.combine(left, right)
}

func (c funcCollector[T, A, R]) Finish(acc A) R {
	return c.finish(acc)
}

// Collect runs c over seq and stops at the first error.
func Collect[T, A, R any](seq iter.Seq[T], c Collector[T, A, R]) (R, error) {
	acc, err := accumulateAll(seq, c)
	if err != nil {
		var zero R
		return zero, err
	}
	return c.Finish(acc), nil
}

// CollectSlice runs c over items in order.
func CollectSlice[T, A, R any](items []T, c Collector[T, A, R]) (R, error) {
	return Collect(slices.Values(items), c)
}

// CollectParallel splits items into up to workers contiguous chunks,
// accumulates the chunks concurrently and combines the partial results left to
// right. If several chunks fail, the error of the first failing chunk is
// returned, so the outcome does not depend on scheduling.
func CollectParallel[T, A, R any](items []T, c Collector[T, A, R], workers int) (R, error) {
	var zero R
	if workers <= 1 || len(items) <= 1 {
		return CollectSlice(items, c)
	}

	chunks := slices.Collect(slices.Chunk(items, (len(items)+workers-1)/workers))
	partials := make([]A, len(chunks))
	errs := make([]error, len(chunks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			partials[i], errs[i] = accumulateAll(slices.Values(chunk), c)
			return errs[i]
		})
	}
	if err := g.Wait(); err != nil {
		// Wait reports whichever chunk failed first in time. Report the
		// first failing chunk in source order instead.
		for _, chunkErr := range errs {
			if chunkErr != nil {
				return zero, chunkErr
			}
		}
	}

	acc := partials[0]
	for _, partial := range partials[1:] {
		var err error
		if acc, err = c.Combine(acc, partial); err != nil {
			return zero, err
		}
	}
	return c.Finish(acc), nil
}

func accumulateAll[T, A, R any](seq iter.Seq[T], c Collector[T, A, R]) (A, error) {
	acc := c.Supply()
	for el := range seq {
		var err error
		if acc, err = c.Accumulate(acc, el); err != nil {
			return acc, err
		}
	}
	return acc, nil
}
