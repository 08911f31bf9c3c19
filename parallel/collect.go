package parallel

import (
	"errors"

	"github.com/sedmess/go-collectors/maps"
	"github.com/sedmess/go-collectors/slices"
)

// Collect builds a key-to-element mapping over chunks of source evaluated on
// at most limit goroutines.
func Collect[T any, K comparable](source []T, chunkSize int, limit int, keyFn func(data T) K, policy maps.MergePolicy) map[K]T {
	return CollectValues(source, chunkSize, limit, keyFn, func(data T) T { return data }, policy)
}

// CollectValues partitions source into chunks of chunkSize, builds one
// private partial mapping per chunk concurrently, then folds the partials
// left to right in chunk order with maps.Combine. The result equals
// sequential maps.CollectValues for every chunk size and every limit.
func CollectValues[T any, K comparable, U any](source []T, chunkSize int, limit int, keyFn func(data T) K, valueFn func(data T) U, policy maps.MergePolicy) map[K]U {
	chunks := slices.Chunks(source, chunkSize)
	if len(chunks) <= 1 {
		return maps.CollectValues(source, keyFn, valueFn, policy)
	}

	partials := make([]map[K]U, len(chunks))
	pool := NewPool(limit)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		pool.Go(func() {
			partials[i] = maps.CollectValues(chunk, keyFn, valueFn, policy)
		})
	}
	pool.Wait()

	result := partials[0]
	for _, partial := range partials[1:] {
		result = maps.Combine(policy, result, partial)
	}
	return result
}

// TryCollectValues is CollectValues with fallible mappers. Every chunk runs
// to completion, then the error of the earliest chunk in source order wins;
// on any failure no mapping is returned. Element indices inside the returned
// error refer to positions in the whole source.
func TryCollectValues[T any, K comparable, U any](source []T, chunkSize int, limit int, keyFn func(data T) (K, error), valueFn func(data T) (U, error), policy maps.MergePolicy) (map[K]U, error) {
	chunks := slices.Chunks(source, chunkSize)
	if len(chunks) <= 1 {
		return maps.TryCollectValues(source, keyFn, valueFn, policy)
	}

	partials := make([]map[K]U, len(chunks))
	failures := make([]error, len(chunks))
	pool := NewPool(limit)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		pool.Go(func() {
			partials[i], failures[i] = maps.TryCollectValues(chunk, keyFn, valueFn, policy)
		})
	}
	pool.Wait()

	for i, err := range failures {
		if err != nil {
			rebaseElementIndex(err, i*chunkSize)
			return nil, err
		}
	}

	result := partials[0]
	for _, partial := range partials[1:] {
		result = maps.Combine(policy, result, partial)
	}
	return result, nil
}

// rebaseElementIndex turns a chunk-local element index into a source-wide one.
func rebaseElementIndex(err error, offset int) {
	var keyErr *maps.KeyMappingError
	if errors.As(err, &keyErr) {
		keyErr.Index += offset
		return
	}
	var valueErr *maps.ValueMappingError
	if errors.As(err, &valueErr) {
		valueErr.Index += offset
	}
}
