package maps

// Collect builds a mapping from key to element, keys computed by keyFn.
func Collect[T any, K comparable](source []T, keyFn func(data T) K, policy MergePolicy) map[K]T {
	return CollectValues(source, keyFn, func(data T) T { return data }, policy)
}

// CollectValues builds a mapping from key to mapped value in a single pass
// over source. Both mappers are applied once per element; the policy decides
// which value survives a key collision. The source is never mutated and the
// result is a fresh map, empty (non-nil) for an empty source.
func CollectValues[T any, K comparable, U any](source []T, keyFn func(data T) K, valueFn func(data T) U, policy MergePolicy) map[K]U {
	result := make(map[K]U, len(source))
	for _, data := range source {
		Accumulate(policy, result, keyFn(data), valueFn(data))
	}
	return result
}

// TryCollect is Collect with a fallible key mapper.
func TryCollect[T any, K comparable](source []T, keyFn func(data T) (K, error), policy MergePolicy) (map[K]T, error) {
	return TryCollectValues(source, keyFn, func(data T) (T, error) { return data, nil }, policy)
}

// TryCollectValues is CollectValues with fallible mappers. The first mapper
// failure aborts the build: no mapping is returned, and the failure comes
// back wrapped in a KeyMappingError or ValueMappingError carrying the index
// of the offending element.
func TryCollectValues[T any, K comparable, U any](source []T, keyFn func(data T) (K, error), valueFn func(data T) (U, error), policy MergePolicy) (map[K]U, error) {
	result := make(map[K]U, len(source))
	for i, data := range source {
		key, err := keyFn(data)
		if err != nil {
			return nil, &KeyMappingError{Index: i, Err: err}
		}
		value, err := valueFn(data)
		if err != nil {
			return nil, &ValueMappingError{Index: i, Err: err}
		}
		Accumulate(policy, result, key, value)
	}
	return result, nil
}
