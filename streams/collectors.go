package streams

import "github.com/sedmess/go-collectors/maps"

// CollectToMap accumulates the stream into a key-to-element mapping, ties
// broken by the policy in stream order.
func CollectToMap[T any, K comparable](s Stream[T], keyFn func(data T) K, policy maps.MergePolicy) (map[K]T, error) {
	return CollectToMapValues(s, keyFn, func(data T) T { return data }, policy)
}

// CollectToMapValues accumulates the stream into a key-to-value mapping. A
// stream error aborts the build: the error is returned unchanged and no
// partial mapping is handed out.
func CollectToMapValues[T any, K comparable, U any](s Stream[T], keyFn func(data T) K, valueFn func(data T) U, policy maps.MergePolicy) (map[K]U, error) {
	result := make(map[K]U)
	err := s.ForEach(func(data T) error {
		maps.Accumulate(policy, result, keyFn(data), valueFn(data))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TryCollectToMapValues is CollectToMapValues with fallible mappers, failing
// fast with a maps.KeyMappingError or maps.ValueMappingError on the first
// mapper failure.
func TryCollectToMapValues[T any, K comparable, U any](s Stream[T], keyFn func(data T) (K, error), valueFn func(data T) (U, error), policy maps.MergePolicy) (map[K]U, error) {
	result := make(map[K]U)
	index := 0
	err := s.ForEach(func(data T) error {
		key, err := keyFn(data)
		if err != nil {
			return &maps.KeyMappingError{Index: index, Err: err}
		}
		value, err := valueFn(data)
		if err != nil {
			return &maps.ValueMappingError{Index: index, Err: err}
		}
		maps.Accumulate(policy, result, key, value)
		index++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
