package slices

// GroupBy collects all elements sharing a key, preserving encounter order
// within each group.
func GroupBy[V any, K comparable](source []V, mapper func(data V) K) map[K][]V {
	if source == nil {
		return nil
	}
	result := make(map[K][]V)
	for _, value := range source {
		key := mapper(value)
		result[key] = append(result[key], value)
	}
	return result
}

// UniqBy drops every element whose key was already seen, keeping the first
// occurrence and the original order.
func UniqBy[V any, K comparable](source []V, mapper func(data V) K) []V {
	if source == nil {
		return nil
	}
	seen := make(map[K]struct{}, len(source))
	result := make([]V, 0, len(source))
	for _, value := range source {
		key := mapper(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, value)
	}
	return result
}

// Chunks splits source into consecutive sub-slices of at most size elements,
// in order. A non-positive size yields the whole source as a single chunk.
// The chunks share the source's backing array.
func Chunks[V any](source []V, size int) [][]V {
	if source == nil {
		return nil
	}
	if size <= 0 || size >= len(source) {
		return [][]V{source}
	}
	result := make([][]V, 0, (len(source)+size-1)/size)
	for start := 0; start < len(source); start += size {
		end := start + size
		if end > len(source) {
			end = len(source)
		}
		result = append(result, source[start:end])
	}
	return result
}
