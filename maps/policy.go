// Package maps builds key-to-value mappings from ordered sources whose keys
// may repeat. Duplicate keys are resolved by a MergePolicy: KeepFirst retains
// the value of the first element in encounter order, KeepLast the value of
// the last one.
package maps

import "strconv"

// MergePolicy selects which occurrence wins when two elements of the source
// map to the same key.
type MergePolicy int

const (
	KeepFirst MergePolicy = iota
	KeepLast
)

func (p MergePolicy) String() string {
	switch p {
	case KeepFirst:
		return "KeepFirst"
	case KeepLast:
		return "KeepLast"
	default:
		return "MergePolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// Accumulate applies a single accumulation step to dst.
func Accumulate[K comparable, U any](policy MergePolicy, dst map[K]U, key K, value U) {
	if policy == KeepFirst {
		if _, present := dst[key]; present {
			return
		}
	}
	dst[key] = value
}

// Combine merges two mappings built from adjacent parts of one source, where
// every key in earlier was encountered before any key in later. Neither input
// is mutated. The merge direction depends on the policy: under KeepFirst
// entries of earlier win on collision, under KeepLast entries of later win.
// Combining part results left to right in source order therefore yields the
// same mapping as collecting the whole source sequentially, however the
// source was split.
func Combine[K comparable, U any](policy MergePolicy, earlier map[K]U, later map[K]U) map[K]U {
	result := make(map[K]U, len(earlier)+len(later))
	if policy == KeepFirst {
		for key, value := range later {
			result[key] = value
		}
		for key, value := range earlier {
			result[key] = value
		}
	} else {
		for key, value := range earlier {
			result[key] = value
		}
		for key, value := range later {
			result[key] = value
		}
	}
	return result
}
